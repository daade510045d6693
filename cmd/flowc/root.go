package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"updl-converter/internal/common/logging"
	"updl-converter/internal/converter/mapper"
	"updl-converter/internal/converter/trace"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "flowc",
		Short:        "Compile UPDL flow graphs into scene descriptions",
		SilenceUsage: true,
	}
	root.AddCommand(newConvertCmd(), newVersionCmd())
	return root
}

type convertOptions struct {
	out    string
	pretty bool
	trace  bool
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert [flow.json]",
		Short: "Compile a flow document, read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open flow: %w", err)
				}
				defer f.Close()
				in = f
			}

			out := cmd.OutOrStdout()
			if opts.out != "" {
				f, err := os.Create(opts.out)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}

			return runConvert(in, out, cmd.ErrOrStderr(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write the result to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "log conversion events to stderr")
	return cmd
}

func runConvert(in io.Reader, out, errOut io.Writer, opts *convertOptions) error {
	tracer := trace.Nop
	if opts.trace {
		tracer = trace.NewSlog(logging.New("debug", "text", errOut), slog.LevelDebug)
	}

	result, err := mapper.New(mapper.WithTracer(tracer)).Convert(in)
	if err != nil {
		return err
	}

	var data []byte
	if opts.pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	if _, err := out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the flowc version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "flowc %s\n", version)
		},
	}
}
