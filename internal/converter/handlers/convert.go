package handlers

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"updl-converter/internal/common/middleware"
	"updl-converter/internal/converter/mapper"
	"updl-converter/internal/converter/models"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Convert Handler
// ============================================================

// ConversionRecorder receives the outcome of every conversion.
type ConversionRecorder interface {
	RecordConversion(kind string, duration time.Duration, scenes int)
	RecordFailure(op string, duration time.Duration)
}

type ConvertHandler struct {
	converter *mapper.Converter
	metrics   ConversionRecorder
	logger    *slog.Logger
}

// NewConvertHandler wires a converter to HTTP. metrics may be nil.
func NewConvertHandler(converter *mapper.Converter, metrics ConversionRecorder, logger *slog.Logger) *ConvertHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConvertHandler{
		converter: converter,
		metrics:   metrics,
		logger:    logger,
	}
}

// Convert compiles a flow document. The document is either the raw request
// body or the "file" part of a multipart form.
func (h *ConvertHandler) Convert(c fiber.Ctx) error {
	log := h.logger.With("request_id", middleware.GetRequestID(c))
	start := time.Now()

	data, err := readFlow(c)
	if err != nil {
		log.Warn("flow upload rejected", "error", err)
		h.recordFailure("read", start)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	log.Debug("conversion started", "bytes", len(data))
	result, err := h.converter.ProcessFlowData(data)
	if err != nil {
		var cerr *mapper.ConvertError
		if errors.As(err, &cerr) {
			log.Warn("flow rejected", "op", cerr.Op, "error", err)
			h.recordFailure(cerr.Op, start)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Error("conversion failed", "error", err)
		h.recordFailure("convert", start)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	scenes := sceneCount(result)
	if h.metrics != nil {
		h.metrics.RecordConversion(result.Kind(), time.Since(start), scenes)
	}
	log.Info("conversion finished",
		"kind", result.Kind(),
		"scenes", scenes,
		"duration", time.Since(start),
	)
	return c.JSON(result)
}

func (h *ConvertHandler) recordFailure(op string, start time.Time) {
	if h.metrics != nil {
		h.metrics.RecordFailure(op, time.Since(start))
	}
}

func readFlow(c fiber.Ctx) ([]byte, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		file, err := c.FormFile("file")
		if err != nil {
			return nil, errors.New("file required in multipart/form-data")
		}
		f, err := file.Open()
		if err != nil {
			return nil, errors.New("failed to open file")
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, errors.New("failed to read file")
		}
		return data, nil
	}

	body := c.Body()
	if len(body) == 0 {
		return nil, errors.New("empty body")
	}
	// fasthttp reuses the body buffer after the handler returns
	data := make([]byte, len(body))
	copy(data, body)
	return data, nil
}

func sceneCount(r *models.Result) int {
	switch {
	case r.MultiScene != nil:
		return r.MultiScene.TotalScenes
	case r.UPDLSpace != nil:
		return 1
	default:
		return 0
	}
}
