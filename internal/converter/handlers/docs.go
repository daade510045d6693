package handlers

import (
	"bytes"
	_ "embed"
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// API Docs Handlers
// ============================================================

//go:embed openapi.yaml
var openAPISpec []byte

const specFile = "openapi.yaml"

var uiPage = template.Must(template.New("ui").Parse(`<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({ url: {{.SpecURL}}, dom_id: '#swagger-ui' });
  };
</script>
</body>
</html>`))

// Docs serves the embedded OpenAPI document and a browser page for it.
type Docs struct {
	title string
}

// NewDocs returns docs handlers whose page is titled title.
func NewDocs(title string) *Docs {
	return &Docs{title: title}
}

// Spec serves the embedded OpenAPI YAML.
func (d *Docs) Spec(c fiber.Ctx) error {
	c.Type("yaml")
	return c.Send(openAPISpec)
}

// UI renders the page. The spec is expected next to it, at <path>/openapi.yaml.
func (d *Docs) UI(c fiber.Ctx) error {
	var buf bytes.Buffer
	err := uiPage.Execute(&buf, struct{ Title, SpecURL string }{
		Title:   d.title,
		SpecURL: strings.TrimSuffix(c.Path(), "/") + "/" + specFile,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	c.Type("html")
	return c.Send(buf.Bytes())
}

// Register mounts the page at the router's root and the spec beside it.
func (d *Docs) Register(r fiber.Router) {
	r.Get("/", d.UI)
	r.Get("/"+specFile, d.Spec)
}
