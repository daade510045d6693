package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOpenAPISpec(t *testing.T) {
	var doc struct {
		OpenAPI string         `yaml:"openapi"`
		Paths   map[string]any `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(openAPISpec, &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Contains(t, doc.Paths, "/convert")
}

func TestDocsRoutes(t *testing.T) {
	app := fiber.New()
	NewDocs("Flow Docs").Register(app.Group("/api/docs"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/docs/openapi.yaml", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, openAPISpec, body)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "<title>Flow Docs</title>")
	assert.Contains(t, string(body), `api\/docs\/openapi.yaml`)
}
