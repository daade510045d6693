package handlers

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"updl-converter/internal/common/middleware"
	"updl-converter/internal/converter/mapper"
	"updl-converter/internal/converter/models"
)

type fakeRecorder struct {
	mu       sync.Mutex
	kinds    []string
	failures []string
}

func (f *fakeRecorder) RecordConversion(kind string, _ time.Duration, _ int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kinds = append(f.kinds, kind)
}

func (f *fakeRecorder) RecordFailure(op string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, op)
}

func newTestApp(rec ConversionRecorder) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	app.Use(middleware.RequestID())
	h := NewConvertHandler(mapper.New(), rec, slog.New(slog.NewTextHandler(io.Discard, nil)))
	app.Post("/convert", h.Convert)

	health := NewHealth()
	app.Get("/health/live", health.LivenessProbe)
	app.Get("/health/ready", health.ReadinessProbe)
	app.Post("/health/drain", func(c fiber.Ctx) error {
		health.SetReady(false)
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func decodeResult(t *testing.T, resp *http.Response) models.Result {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var res models.Result
	require.NoError(t, json.Unmarshal(body, &res))
	return res
}

func TestConvertHandler(t *testing.T) {
	t.Run("single space", func(t *testing.T) {
		rec := &fakeRecorder{}
		app := newTestApp(rec)

		req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(`{"nodes":[{"id":"s1","data":{"name":"space"}}],"edges":[]}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))
		res := decodeResult(t, resp)
		require.NotNil(t, res.UPDLSpace)
		assert.Equal(t, "s1", res.UPDLSpace.ID)
		assert.Equal(t, []string{"space"}, rec.kinds)
	})

	t.Run("multi scene", func(t *testing.T) {
		app := newTestApp(nil)
		body := `{"nodes":[{"id":"s1","data":{"name":"space"}},{"id":"s2","data":{"name":"space"}}],"edges":[{"source":"s1","target":"s2"}]}`
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(body)))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		res := decodeResult(t, resp)
		require.NotNil(t, res.MultiScene)
		assert.Equal(t, 3, res.MultiScene.TotalScenes)
	})

	t.Run("non-finite inputs still encode", func(t *testing.T) {
		rec := &fakeRecorder{}
		body := `{"nodes":[{"id":"s1","data":{"name":"space"}},{"id":"c1","data":{"name":"camera","inputs":{"fov":"NaN","far":"Infinity"}}}],"edges":[{"source":"c1","target":"s1"}]}`
		resp, err := newTestApp(rec).Test(httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(body)))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		res := decodeResult(t, resp)
		require.NotNil(t, res.UPDLSpace)
		require.Len(t, res.UPDLSpace.Cameras, 1)
		assert.Equal(t, 75.0, res.UPDLSpace.Cameras[0].FOV)
		assert.Equal(t, 1000.0, res.UPDLSpace.Cameras[0].Far)
		assert.Equal(t, []string{"space"}, rec.kinds)
	})

	t.Run("multipart upload", func(t *testing.T) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		part, err := w.CreateFormFile("file", "flow.json")
		require.NoError(t, err)
		_, err = part.Write([]byte(`{"nodes":[{"id":"s9","data":{"name":"space"}}]}`))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/convert", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		resp, err := newTestApp(nil).Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		res := decodeResult(t, resp)
		require.NotNil(t, res.UPDLSpace)
		assert.Equal(t, "s9", res.UPDLSpace.ID)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := &fakeRecorder{}
		resp, err := newTestApp(rec).Test(httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(`{"nodes":`)))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "invalid flow graph")
		assert.Equal(t, []string{"decode"}, rec.failures)
	})

	t.Run("empty body", func(t *testing.T) {
		rec := &fakeRecorder{}
		resp, err := newTestApp(rec).Test(httptest.NewRequest(http.MethodPost, "/convert", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, []string{"read"}, rec.failures)
	})

	t.Run("request id is propagated", func(t *testing.T) {
		const id = "0b7d2ad4-6a3c-4d8e-9d55-0f1b5b8f1a11"
		req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(`{"nodes":[]}`))
		req.Header.Set(middleware.HeaderRequestID, id)
		resp, err := newTestApp(nil).Test(req)
		require.NoError(t, err)
		assert.Equal(t, id, resp.Header.Get(middleware.HeaderRequestID))
	})
}

func TestHealthProbes(t *testing.T) {
	app := newTestApp(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, err = app.Test(httptest.NewRequest(http.MethodPost, "/health/drain", nil))
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
