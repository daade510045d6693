package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method, path, status string
}

type fakeRecorder struct {
	mu  sync.Mutex
	obs []observation
}

func (f *fakeRecorder) RecordHTTPRequest(method, path, status string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.obs = append(f.obs, observation{method, path, status})
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		_, err = uuid.Parse(resp.Header.Get(HeaderRequestID))
		assert.NoError(t, err)
	})

	t.Run("invalid incoming id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "not-a-uuid")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.NotEqual(t, "not-a-uuid", resp.Header.Get(HeaderRequestID))
	})
}

func TestMetrics(t *testing.T) {
	rec := &fakeRecorder{}
	app := fiber.New()
	app.Use(Metrics(rec))
	app.Get("/ok/:id", func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/fail", func(c fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "no") })

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok/42", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)

	require.Len(t, rec.obs, 2)
	assert.Equal(t, observation{"GET", "/ok/:id", "200"}, rec.obs[0])
	assert.Equal(t, observation{"GET", "/fail", "418"}, rec.obs[1])
}
