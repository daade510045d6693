package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

// ============================================================
// Logger Middleware
// ============================================================

// Logger returns the access log middleware. The request id is taken from
// the response header set by RequestID.
func Logger() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} | id=${respHeader:" + HeaderRequestID + "} bytes=${bytesReceived}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	})
}
