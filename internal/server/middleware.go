package server

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/recruit-console/internal/logger"
)

// requestLogger tags each request with an id (kept from X-Request-ID when the
// client sent one) and logs it once the handler chain returns.
func requestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		fields := logger.RequestFields(strings.Clone(id), c.Method(), strings.Clone(c.Path()))
		fields = append(fields, zap.Int("status", status), zap.Duration("latency", time.Since(start)))
		log.Info("request", fields...)

		return err
	}
}
