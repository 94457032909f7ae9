package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, status y duración.
// 5xx se registra como error, 4xx como warn.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logged := err
		if logged == nil {
			logged, _ = c.Locals(localsInternalError).(error)
		}
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error().Err(logged)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetUserID(c)).
			Msg("http request")
		return err
	}
}
