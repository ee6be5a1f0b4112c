package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/B7A9F/exercices-api/internal/debug"
)

// DashboardLogger streams request logs to the debug dashboard.
func DashboardLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !debug.IsEnabled() {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		status := c.Response().StatusCode()
		level := "info"
		if status >= 500 {
			level = "error"
		} else if status >= 400 {
			level = "warn"
		}

		debug.SendLog("backend", level, fmt.Sprintf("%s %s", c.Method(), c.Path()), map[string]any{
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      status,
			"duration_ms": duration.Milliseconds(),
			"ip":          c.IP(),
		})
		return err
	}
}
