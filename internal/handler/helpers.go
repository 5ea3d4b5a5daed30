package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/simak-go-api/internal/middleware"
	"github.com/noah-isme/simak-go-api/internal/service"
)

func usernameFromContext(c *fiber.Ctx) string {
	if v := c.Locals("username"); v != nil {
		if username, ok := v.(string); ok {
			return strings.TrimSpace(username)
		}
	}
	return ""
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = logger.With().Str("correlation_id", correlation).Logger()
		}
		if username := usernameFromContext(c); username != "" {
			logger = logger.With().Str("username", username).Logger()
		}
	}
	return &logger
}

func validationReason(err error) (string, bool) {
	var validationError *service.ValidationError
	if errors.As(err, &validationError) {
		return validationError.Reason, true
	}
	return "", false
}
