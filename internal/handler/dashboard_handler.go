package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/simak-go-api/internal/service"
	"github.com/noah-isme/simak-go-api/internal/utils"
)

// DashboardHandler wires the summary statistics endpoint.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register attaches the dashboard route to the router group.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("/dashboard", h.summary)
}

func (h *DashboardHandler) summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to compute dashboard")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to compute dashboard")
	}

	return utils.SendSuccess(c, "dashboard retrieved", summary)
}
