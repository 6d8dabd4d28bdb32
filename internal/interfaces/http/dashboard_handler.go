package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BANCESQWQ/bobisfinal/internal/application/analytics"
	"github.com/BANCESQWQ/bobisfinal/internal/application/dto"
	"github.com/BANCESQWQ/bobisfinal/pkg/logger"
)

// DashboardHandler sirve las estadísticas y la analítica predictiva.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Estadisticas GET /api/dashboard/estadisticas
func (h *DashboardHandler) Estadisticas(c *fiber.Ctx) error {
	stats, err := h.uc.Estadisticas(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK(stats))
}

// AnaliticaPredictiva GET /api/dashboard/analitica-predictiva
func (h *DashboardHandler) AnaliticaPredictiva(c *fiber.Ctx) error {
	analitica, err := h.uc.AnaliticaPredictiva(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK(analitica))
}
