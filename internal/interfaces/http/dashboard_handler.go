package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/nisaworld/muebleria-api/internal/application/analytics"
	"github.com/nisaworld/muebleria-api/internal/application/dto"
	"github.com/nisaworld/muebleria-api/internal/domain"
	"github.com/nisaworld/muebleria-api/pkg/logger"
)

// DashboardHandler maneja las peticiones HTTP del tablero y los reportes.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Stats godoc
// @Summary      Agregados financieros (alcance según rol)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context(), GetRole(c), GetUserID(c))
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// MonthlyReport godoc
// @Summary      Reporte mensual de un año (alcance según rol)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        year  path  int  true  "Año, ej: 2026"
// @Success      200   {object}  dto.MonthlyReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/monthly/{year} [get]
func (h *DashboardHandler) MonthlyReport(c *fiber.Ctx) error {
	year, err := strconv.ParseInt(c.Params("year"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_YEAR", Message: "año inválido"})
	}
	out, err := h.uc.GetMonthlyReport(c.Context(), GetRole(c), GetUserID(c), year)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_YEAR", Message: "año fuera de rango"})
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}
