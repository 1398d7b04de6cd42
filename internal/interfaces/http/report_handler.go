package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rental-fleet-api/internal/application/dto"
	"github.com/jhoicas/rental-fleet-api/internal/application/reports"
)

// ReportHandler maneja los reportes y el resumen del panel (protegido).
type ReportHandler struct {
	uc *reports.DashboardUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.DashboardUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Charts godoc
// @Summary      Series de reportes (categorías, ingresos, tendencia)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "Inicio del rango (2006-01-02); por defecto 6 meses atrás"
// @Param        end    query  string  false  "Fin del rango (2006-01-02); por defecto hoy"
// @Success      200    {object}  dto.ChartsDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reports/charts [get]
func (h *ReportHandler) Charts(c *fiber.Ctx) error {
	// Rango por defecto: los últimos seis meses, igual que el selector de la
	// pestaña de reportes original.
	end := time.Now()
	start := end.AddDate(0, -6, 0)

	if q := c.Query("start"); q != "" {
		parsed, err := time.Parse(dto.DateLayout, q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start debe tener formato 2006-01-02"})
		}
		start = parsed
	}
	if q := c.Query("end"); q != "" {
		parsed, err := time.Parse(dto.DateLayout, q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end debe tener formato 2006-01-02"})
		}
		end = parsed
	}
	if end.Before(start) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end no puede ser anterior a start"})
	}

	out, err := h.uc.Charts(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Totales del panel principal
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryDTO
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
