package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/usecase"
	"github.com/tu-usuario/ventas-pro/internal/domain/report"
)

// ReportHandler maneja los endpoints del motor de reportes.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Daily godoc
// @Summary      Serie diaria de unidades vendidas
// @Description  Buckets por día calendario (UTC) dentro del rango inclusivo [from, to].
// @Tags         reports
// @Produce      json
// @Param        from  query  string  true  "YYYY-MM-DD"
// @Param        to    query  string  true  "YYYY-MM-DD"
// @Success      200   {array}   report.AggregatePoint
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	var in dto.DailyReportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	points, err := h.uc.GetDaily(in.From, in.To)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrMissingBound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_BOUND", Message: "se requieren las fechas from y to"})
		case errors.Is(err, report.ErrInvertedRange):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: "from no puede ser posterior a to"})
		default:
			// Fechas malformadas también son error del cliente.
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: err.Error()})
		}
	}
	return c.JSON(points)
}

// TopProducts godoc
// @Summary      Productos más vendidos
// @Description  Ranking servidor por unidades vendidas; coincide con el ranking en memoria del dashboard.
// @Tags         reports
// @Produce      json
// @Param        limit  query  int  false  "Máximo de productos"  default(5)
// @Success      200    {array}  report.RankedProduct
// @Router       /api/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	out, err := h.uc.GetTopProducts(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
