package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/reports"
)

// defaultLowStockThreshold umbral de reorden si el caller no envía uno.
const defaultLowStockThreshold = 5

// ReportHandler expone el resumen de inventario.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de inventario
// @Description  Valor total, unidades totales, productos bajo el umbral de
//               reorden y valor por categoría. Calculado en fresco en cada lectura.
// @Tags         reports
// @Produce      json
// @Param        low_stock_threshold  query  int  false  "Umbral de reorden"  default(5)
// @Success      200  {object}  dto.InventorySummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	threshold := int64(c.QueryInt("low_stock_threshold", defaultLowStockThreshold))
	if threshold < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "low_stock_threshold no puede ser negativo"})
	}
	out, err := h.uc.GetSummary(c.Context(), threshold)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(out)
}
