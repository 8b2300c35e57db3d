package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/application/reports"
)

// ReporteHandler genera reportes descargables (protegido).
type ReporteHandler struct {
	uc *reports.InventoryReportUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reports.InventoryReportUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// InventarioPDF godoc
// @Summary      Reporte de inventario en PDF
// @Description  Snapshot imprimible del inventario completo, con los productos en stock bajo resaltados.
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/inventario.pdf [get]
func (h *ReporteHandler) InventarioPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.GenerarPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "REPORT_FAILED", Message: err.Error()})
	}
	filename := fmt.Sprintf("inventario-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
