package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/southgenetics/inventario-api/internal/application/analytics"
	"github.com/southgenetics/inventario-api/internal/application/dto"
)

// MetricsHandler expone los agregados de cada página del dashboard (protegido).
type MetricsHandler struct {
	uc *analytics.MetricsUseCase
}

// NewMetricsHandler construye el handler.
func NewMetricsHandler(uc *analytics.MetricsUseCase) *MetricsHandler {
	return &MetricsHandler{uc: uc}
}

// errorMetricas traduce el fallo: timeout contra el almacén -> 504, resto -> 500.
func errorMetricas(c *fiber.Ctx, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{Code: "METRICS_TIMEOUT", Message: "las métricas no respondieron a tiempo"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Dashboard godoc
// @Summary      Métricas de la portada
// @Description  Total de productos, valor del inventario, movimientos de hoy y alertas de stock.
// @Tags         metricas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardMetricsResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/metricas/dashboard [get]
func (h *MetricsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context())
	if err != nil {
		return errorMetricas(c, err)
	}
	return c.JSON(out)
}

// Movimientos godoc
// @Summary      Métricas de la página de movimientos
// @Tags         metricas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MovimientoMetricsResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/metricas/movimientos [get]
func (h *MetricsHandler) Movimientos(c *fiber.Ctx) error {
	out, err := h.uc.GetMovimientos(c.Context())
	if err != nil {
		return errorMetricas(c, err)
	}
	return c.JSON(out)
}

// Productos godoc
// @Summary      Métricas de la página de productos
// @Tags         metricas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductoMetricsResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/metricas/productos [get]
func (h *MetricsHandler) Productos(c *fiber.Ctx) error {
	out, err := h.uc.GetProductos(c.Context())
	if err != nil {
		return errorMetricas(c, err)
	}
	return c.JSON(out)
}

// Proveedores godoc
// @Summary      Métricas de la página de proveedores
// @Tags         metricas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProveedorMetricsResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/metricas/proveedores [get]
func (h *MetricsHandler) Proveedores(c *fiber.Ctx) error {
	out, err := h.uc.GetProveedores(c.Context())
	if err != nil {
		return errorMetricas(c, err)
	}
	return c.JSON(out)
}
