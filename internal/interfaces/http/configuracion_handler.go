package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/pkg/config"
)

// ConfiguracionHandler expone los parámetros vigentes del sistema (protegido).
// La pantalla de configuración es de solo lectura: los valores vienen del
// entorno y cambiarlos requiere redeploy.
type ConfiguracionHandler struct {
	cfg *config.Config
}

// NewConfiguracionHandler construye el handler.
func NewConfiguracionHandler(cfg *config.Config) *ConfiguracionHandler {
	return &ConfiguracionHandler{cfg: cfg}
}

// Get godoc
// @Summary      Configuración vigente
// @Tags         configuracion
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ConfiguracionResponse
// @Router       /api/configuracion [get]
func (h *ConfiguracionHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.ConfiguracionResponse{
		App:             h.cfg.App.Name,
		Entorno:         h.cfg.App.Env,
		UmbralStockBajo: h.cfg.Inventario.UmbralStockBajo,
	})
}
