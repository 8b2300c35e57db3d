package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/application/usecase"
	"github.com/southgenetics/inventario-api/internal/domain"
)

// AlertaHandler maneja las peticiones HTTP para Alerta (protegido).
type AlertaHandler struct {
	uc *usecase.AlertaUseCase
}

// NewAlertaHandler construye el handler.
func NewAlertaHandler(uc *usecase.AlertaUseCase) *AlertaHandler {
	return &AlertaHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas por estado
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "activa | revisada | resuelta"  default(activa)
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.AlertaResponse
// @Router       /api/alertas [get]
func (h *AlertaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.ListByEstado(c.Query("estado"), page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateEstado godoc
// @Summary      Cambiar estado de una alerta
// @Description  Marca la alerta como activa, revisada o resuelta.
// @Tags         alertas
// @Security     Bearer
// @Accept       json
// @Param        id    path  string                         true  "ID de la alerta"
// @Param        body  body  dto.UpdateAlertaEstadoRequest  true  "Nuevo estado"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alertas/{id}/estado [patch]
func (h *AlertaHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdateAlertaEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validarBody(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if err := h.uc.UpdateEstado(c.Params("id"), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado desconocido"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
