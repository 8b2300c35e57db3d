package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/application/inventory"
	"github.com/southgenetics/inventario-api/internal/application/usecase"
	"github.com/southgenetics/inventario-api/internal/domain"
)

// MovimientoHandler maneja las peticiones HTTP de movimientos de inventario (protegido).
type MovimientoHandler struct {
	registrar *inventory.RegisterMovementUseCase
	query     *usecase.MovimientoQueryUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(registrar *inventory.RegisterMovementUseCase, query *usecase.MovimientoQueryUseCase) *MovimientoHandler {
	return &MovimientoHandler{registrar: registrar, query: query}
}

// Registrar godoc
// @Summary      Registrar movimiento de inventario
// @Description  Registra el movimiento y ajusta el stock del producto en la misma transacción.
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "producto_id, tipo (entrada|salida|ajuste|transferencia), cantidad"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) Registrar(c *fiber.Ctx) error {
	usuario := GetEmail(c)
	if usuario == "" {
		usuario = GetUserID(c)
	}
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validarBody(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	err := h.registrar.RegistrarDesdeRequest(c.Context(), usuario, in)
	if err != nil {
		var stockErr *domain.InsufficientStockError
		switch {
		case errors.Is(err, domain.ErrCantidadInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "la cantidad debe ser un entero positivo"})
		case errors.Is(err, domain.ErrTipoInvalido):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TYPE", Message: "tipo de movimiento desconocido"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.As(err, &stockErr):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: stockErr.Error()})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimiento registrado"})
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        busqueda     query  string  false  "producto, usuario o motivo"
// @Param        tipo         query  string  false  "all | entrada | salida | ajuste | transferencia"
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD (inclusivo)"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD (inclusivo)"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.MovimientoListResponse
// @Router       /api/movimientos [get]
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	var filtros dto.MovimientoFiltros
	if err := c.QueryParser(&filtros); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}

	out, err := h.query.List(filtros, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id} [get]
func (h *MovimientoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.query.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar movimiento
// @Description  Borra solo el registro histórico. El stock del producto no cambia.
// @Tags         movimientos
// @Security     Bearer
// @Param        id   path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id} [delete]
func (h *MovimientoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.query.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
