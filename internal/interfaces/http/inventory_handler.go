package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-fabrica/internal/application/dto"
	"github.com/tu-usuario/inventario-fabrica/internal/application/inventory"
	"github.com/tu-usuario/inventario-fabrica/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP de movimientos y resincronización (protegido).
type InventoryHandler struct {
	movements *inventory.MovementUseCase
	reconcile *inventory.ReconcileUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(movements *inventory.MovementUseCase, reconcile *inventory.ReconcileUseCase) *InventoryHandler {
	return &InventoryHandler{movements: movements, reconcile: reconcile}
}

// RegistrarEntrada registra una entrada de stock.
// POST /api/inventory/entrada {codigo, cantidad, almacen}
func (h *InventoryHandler) RegistrarEntrada(c *fiber.Ctx) error {
	var in dto.MovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.movements.RegistrarEntrada(c.Context(), in.Codigo, in.Cantidad, in.Almacen); err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovimientoResponse{Mensaje: "entrada registrada"})
}

// RegistrarSalida registra una salida de stock.
// POST /api/inventory/salida {codigo, cantidad, almacen}
func (h *InventoryHandler) RegistrarSalida(c *fiber.Ctx) error {
	var in dto.MovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.movements.RegistrarSalida(c.Context(), in.Codigo, in.Cantidad, in.Almacen); err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovimientoResponse{Mensaje: "salida registrada"})
}

// MoverEntreAlmacenes traslada stock de un almacén a otro.
// POST /api/inventory/traslado {codigo, cantidad, origen, destino}
func (h *InventoryHandler) MoverEntreAlmacenes(c *fiber.Ctx) error {
	var in dto.TrasladoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.movements.MoverEntreAlmacenes(c.Context(), in.Codigo, in.Cantidad, in.Origen, in.Destino); err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovimientoResponse{Mensaje: "traslado registrado"})
}

// Reconcile recalcula el comprometido de todos los productos desde los pedidos.
// POST /api/inventory/reconcile
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	report, err := h.reconcile.Reconcile(c.Context())
	if err != nil {
		var partial *domain.PartialReconcileError
		if errors.As(err, &partial) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code:    "PARTIAL_RECONCILE",
				Message: fmt.Sprintf("%d de %d lotes aplicados; reejecutar para completar", partial.Aplicados, partial.Totales),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

// movementError mapea los errores del motor a códigos HTTP. Todo error del motor
// llega tipado: acá solo se traduce, nunca se decide.
func movementError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCantidadInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "la cantidad debe ser un entero positivo"})
	case errors.Is(err, domain.ErrAlmacenInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_WAREHOUSE", Message: "almacén no reconocido"})
	case errors.Is(err, domain.ErrProductoNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}

	var insuf *domain.InsufficientStockError
	if errors.As(err, &insuf) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", insuf.Disponible, insuf.Solicitado),
		})
	}
	var comp *domain.CompensationFailedError
	if errors.As(err, &comp) {
		// El origen quedó corto: el operador tiene que corregir a mano.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "COMPENSATION_FAILED",
			Message: comp.Error(),
		})
	}
	var transfer *domain.TransferFailedError
	if errors.As(err, &transfer) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code:    "TRANSFER_FAILED",
			Message: "traslado fallido; el origen fue restaurado",
		})
	}
	var write *domain.WriteFailedError
	if errors.As(err, &write) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "WRITE_FAILED", Message: "el almacén remoto rechazó la escritura"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
