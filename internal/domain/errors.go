package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrAlmacenInvalido      = errors.New("almacén inválido")
	ErrCantidadInvalida     = errors.New("cantidad inválida")
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
	ErrColumnaNoEncontrada  = errors.New("columna de almacén no encontrada en la hoja")
	ErrHojaNoEncontrada     = errors.New("hoja no encontrada")
	ErrUnauthorized         = errors.New("no autorizado")
)

// InsufficientStockError indica que una salida pidió más unidades de las disponibles.
// Se detecta antes de escribir: el stock queda como estaba.
type InsufficientStockError struct {
	Codigo     string
	Almacen    string
	Disponible int
	Solicitado int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente de %s en %s: disponible %d, solicitado %d",
		e.Codigo, e.Almacen, e.Disponible, e.Solicitado)
}

// WriteFailedError envuelve un rechazo o timeout del almacén remoto durante una escritura.
type WriteFailedError struct {
	Err error
}

func (e *WriteFailedError) Error() string {
	return "escritura rechazada por el almacén remoto: " + e.Err.Error()
}
func (e *WriteFailedError) Unwrap() error { return e.Err }

// TransferFailedError indica que la entrada en el almacén destino falló y la
// compensación devolvió el stock al origen. Envuelve el error de la entrada.
type TransferFailedError struct {
	Inbound error
}

func (e *TransferFailedError) Error() string {
	return "traslado fallido (origen restaurado): " + e.Inbound.Error()
}
func (e *TransferFailedError) Unwrap() error { return e.Inbound }

// CompensationFailedError indica que la entrada en destino falló Y la compensación
// también: el origen queda corto por Cantidad unidades y requiere intervención manual.
// Nunca debe tragarse en silencio.
type CompensationFailedError struct {
	Codigo       string
	Origen       string
	Cantidad     int
	Inbound      error
	Compensation error
}

func (e *CompensationFailedError) Error() string {
	return fmt.Sprintf("compensación fallida: %s quedó corto %d unidades en %s (entrada: %v; compensación: %v)",
		e.Codigo, e.Cantidad, e.Origen, e.Inbound, e.Compensation)
}
func (e *CompensationFailedError) Unwrap() error { return e.Compensation }

// PartialReconcileError indica que la resincronización de comprometido aplicó solo
// una parte de los lotes y la tabla quedó parcialmente actualizada. Reejecutar es
// siempre seguro porque la resincronización es una sobrescritura total, no un delta.
type PartialReconcileError struct {
	Aplicados int
	Totales   int
	Err       error
}

func (e *PartialReconcileError) Error() string {
	return fmt.Sprintf("resincronización parcial: %d de %d lotes aplicados: %v", e.Aplicados, e.Totales, e.Err)
}
func (e *PartialReconcileError) Unwrap() error { return e.Err }
