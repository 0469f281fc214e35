package repository

import (
	"context"

	"github.com/tu-usuario/inventario-fabrica/internal/domain/entity"
)

// OrderRepository define el puerto de solo lectura sobre la hoja de pedidos.
// Los pedidos los mantiene el subsistema de ventas; este módulo nunca los muta.
type OrderRepository interface {
	// ListLines devuelve todos los renglones de pedido en el orden de la tabla.
	ListLines(ctx context.Context) ([]entity.OrderLine, error)
}
