package sheets

import (
	"context"
	"strings"

	"github.com/tu-usuario/inventario-fabrica/internal/domain/entity"
	"github.com/tu-usuario/inventario-fabrica/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// Encabezados de la hoja de pedidos.
const (
	ColPedidoID         = "PEDIDO"
	ColPedidoCodigo     = "CODIGO"
	ColPedidoCantidad   = "CANTIDAD"
	ColPedidoEstado     = "ESTADO"
	ColPedidoDespachado = "DESPACHADO"
)

// OrderRepo lee renglones de pedido de la hoja de pedidos (solo lectura).
type OrderRepo struct {
	pool  *Pool
	sheet string
}

// NewOrderRepository construye el adaptador. sheet es el nombre de la hoja de pedidos.
func NewOrderRepository(pool *Pool, sheet string) *OrderRepo {
	return &OrderRepo{pool: pool, sheet: sheet}
}

// ListLines devuelve todos los renglones en el orden de la tabla. Cantidades no
// numéricas cuentan como 0 y no aportan al comprometido.
func (r *OrderRepo) ListLines(ctx context.Context) ([]entity.OrderLine, error) {
	var out []entity.OrderLine
	err := r.pool.WithStore(ctx, func(s Store) error {
		t, err := s.GetSheet(ctx, r.sheet)
		if err != nil {
			return err
		}
		records, err := t.Records(ctx)
		if err != nil {
			return err
		}
		out = make([]entity.OrderLine, 0, len(records))
		for _, rec := range records {
			out = append(out, entity.OrderLine{
				PedidoID:   strings.TrimSpace(rec[ColPedidoID]),
				Codigo:     rec[ColPedidoCodigo],
				Cantidad:   parseCantidad(rec[ColPedidoCantidad]),
				Estado:     rec[ColPedidoEstado],
				Despachado: parseDespachado(rec[ColPedidoDespachado]),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// parseDespachado interpreta la marca de despacho; la hoja mezcla formatos.
func parseDespachado(v string) bool {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "TRUE", "VERDADERO", "SI", "SÍ", "1", "X":
		return true
	}
	return false
}
