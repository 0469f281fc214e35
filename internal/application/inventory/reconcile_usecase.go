package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/tu-usuario/inventario-fabrica/internal/domain"
	"github.com/tu-usuario/inventario-fabrica/internal/domain/repository"
	"github.com/tu-usuario/inventario-fabrica/pkg/logger"
)

// ReconcileReport es el resultado de una resincronización de comprometido.
type ReconcileReport struct {
	Actualizados int `json:"actualizados"` // filas escritas con comprometido > 0
	EnCero       int `json:"en_cero"`      // filas escritas con 0
}

// ReconcileUseCase recalcula la columna de comprometido para todos los productos
// a partir de los pedidos abiertos no despachados. Es una sobrescritura total de
// la columna, no un delta incremental: así se autocorrige cualquier deriva por
// ediciones manuales o eventos perdidos, y reejecutarla es siempre seguro.
type ReconcileUseCase struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	log      *logger.Logger
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(products repository.ProductRepository, orders repository.OrderRepository, log *logger.Logger) *ReconcileUseCase {
	return &ReconcileUseCase{products: products, orders: orders, log: log}
}

// Reconcile suma la cantidad pendiente por producto sobre las líneas activas y
// reescribe la columna de comprometido de cada fila del catálogo. Si la escritura
// falla a mitad de los lotes, el reporte acompaña un *domain.PartialReconcileError.
func (uc *ReconcileUseCase) Reconcile(ctx context.Context) (ReconcileReport, error) {
	var report ReconcileReport

	lines, err := uc.orders.ListLines(ctx)
	if err != nil {
		return report, err
	}

	// Totales por código del pedido (mayúsculas, sin espacios; a propósito sin
	// normalizar guiones: el comprometido se lleva por el código del pedido).
	totales := make(map[string]int)
	for _, l := range lines {
		if !l.Comprometida() {
			continue
		}
		totales[l.ClaveComprometido()] += l.Cantidad
	}

	products, err := uc.products.ListAll(ctx)
	if err != nil {
		return report, err
	}

	// valores[i] = comprometido de la fila de datos i. Se escribe TODA fila,
	// incluidas las que quedan en 0.
	valores := make([]int, len(products))
	for _, p := range products {
		total, ok := totales[strings.ToUpper(strings.TrimSpace(p.CodigoSistema))]
		if !ok {
			total, ok = totales[strings.ToUpper(strings.TrimSpace(p.Codigo))]
		}
		if !ok {
			total = 0
		}
		if p.Fila >= 0 && p.Fila < len(valores) {
			valores[p.Fila] = total
		}
		if total > 0 {
			report.Actualizados++
		} else {
			report.EnCero++
		}
	}

	writeErr := uc.products.OverwriteComprometido(ctx, valores)
	if writeErr != nil {
		var partial *domain.PartialReconcileError
		if errors.As(writeErr, &partial) {
			uc.log.Error().
				Int("lotes_aplicados", partial.Aplicados).
				Int("lotes_totales", partial.Totales).
				Err(partial.Err).
				Msg("resincronización parcial; reejecutar para completar")
		}
		return report, writeErr
	}

	uc.log.Info().
		Int("lineas_pedido", len(lines)).
		Int("productos", len(products)).
		Int("actualizados", report.Actualizados).
		Int("en_cero", report.EnCero).
		Msg("comprometido resincronizado")
	return report, nil
}
