package sheets

import (
	"context"
	"strconv"
	"strings"

	"github.com/tu-usuario/inventario-fabrica/internal/domain"
	"github.com/tu-usuario/inventario-fabrica/internal/domain/almacen"
	"github.com/tu-usuario/inventario-fabrica/internal/domain/entity"
	"github.com/tu-usuario/inventario-fabrica/internal/domain/inventory"
	"github.com/tu-usuario/inventario-fabrica/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Encabezados de la hoja de productos. Las columnas de stock llevan el nombre
// canónico del almacén tal cual (almacen.PorPulir, etc.).
const (
	ColCodigoSistema = "CODIGO SISTEMA"
	ColCodigo        = "CODIGO"
	ColDescripcion   = "DESCRIPCION"
	ColCodigoCliente = "CODIGO CLIENTE"
	ColComprometido  = "COMPROMETIDO"
	ColMinimo        = "MINIMO"
)

// ProductRepo implementa el puerto ProductRepository sobre la hoja de productos.
// No cachea posiciones de fila: la hoja no tiene IDs estables y ediciones
// externas pueden correr filas entre una lectura y una escritura, así que cada
// escritura reresuelve fila y columna.
type ProductRepo struct {
	pool  *Pool
	sheet string
}

// NewProductRepository construye el adaptador. sheet es el nombre de la hoja de productos.
func NewProductRepository(pool *Pool, sheet string) *ProductRepo {
	return &ProductRepo{pool: pool, sheet: sheet}
}

// FindByCode recorre la tabla en orden y devuelve la primera fila que coincida
// con el código crudo o normalizado (ver rowMatches).
func (r *ProductRepo) FindByCode(ctx context.Context, code string) (*entity.Product, error) {
	var found *entity.Product
	err := r.withTable(ctx, func(t Table) error {
		records, err := t.Records(ctx)
		if err != nil {
			return err
		}
		raw := strings.TrimSpace(code)
		norm := inventory.NormalizeCode(code)
		for i, rec := range records {
			if rowMatches(rec, raw, norm) {
				found = recordToProduct(rec, i)
				return nil
			}
		}
		return domain.ErrProductoNoEncontrado
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// GetStock lee la cantidad del producto en el almacén (nombre normalizado).
// Celda ausente o no numérica cuenta como 0; producto inexistente es error.
func (r *ProductRepo) GetStock(ctx context.Context, code, nombreAlmacen string) (int, error) {
	p, err := r.FindByCode(ctx, code)
	if err != nil {
		return 0, err
	}
	return p.StockEn(almacen.Normalize(nombreAlmacen)), nil
}

// SetStock escribe la celda (fila del producto, columna del almacén). Reresuelve
// ambas posiciones en cada llamada.
func (r *ProductRepo) SetStock(ctx context.Context, code, nombreAlmacen string, cantidad int) error {
	canon := almacen.Normalize(nombreAlmacen)
	return r.withTable(ctx, func(t Table) error {
		col, err := r.columnIndex(ctx, t, canon)
		if err != nil {
			return err
		}
		row, err := r.rowIndex(ctx, t, code)
		if err != nil {
			return err
		}
		if err := t.WriteCell(ctx, row, col, strconv.Itoa(cantidad)); err != nil {
			return &domain.WriteFailedError{Err: err}
		}
		return nil
	})
}

// ListAll devuelve todos los productos en el orden de la tabla.
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.withTable(ctx, func(t Table) error {
		records, err := t.Records(ctx)
		if err != nil {
			return err
		}
		out = make([]*entity.Product, 0, len(records))
		for i, rec := range records {
			out = append(out, recordToProduct(rec, i))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Search busca term como subcadena, sin distinguir mayúsculas, en código de
// sistema, código corto, descripción y código del cliente. Corta al juntar limit.
func (r *ProductRepo) Search(ctx context.Context, term string, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	needle := strings.ToUpper(strings.TrimSpace(term))
	var out []*entity.Product
	err := r.withTable(ctx, func(t Table) error {
		records, err := t.Records(ctx)
		if err != nil {
			return err
		}
		for i, rec := range records {
			hay := strings.ToUpper(strings.Join([]string{
				rec[ColCodigoSistema], rec[ColCodigo], rec[ColDescripcion], rec[ColCodigoCliente],
			}, "\n"))
			if strings.Contains(hay, needle) {
				out = append(out, recordToProduct(rec, i))
				if len(out) >= limit {
					return nil
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OverwriteComprometido reescribe la columna de comprometido para todas las
// filas, en lotes de a lo sumo MaxBatchRows. El troceo respeta el límite de
// payload del almacén remoto, no da atomicidad: una falla a mitad de camino
// deja la tabla parcialmente actualizada y se reporta como PartialReconcileError.
func (r *ProductRepo) OverwriteComprometido(ctx context.Context, valores []int) error {
	if len(valores) == 0 {
		return nil
	}
	return r.withTable(ctx, func(t Table) error {
		col, err := r.columnIndex(ctx, t, ColComprometido)
		if err != nil {
			return err
		}
		total := (len(valores) + MaxBatchRows - 1) / MaxBatchRows
		aplicados := 0
		for start := 0; start < len(valores); start += MaxBatchRows {
			end := start + MaxBatchRows
			if end > len(valores) {
				end = len(valores)
			}
			values := make([]string, 0, end-start)
			for _, v := range valores[start:end] {
				values = append(values, strconv.Itoa(v))
			}
			upd := []CellRangeUpdate{{Row: start, Col: col, Values: values}}
			if err := t.WriteCellsBatch(ctx, upd); err != nil {
				return &domain.PartialReconcileError{Aplicados: aplicados, Totales: total, Err: err}
			}
			aplicados++
		}
		return nil
	})
}

// withTable toma un handle del pool, resuelve la hoja de productos y ejecuta fn.
func (r *ProductRepo) withTable(ctx context.Context, fn func(Table) error) error {
	return r.pool.WithStore(ctx, func(s Store) error {
		t, err := s.GetSheet(ctx, r.sheet)
		if err != nil {
			return err
		}
		return fn(t)
	})
}

// columnIndex resuelve la posición de una columna por nombre de encabezado.
func (r *ProductRepo) columnIndex(ctx context.Context, t Table, name string) (int, error) {
	header, err := t.Header(ctx)
	if err != nil {
		return 0, err
	}
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}
	return 0, domain.ErrColumnaNoEncontrada
}

// rowIndex reresuelve la fila de un producto con el mismo criterio que FindByCode.
func (r *ProductRepo) rowIndex(ctx context.Context, t Table, code string) (int, error) {
	records, err := t.Records(ctx)
	if err != nil {
		return 0, err
	}
	raw := strings.TrimSpace(code)
	norm := inventory.NormalizeCode(code)
	for i, rec := range records {
		if rowMatches(rec, raw, norm) {
			return i, nil
		}
	}
	return 0, domain.ErrProductoNoEncontrado
}

// rowMatches aplica el criterio de coincidencia de cuatro vías: código de sistema
// igual a la consulta cruda o a la normalizada, código corto igual a la cruda, o
// código de sistema normalizado igual a la normalizada.
func rowMatches(rec map[string]string, raw, norm string) bool {
	sistema := strings.TrimSpace(rec[ColCodigoSistema])
	corto := strings.TrimSpace(rec[ColCodigo])
	if sistema == raw || sistema == norm {
		return true
	}
	if corto == raw {
		return true
	}
	return inventory.NormalizeCode(sistema) == norm
}

// recordToProduct arma la entidad desde un registro de la hoja (fila = posición de datos).
func recordToProduct(rec map[string]string, fila int) *entity.Product {
	stock := make(map[string]int, 4)
	for _, nombre := range almacen.Canonicos() {
		stock[nombre] = parseCantidad(rec[nombre])
	}
	return &entity.Product{
		Fila:          fila,
		CodigoSistema: strings.TrimSpace(rec[ColCodigoSistema]),
		Codigo:        strings.TrimSpace(rec[ColCodigo]),
		Descripcion:   strings.TrimSpace(rec[ColDescripcion]),
		CodigoCliente: strings.TrimSpace(rec[ColCodigoCliente]),
		Stock:         stock,
		Comprometido:  parseCantidad(rec[ColComprometido]),
		Minimo:        parseCantidad(rec[ColMinimo]),
	}
}

// parseCantidad interpreta una celda como cantidad entera; celdas vacías o no
// numéricas cuentan como 0 (la hoja se edita a mano).
func parseCantidad(v string) int {
	s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
