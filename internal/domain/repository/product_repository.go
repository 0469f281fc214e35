package repository

import (
	"context"

	"github.com/tu-usuario/inventario-fabrica/internal/domain/entity"
)

// ProductRepository define el puerto de acceso al catálogo de productos en el
// almacén tabular remoto (una fila por producto, una columna por almacén).
// Las fallas remotas llegan convertidas a errores de dominio, nunca como valores
// cero silenciosos.
type ProductRepository interface {
	// FindByCode busca recorriendo la tabla en orden. Una fila coincide si su
	// código de sistema es igual a la consulta cruda o a la normalizada, si su
	// código corto es igual a la consulta cruda, o si su código de sistema
	// normalizado es igual a la consulta normalizada. Gana la primera fila.
	// Devuelve domain.ErrProductoNoEncontrado si ninguna coincide.
	FindByCode(ctx context.Context, code string) (*entity.Product, error)

	// GetStock lee la cantidad del producto en un almacén canónico.
	// Celda ausente o no numérica cuenta como 0.
	GetStock(ctx context.Context, code, almacen string) (int, error)

	// SetStock escribe una sola celda. Reresuelve la posición de la fila en cada
	// escritura: la hoja no tiene IDs de fila estables y ediciones externas pueden
	// correr las filas entre una lectura y una escritura.
	SetStock(ctx context.Context, code, almacen string, cantidad int) error

	// ListAll devuelve todos los productos en el orden de la tabla.
	ListAll(ctx context.Context) ([]*entity.Product, error)

	// Search busca term como subcadena (sin distinguir mayúsculas) en código de
	// sistema, código corto, descripción y código del cliente. Corta al juntar limit.
	Search(ctx context.Context, term string, limit int) ([]*entity.Product, error)

	// OverwriteComprometido reescribe la columna de comprometido para TODAS las
	// filas (valores[i] = fila de datos i), en lotes acotados por el límite del
	// almacén remoto. Si falla a mitad de camino devuelve *domain.PartialReconcileError.
	OverwriteComprometido(ctx context.Context, valores []int) error
}
