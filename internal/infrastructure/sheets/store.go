// Package sheets implementa el acceso al almacén tabular remoto (Google Sheets)
// y los adaptadores de productos y pedidos que viven sobre él.
package sheets

import "context"

// Store abstrae el almacén tabular remoto: hojas con nombre, filas como registros.
// La implementación real habla con la API de Sheets; los tests usan una en memoria.
type Store interface {
	// GetSheet devuelve la hoja con ese nombre o domain.ErrHojaNoEncontrada.
	GetSheet(ctx context.Context, name string) (Table, error)
}

// Table es una hoja concreta: un encabezado y filas de datos como registros
// campo→valor. Las posiciones de fila y columna son 0-based sobre los datos
// (la fila 0 es la primera bajo el encabezado; la columna 0 es la primera).
type Table interface {
	Header(ctx context.Context) ([]string, error)
	Records(ctx context.Context) ([]map[string]string, error)
	WriteCell(ctx context.Context, row, col int, value string) error
	WriteCellsBatch(ctx context.Context, updates []CellRangeUpdate) error
}

// CellRangeUpdate es una escritura contigua hacia abajo en una columna:
// Values[0] va a (Row, Col), Values[1] a (Row+1, Col), etc.
type CellRangeUpdate struct {
	Row    int
	Col    int
	Values []string
}

// MaxBatchRows es el tope de filas por llamada de escritura en lote que acepta
// el almacén remoto; los llamadores trocean por encima de esto.
const MaxBatchRows = 500
