package sheets_test

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventario-fabrica/internal/domain"
	"github.com/tu-usuario/inventario-fabrica/internal/infrastructure/sheets"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del almacén tabular remoto, para los tests del paquete.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	tables map[string]*fakeTable
}

func newFakeStore() *fakeStore {
	return &fakeStore{tables: make(map[string]*fakeTable)}
}

func (s *fakeStore) addSheet(name string, header []string, rows [][]string) *fakeTable {
	t := &fakeTable{header: header, rows: rows, failBatchAfter: -1}
	s.tables[name] = t
	return t
}

func (s *fakeStore) GetSheet(_ context.Context, name string) (sheets.Table, error) {
	t, ok := s.tables[name]
	if !ok {
		return nil, domain.ErrHojaNoEncontrada
	}
	return t, nil
}

type fakeTable struct {
	header []string
	rows   [][]string

	failWrites     bool // toda escritura de celda falla
	failBatchAfter int  // lotes aceptados antes de fallar (-1 = nunca falla)
	batchWrites    int
	cellWrites     int
}

func (t *fakeTable) Header(context.Context) ([]string, error) {
	return append([]string(nil), t.header...), nil
}

func (t *fakeTable) Records(context.Context) ([]map[string]string, error) {
	out := make([]map[string]string, 0, len(t.rows))
	for _, row := range t.rows {
		rec := make(map[string]string, len(t.header))
		for i, h := range t.header {
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func (t *fakeTable) WriteCell(_ context.Context, row, col int, value string) error {
	if t.failWrites {
		return fmt.Errorf("fallo simulado de escritura")
	}
	if row < 0 || row >= len(t.rows) || col < 0 || col >= len(t.header) {
		return fmt.Errorf("celda fuera de rango (%d,%d)", row, col)
	}
	for len(t.rows[row]) <= col {
		t.rows[row] = append(t.rows[row], "")
	}
	t.rows[row][col] = value
	t.cellWrites++
	return nil
}

func (t *fakeTable) WriteCellsBatch(ctx context.Context, updates []sheets.CellRangeUpdate) error {
	if t.failBatchAfter >= 0 && t.batchWrites >= t.failBatchAfter {
		return fmt.Errorf("fallo simulado de lote")
	}
	for _, u := range updates {
		for i, v := range u.Values {
			if err := t.WriteCell(ctx, u.Row+i, u.Col, v); err != nil {
				return err
			}
		}
	}
	t.batchWrites++
	return nil
}

// cell lee una celda cruda para asserts.
func (t *fakeTable) cell(row, col int) string {
	if row < len(t.rows) && col < len(t.rows[row]) {
		return t.rows[row][col]
	}
	return ""
}

// singlePool arma un pool de un solo handle sobre el fake.
func singlePool(s *fakeStore) *sheets.Pool {
	return sheets.NewPool(1, func(context.Context) (sheets.Store, error) {
		return s, nil
	})
}
