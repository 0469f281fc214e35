package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/tu-usuario/inventario-fabrica/internal/domain"
)

var _ Store = (*Client)(nil)

// Client implementa Store sobre la API de Google Sheets. Un Client envuelve un
// handle de servicio; la librería subyacente no se comparte entre workers, así
// que cada worker toma su Client del Pool.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// NewClient crea un handle al spreadsheet usando credenciales de service account.
func NewClient(ctx context.Context, spreadsheetID, credentialsFile string) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("crear servicio de sheets: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// GetSheet devuelve la hoja con ese nombre. Verifica existencia leyendo el
// encabezado: un rango imposible de resolver significa que la hoja no está.
func (c *Client) GetSheet(ctx context.Context, name string) (Table, error) {
	t := &sheetTable{svc: c.svc, spreadsheetID: c.spreadsheetID, name: name}
	if _, err := t.Header(ctx); err != nil {
		if errors.Is(err, domain.ErrHojaNoEncontrada) {
			return nil, domain.ErrHojaNoEncontrada
		}
		return nil, err
	}
	return t, nil
}

// sheetTable implementa Table sobre una hoja concreta del spreadsheet.
type sheetTable struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	name          string
}

func (t *sheetTable) Header(ctx context.Context) ([]string, error) {
	resp, err := t.svc.Spreadsheets.Values.
		Get(t.spreadsheetID, fmt.Sprintf("%s!1:1", t.name)).
		Context(ctx).Do()
	if err != nil {
		return nil, t.mapError("leer encabezado", err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	header := make([]string, 0, len(resp.Values[0]))
	for _, v := range resp.Values[0] {
		header = append(header, strings.TrimSpace(fmt.Sprint(v)))
	}
	return header, nil
}

func (t *sheetTable) Records(ctx context.Context) ([]map[string]string, error) {
	resp, err := t.svc.Spreadsheets.Values.
		Get(t.spreadsheetID, t.name).
		Context(ctx).Do()
	if err != nil {
		return nil, t.mapError("leer filas", err)
	}
	if len(resp.Values) < 2 {
		return nil, nil
	}
	header := resp.Values[0]
	records := make([]map[string]string, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		rec := make(map[string]string, len(header))
		for i, h := range header {
			key := strings.TrimSpace(fmt.Sprint(h))
			if i < len(row) {
				rec[key] = strings.TrimSpace(fmt.Sprint(row[i]))
			} else {
				rec[key] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (t *sheetTable) WriteCell(ctx context.Context, row, col int, value string) error {
	rng := fmt.Sprintf("%s!%s%d", t.name, columnLetter(col), row+2) // +1 encabezado, +1 a 1-based
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{{value}}}
	_, err := t.svc.Spreadsheets.Values.
		Update(t.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return t.mapError("escribir celda", err)
	}
	return nil
}

func (t *sheetTable) WriteCellsBatch(ctx context.Context, updates []CellRangeUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	data := make([]*sheetsapi.ValueRange, 0, len(updates))
	for _, u := range updates {
		values := make([][]interface{}, 0, len(u.Values))
		for _, v := range u.Values {
			values = append(values, []interface{}{v})
		}
		data = append(data, &sheetsapi.ValueRange{
			Range: fmt.Sprintf("%s!%s%d:%s%d",
				t.name,
				columnLetter(u.Col), u.Row+2,
				columnLetter(u.Col), u.Row+2+len(u.Values)-1),
			Values: values,
		})
	}
	req := &sheetsapi.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             data,
	}
	_, err := t.svc.Spreadsheets.Values.
		BatchUpdate(t.spreadsheetID, req).
		Context(ctx).Do()
	if err != nil {
		return t.mapError("escribir lote", err)
	}
	return nil
}

// mapError convierte errores de la API en errores manejables por el dominio.
// Un 400 sobre un rango con nombre de hoja significa que la hoja no existe.
func (t *sheetTable) mapError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == 400 && strings.Contains(apiErr.Message, "Unable to parse range") {
			return domain.ErrHojaNoEncontrada
		}
	}
	return fmt.Errorf("%s en hoja %s: %w", op, t.name, err)
}

// columnLetter convierte un índice de columna 0-based a letras de hoja (A, B, ..., Z, AA, ...).
func columnLetter(col int) string {
	s := ""
	for col >= 0 {
		s = string(rune('A'+col%26)) + s
		col = col/26 - 1
	}
	return s
}
