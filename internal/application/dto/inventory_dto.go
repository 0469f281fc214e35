package dto

// MovimientoRequest body para POST /api/inventory/entrada y /api/inventory/salida.
type MovimientoRequest struct {
	Codigo   string `json:"codigo"`
	Cantidad int    `json:"cantidad"`
	Almacen  string `json:"almacen"`
}

// TrasladoRequest body para POST /api/inventory/traslado.
type TrasladoRequest struct {
	Codigo   string `json:"codigo"`
	Cantidad int    `json:"cantidad"`
	Origen   string `json:"origen"`
	Destino  string `json:"destino"`
}

// MovimientoResponse respuesta de una operación de movimiento.
type MovimientoResponse struct {
	Mensaje string `json:"mensaje"`
}
