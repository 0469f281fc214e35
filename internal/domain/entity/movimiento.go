package entity

// Tipos de movimiento de inventario.
const (
	MovementTypeIN       = "IN"       // entrada
	MovementTypeOUT      = "OUT"      // salida
	MovementTypeTRANSFER = "TRANSFER" // traslado entre almacenes
)

// Movement describe una operación efímera sobre el stock. No se persiste como
// asiento: solo correlaciona los logs de una misma operación (una transferencia
// genera salida, entrada y eventualmente compensación bajo el mismo ID).
type Movement struct {
	ID       string // uuid por operación
	Codigo   string
	Cantidad int
	Tipo     string
	Origen   string // OUT y TRANSFER
	Destino  string // IN y TRANSFER
}
