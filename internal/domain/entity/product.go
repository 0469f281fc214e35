package entity

import "github.com/tu-usuario/inventario-fabrica/internal/domain/almacen"

// Product representa una fila del catálogo de productos en la hoja remota.
// Las cantidades son unidades enteras no negativas; Comprometido es la reserva
// por pedidos abiertos y Minimo el umbral de alerta de reposición.
type Product struct {
	Fila          int    // posición de la fila de datos en la hoja (0 = primera fila bajo el encabezado)
	CodigoSistema string // código único del sistema, p.ej. "FR-9304"
	Codigo        string // código corto alterno, p.ej. "9304"
	Descripcion   string
	CodigoCliente string         // código de referencia cruzada del cliente
	Stock         map[string]int // cantidad por almacén canónico
	Comprometido  int
	Minimo        int
}

// StockEn devuelve la cantidad en un almacén canónico; 0 si no hay dato.
func (p *Product) StockEn(nombre string) int {
	if p.Stock == nil {
		return 0
	}
	return p.Stock[nombre]
}

// Disponible es stock terminado menos comprometido. Puede ser negativo de forma
// transitoria si el comprometido está desactualizado respecto a consumos recientes;
// eso se tolera hasta la próxima resincronización.
func (p *Product) Disponible() int {
	return p.StockEn(almacen.Terminado) - p.Comprometido
}

// BajoMinimo indica si el stock terminado está en o bajo el umbral de reposición.
func (p *Product) BajoMinimo() bool {
	return p.Minimo > 0 && p.StockEn(almacen.Terminado) <= p.Minimo
}
