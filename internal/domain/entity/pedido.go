package entity

import "strings"

// Estados del ciclo de vida de un pedido de venta. Los pedidos los produce el
// subsistema de ventas; aquí solo se leen para calcular stock comprometido.
const (
	PedidoPendiente  = "PENDIENTE"
	PedidoEnProceso  = "EN PROCESO"
	PedidoCompletado = "COMPLETADO"
	PedidoCancelado  = "CANCELADO"
)

// OrderLine es un renglón de pedido leído de la hoja de pedidos.
type OrderLine struct {
	PedidoID   string
	Codigo     string // código del producto tal como va en el pedido (sin normalizar guiones)
	Cantidad   int
	Estado     string
	Despachado bool
}

// Comprometida indica si la línea aporta a los totales de stock comprometido:
// activa salvo que el pedido esté completado o cancelado, o la línea ya despachada.
func (l OrderLine) Comprometida() bool {
	if l.Despachado {
		return false
	}
	switch strings.ToUpper(strings.TrimSpace(l.Estado)) {
	case PedidoCompletado, PedidoCancelado:
		return false
	}
	return true
}

// ClaveComprometido es la clave con que la línea suma a los totales: el código en
// mayúsculas y sin espacios. A propósito no se normalizan guiones: el comprometido
// se lleva por el código tal como lo escribió el pedido.
func (l OrderLine) ClaveComprometido() string {
	return strings.ToUpper(strings.TrimSpace(l.Codigo))
}
