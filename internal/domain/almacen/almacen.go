// Package almacen define el conjunto cerrado de almacenes de la fábrica y la
// normalización de sus nombres. Los nombres llegan de hojas editadas a mano, así
// que el mapa de alias incluye los errores de tipeo históricos conocidos.
package almacen

import "strings"

// Nombres canónicos de los cuatro almacenes. Coinciden con los encabezados de
// columna de la hoja de productos.
const (
	PorPulir   = "POR PULIR"           // materia prima sin pulir
	Terminado  = "P. TERMINADO"        // producto terminado (base de disponible)
	Ensamblado = "PRODUCTO ENSAMBLADO" // producto armado
	Cliente    = "CLIENTE"             // mercadería en poder del cliente
)

// alias mapea cada forma aceptada (tras trim y mayúsculas) a su nombre canónico.
// Solo las formas listadas aquí son válidas; los llamadores no deben inventar
// variantes nuevas sin agregarlas al mapa.
var alias = map[string]string{
	PorPulir:  PorPulir,
	"PULIR":   PorPulir,
	"X PULIR": PorPulir,

	Terminado:            Terminado,
	"P.TERMINADO":        Terminado,
	"TERMINADO":          Terminado,
	"PRODUCTO TERMINADO": Terminado,

	Ensamblado:             Ensamblado,
	"ENSAMBLADO":           Ensamblado,
	"PRODUCTO ENSAMBLDO":   Ensamblado, // typo histórico en la hoja
	"PRODUCTO ENSNAMBLADO": Ensamblado,

	Cliente:    Cliente,
	"CLIENTES": Cliente,
}

// Canonicos devuelve los cuatro nombres canónicos en el orden de la hoja.
func Canonicos() []string {
	return []string{PorPulir, Terminado, Ensamblado, Cliente}
}

// Normalize devuelve el nombre canónico del almacén. Si la forma no está en el
// mapa de alias devuelve la entrada limpiada (trim + mayúsculas) sin traducir;
// usar IsValid para distinguir ese caso.
func Normalize(name string) string {
	key := clean(name)
	if canon, ok := alias[key]; ok {
		return canon
	}
	return key
}

// IsValid indica si el nombre es una de las formas aceptadas (no alcanza con que
// la forma normalizada sea canónica: la forma escrita debe estar en el mapa).
func IsValid(name string) bool {
	_, ok := alias[clean(name)]
	return ok
}

func clean(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
