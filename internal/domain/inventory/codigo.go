// Package inventory contiene servicios de dominio puros del motor de inventario.
package inventory

import "strings"

// NormalizeCode canonicaliza un código de producto: si contiene guion toma el
// segmento después del último guion; siempre recorta espacios y pasa a mayúsculas.
// Así "FR-9304" y "9304" resuelven al mismo producto en las búsquedas.
func NormalizeCode(code string) string {
	s := strings.TrimSpace(code)
	if i := strings.LastIndex(s, "-"); i >= 0 {
		s = s[i+1:]
	}
	return strings.ToUpper(strings.TrimSpace(s))
}
