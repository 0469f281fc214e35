package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/inventario-fabrica/internal/domain/almacen"
	"github.com/tu-usuario/inventario-fabrica/internal/domain/entity"
)

func TestProductStockEn(t *testing.T) {
	p := &entity.Product{Stock: map[string]int{almacen.PorPulir: 7}}
	assert.Equal(t, 7, p.StockEn(almacen.PorPulir))
	assert.Equal(t, 0, p.StockEn(almacen.Cliente))

	// sin mapa de stock todo da 0
	vacio := &entity.Product{}
	assert.Equal(t, 0, vacio.StockEn(almacen.Terminado))
}

func TestProductDisponible(t *testing.T) {
	p := &entity.Product{
		Stock:        map[string]int{almacen.Terminado: 10},
		Comprometido: 4,
	}
	assert.Equal(t, 6, p.Disponible())

	// comprometido desactualizado puede dejar el disponible negativo
	p.Comprometido = 12
	assert.Equal(t, -2, p.Disponible())
}

func TestProductBajoMinimo(t *testing.T) {
	casos := []struct {
		nombre    string
		terminado int
		minimo    int
		esperado  bool
	}{
		{"bajo el mínimo", 2, 3, true},
		{"justo en el mínimo", 3, 3, true},
		{"sobre el mínimo", 4, 3, false},
		{"sin mínimo configurado", 0, 0, false},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			p := &entity.Product{
				Stock:  map[string]int{almacen.Terminado: tc.terminado},
				Minimo: tc.minimo,
			}
			assert.Equal(t, tc.esperado, p.BajoMinimo())
		})
	}
}
