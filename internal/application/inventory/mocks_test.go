package inventory_test

import (
	"context"
	"strings"

	"github.com/tu-usuario/inventario-fabrica/internal/domain"
	"github.com/tu-usuario/inventario-fabrica/internal/domain/entity"
	domInv "github.com/tu-usuario/inventario-fabrica/internal/domain/inventory"
)

// fakeProductRepo es un catálogo en memoria con ganchos para inyectar fallas
// de escritura por almacén.
type fakeProductRepo struct {
	products []*entity.Product

	// setStockErr, si no es nil, se evalúa antes de cada escritura; devolver un
	// error rechaza la escritura sin mutar el stock.
	setStockErr func(codigo, almacen string, cantidad int) error

	overwriteErr     error
	lastComprometido []int
	setStockCalls    int
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	return &fakeProductRepo{products: products}
}

func (r *fakeProductRepo) find(code string) *entity.Product {
	raw := strings.ToUpper(strings.TrimSpace(code))
	norm := domInv.NormalizeCode(code)
	for _, p := range r.products {
		if p.CodigoSistema == raw || p.Codigo == raw || domInv.NormalizeCode(p.CodigoSistema) == norm {
			return p
		}
	}
	return nil
}

func (r *fakeProductRepo) FindByCode(_ context.Context, code string) (*entity.Product, error) {
	if p := r.find(code); p != nil {
		return p, nil
	}
	return nil, domain.ErrProductoNoEncontrado
}

func (r *fakeProductRepo) GetStock(_ context.Context, code, almacen string) (int, error) {
	p := r.find(code)
	if p == nil {
		return 0, domain.ErrProductoNoEncontrado
	}
	return p.Stock[almacen], nil
}

func (r *fakeProductRepo) SetStock(_ context.Context, code, almacen string, cantidad int) error {
	if r.setStockErr != nil {
		if err := r.setStockErr(code, almacen, cantidad); err != nil {
			return err
		}
	}
	p := r.find(code)
	if p == nil {
		return domain.ErrProductoNoEncontrado
	}
	if p.Stock == nil {
		p.Stock = make(map[string]int)
	}
	p.Stock[almacen] = cantidad
	r.setStockCalls++
	return nil
}

func (r *fakeProductRepo) ListAll(context.Context) ([]*entity.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) Search(_ context.Context, term string, limit int) ([]*entity.Product, error) {
	needle := strings.ToUpper(strings.TrimSpace(term))
	var out []*entity.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToUpper(p.CodigoSistema+" "+p.Codigo+" "+p.Descripcion), needle) {
			out = append(out, p)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (r *fakeProductRepo) OverwriteComprometido(_ context.Context, valores []int) error {
	r.lastComprometido = append([]int(nil), valores...)
	if r.overwriteErr != nil {
		return r.overwriteErr
	}
	for _, p := range r.products {
		if p.Fila >= 0 && p.Fila < len(valores) {
			p.Comprometido = valores[p.Fila]
		}
	}
	return nil
}

// fakeOrderRepo devuelve una lista fija de renglones de pedido.
type fakeOrderRepo struct {
	lines []entity.OrderLine
	err   error
}

func (r *fakeOrderRepo) ListLines(context.Context) ([]entity.OrderLine, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.lines, nil
}
