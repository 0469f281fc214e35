package usecase

import (
	"context"

	"github.com/tu-usuario/inventario-fabrica/internal/application/dto"
	"github.com/tu-usuario/inventario-fabrica/internal/domain/entity"
	"github.com/tu-usuario/inventario-fabrica/internal/domain/repository"
)

// ProductUseCase consultas de catálogo: detalle, listado, búsqueda y alerta de
// reposición. Todas son de solo lectura sobre la hoja de productos.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// GetDetail devuelve el detalle de un producto: stock por almacén, comprometido,
// disponible (terminado - comprometido) y mínimo.
func (uc *ProductUseCase) GetDetail(ctx context.Context, code string) (*dto.ProductDetailResponse, error) {
	p, err := uc.products.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return toProductDetail(p), nil
}

// List devuelve todos los productos del catálogo.
func (uc *ProductUseCase) List(ctx context.Context) ([]*dto.ProductDetailResponse, error) {
	products, err := uc.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toProductDetails(products), nil
}

// Search busca por subcadena en códigos y descripción.
func (uc *ProductUseCase) Search(ctx context.Context, term string, limit int) ([]*dto.ProductDetailResponse, error) {
	products, err := uc.products.Search(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	return toProductDetails(products), nil
}

// LowStock devuelve los productos cuyo stock terminado está en o bajo su mínimo,
// para armar la lista de reposición.
func (uc *ProductUseCase) LowStock(ctx context.Context) ([]*dto.ProductDetailResponse, error) {
	products, err := uc.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductDetailResponse, 0)
	for _, p := range products {
		if p.BajoMinimo() {
			out = append(out, toProductDetail(p))
		}
	}
	return out, nil
}

func toProductDetail(p *entity.Product) *dto.ProductDetailResponse {
	stock := make(map[string]int, len(p.Stock))
	for k, v := range p.Stock {
		stock[k] = v
	}
	return &dto.ProductDetailResponse{
		CodigoSistema: p.CodigoSistema,
		Codigo:        p.Codigo,
		Descripcion:   p.Descripcion,
		CodigoCliente: p.CodigoCliente,
		Stock:         stock,
		Comprometido:  p.Comprometido,
		Disponible:    p.Disponible(),
		Minimo:        p.Minimo,
	}
}

func toProductDetails(products []*entity.Product) []*dto.ProductDetailResponse {
	out := make([]*dto.ProductDetailResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDetail(p))
	}
	return out
}
