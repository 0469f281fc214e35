package dto

// ProductDetailResponse detalle de un producto: stock por almacén, comprometido,
// disponible y mínimo de reposición.
type ProductDetailResponse struct {
	CodigoSistema string         `json:"codigo_sistema"`
	Codigo        string         `json:"codigo"`
	Descripcion   string         `json:"descripcion"`
	CodigoCliente string         `json:"codigo_cliente,omitempty"`
	Stock         map[string]int `json:"stock"`
	Comprometido  int            `json:"comprometido"`
	Disponible    int            `json:"disponible"`
	Minimo        int            `json:"minimo"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Total     int                      `json:"total"`
	Productos []*ProductDetailResponse `json:"productos"`
}
