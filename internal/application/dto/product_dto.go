package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
)

// CreateProductRequest entrada de POST /api/vendor/products. Los defaults
// (category=general, unit=pcs, min_threshold=10) los aplica el caso de uso
// antes de enviar; aquí viaja lo que el vendor confirmó.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	SKU          string          `json:"sku,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	Unit         string          `json:"unit"`
	MinThreshold int             `json:"min_threshold"`
	WarehouseLat *float64        `json:"warehouse_lat,omitempty"`
	WarehouseLon *float64        `json:"warehouse_lon,omitempty"`
}

// CreateProductResponse respuesta {ok, product_id}.
type CreateProductResponse struct {
	OK        bool   `json:"ok"`
	ProductID string `json:"product_id"`
}

// VendorResponse resumen del vendor embebido en cada producto.
type VendorResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
}

// ProductResponse entrada de GET /api/products. El backend de referencia
// emite {id, name, price, stock, vendor}; el resto de campos es opcional y
// queda en cero si el backend no los envía.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category,omitempty"`
	SKU          string          `json:"sku,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	Unit         string          `json:"unit,omitempty"`
	MinThreshold int             `json:"min_threshold,omitempty"`
	Vendor       VendorResponse  `json:"vendor"`
}

// ToEntity convierte el producto de la API al dominio.
func (r ProductResponse) ToEntity() entity.Product {
	return entity.Product{
		ID:           r.ID,
		VendorID:     r.Vendor.ID,
		Name:         r.Name,
		Category:     r.Category,
		SKU:          r.SKU,
		Price:        r.Price,
		Stock:        r.Stock,
		Unit:         r.Unit,
		MinThreshold: r.MinThreshold,
		Vendor: entity.VendorSummary{
			ID:       r.Vendor.ID,
			Name:     r.Vendor.Name,
			Verified: r.Vendor.Verified,
		},
	}
}
