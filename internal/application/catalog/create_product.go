// Package catalog caso de uso de alta de productos (solo vendors). El
// backend asigna el id; el cliente anexa el producto a la colección local
// sin refetch. A diferencia del cliente original, un rechazo del backend se
// devuelve al formulario en lugar de tragarse en silencio.
package catalog

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/medsupply-pro/internal/application/dashboard"
	"github.com/jhoicas/medsupply-pro/internal/application/dto"
	"github.com/jhoicas/medsupply-pro/internal/domain"
	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
	"github.com/jhoicas/medsupply-pro/pkg/logger"
)

// Defaults del formulario de alta; todo campo fuera de name/price/stock es
// opcional.
const (
	DefaultCategory     = "general"
	DefaultUnit         = "pcs"
	DefaultMinThreshold = 10
)

// CatalogAPI mutación de catálogo en el backend.
type CatalogAPI interface {
	CreateProduct(ctx context.Context, token string, in dto.CreateProductRequest) (productID string, err error)
}

// CreateProductInput campos del formulario. Price y Stock llegan ya
// parseados; la presencia se valida aquí, en la frontera.
type CreateProductInput struct {
	Name         string
	Category     string
	SKU          string
	Price        decimal.Decimal
	Stock        int
	Unit         string
	MinThreshold int
	WarehouseLat *float64
	WarehouseLon *float64
}

// CreateProductUseCase valida, envía y anexa.
type CreateProductUseCase struct {
	api    CatalogAPI
	loader *dashboard.Loader
	log    *logger.Logger
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(api CatalogAPI, loader *dashboard.Loader, log *logger.Logger) *CreateProductUseCase {
	return &CreateProductUseCase{api: api, loader: loader, log: log}
}

// Execute crea el producto a nombre del vendor autenticado. En éxito
// devuelve el producto ya anexado (campos del formulario + id del backend +
// resumen del vendor de la sesión).
func (uc *CreateProductUseCase) Execute(ctx context.Context, token string, user entity.User, in CreateProductInput) (*entity.Product, error) {
	if !user.IsVendor() {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.Price.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: price debe ser mayor que 0", domain.ErrInvalidInput)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: stock no puede ser negativo", domain.ErrInvalidInput)
	}

	if in.Category == "" {
		in.Category = DefaultCategory
	}
	if in.Unit == "" {
		in.Unit = DefaultUnit
	}
	if in.MinThreshold == 0 {
		in.MinThreshold = DefaultMinThreshold
	}

	id, err := uc.api.CreateProduct(ctx, token, dto.CreateProductRequest{
		Name:         in.Name,
		Category:     in.Category,
		SKU:          in.SKU,
		Price:        in.Price,
		Stock:        in.Stock,
		Unit:         in.Unit,
		MinThreshold: in.MinThreshold,
		WarehouseLat: in.WarehouseLat,
		WarehouseLon: in.WarehouseLon,
	})
	if err != nil {
		// El fallo se devuelve al formulario; el catálogo local no cambia.
		return nil, err
	}

	p := entity.Product{
		ID:           id,
		VendorID:     user.ID,
		Name:         in.Name,
		Category:     in.Category,
		SKU:          in.SKU,
		Price:        in.Price,
		Stock:        in.Stock,
		Unit:         in.Unit,
		MinThreshold: in.MinThreshold,
		WarehouseLat: in.WarehouseLat,
		WarehouseLon: in.WarehouseLon,
		Vendor: entity.VendorSummary{
			ID:       user.ID,
			Name:     user.Name,
			Verified: user.Verified,
		},
	}
	uc.loader.AppendProduct(p)
	uc.log.Info().Str("product_id", id).Str("name", in.Name).Msg("producto creado")
	return &p, nil
}
