package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/medsupply-pro/internal/application/dto"
	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
)

// ProductHandler catálogo del marketplace.
type ProductHandler struct {
	store *Store
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(store *Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// Create POST /api/vendor/products (solo vendor): alta con defaults del
// backend de referencia.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "name required"})
	}
	if in.Category == "" {
		in.Category = "general"
	}
	if in.Unit == "" {
		in.Unit = "pcs"
	}
	if in.MinThreshold == 0 {
		in.MinThreshold = 10
	}
	u := CurrentUser(c)
	id := h.store.AddProduct(entity.Product{
		VendorID:     u.ID,
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
	return c.JSON(dto.CreateProductResponse{OK: true, ProductID: id})
}

// List GET /api/products: catálogo con filtros ?q= ?vendor_id= ?sort_by=.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products := h.store.ListProducts(c.Query("q"), c.Query("vendor_id"), c.Query("sort_by", "price"))
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return c.JSON(out)
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		SKU:          p.SKU,
		Price:        p.Price,
		Stock:        p.Stock,
		Unit:         p.Unit,
		MinThreshold: p.MinThreshold,
		Vendor: dto.VendorResponse{
			ID:       p.Vendor.ID,
			Name:     p.Vendor.Name,
			Verified: p.Vendor.Verified,
		},
	}
}
