package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/medsupply-pro/internal/application/dto"
	"github.com/jhoicas/medsupply-pro/internal/domain"
)

// OrderHandler órdenes del marketplace.
type OrderHandler struct {
	store *Store
}

// NewOrderHandler construye el handler de órdenes.
func NewOrderHandler(store *Store) *OrderHandler {
	return &OrderHandler{store: store}
}

// Place POST /api/orders (solo facility verificado). Reglas del backend de
// referencia: mismo vendor para todos los ítems y stock suficiente salvo
// emergencia.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	u := CurrentUser(c)
	if !u.Verified {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "facility not verified"})
	}
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "items required"})
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Qty <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid product"})
		}
	}
	o, err := h.store.PlaceOrder(u.ID, in.Items, in.Emergency)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "product not found"})
		case errors.Is(err, domain.ErrMixedVendors):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "all items must be from same vendor"})
		default:
			// stockError: "not enough stock for <name>"
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
	}
	return c.JSON(dto.PlaceOrderResponse{OK: true, OrderID: o.ID})
}

// List GET /api/orders: las órdenes visibles para el rol del usuario.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders := h.store.ListOrders(CurrentUser(c))
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp := dto.OrderResponse{
			ID:          o.ID,
			Status:      o.Status,
			TotalAmount: o.TotalAmount,
			Emergency:   o.Emergency,
			CreatedAt:   o.CreatedAt.Format("2006-01-02T15:04:05"),
		}
		if o.Facility != nil {
			resp.Facility = &dto.PartyResponse{ID: o.Facility.ID, Name: o.Facility.Name}
		}
		if o.Vendor != nil {
			resp.Vendor = &dto.PartyResponse{ID: o.Vendor.ID, Name: o.Vendor.Name}
		}
		out = append(out, resp)
	}
	return c.JSON(out)
}
