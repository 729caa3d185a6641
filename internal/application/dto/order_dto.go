package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
)

// OrderItemRequest línea de una orden nueva; el precio unitario lo fija el
// backend al momento de crear.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// PlaceOrderRequest entrada de POST /api/orders (solo facility).
type PlaceOrderRequest struct {
	Items     []OrderItemRequest `json:"items"`
	Emergency bool               `json:"emergency"`
}

// PlaceOrderResponse respuesta {ok, order_id}.
type PlaceOrderResponse struct {
	OK      bool   `json:"ok"`
	OrderID string `json:"order_id"`
}

// PartyResponse resumen de facility o vendor en una orden listada.
type PartyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrderResponse entrada de GET /api/orders.
type OrderResponse struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Emergency   bool            `json:"emergency"`
	CreatedAt   string          `json:"created_at"`
	Facility    *PartyResponse  `json:"facility"`
	Vendor      *PartyResponse  `json:"vendor"`
}

// ToEntity convierte la orden de la API al dominio.
func (r OrderResponse) ToEntity() entity.Order {
	o := entity.Order{
		ID:          r.ID,
		Status:      r.Status,
		TotalAmount: r.TotalAmount,
		Emergency:   r.Emergency,
		CreatedAt:   ParseTime(r.CreatedAt),
	}
	if r.Facility != nil {
		o.Facility = &entity.PartySummary{ID: r.Facility.ID, Name: r.Facility.Name}
	}
	if r.Vendor != nil {
		o.Vendor = &entity.PartySummary{ID: r.Vendor.ID, Name: r.Vendor.Name}
	}
	return o
}
