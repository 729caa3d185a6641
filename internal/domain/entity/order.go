package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de orden que emite el backend. Las transiciones son propiedad del
// backend; el cliente nunca muta un estado.
const (
	OrderStatusPending        = "pending"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
)

// PartySummary resumen de la contraparte (facility o vendor) de una orden.
type PartySummary struct {
	ID   string
	Name string
}

// OrderItem línea de una orden nueva. UnitPrice lo fija el backend al crear;
// el cliente solo envía producto y cantidad.
type OrderItem struct {
	ProductID string
	Qty       int
}

// Order pedido de un facility. Los ítems no se renderizan en detalle en el
// dashboard, solo el total y el estado.
type Order struct {
	ID          string
	Status      string
	TotalAmount decimal.Decimal
	Emergency   bool
	CreatedAt   time.Time
	Facility    *PartySummary
	Vendor      *PartySummary
}

// Active indica si la orden sigue en curso (todo estado distinto de
// delivered cuenta como activa).
func (o Order) Active() bool { return o.Status != OrderStatusDelivered }
