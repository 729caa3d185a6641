// Package orders caso de uso de creación de órdenes (solo facilities). El
// backend fija precios, total y estado; el cliente anexa localmente una
// entrada pendiente con el id asignado. Los rechazos se devuelven al
// formulario.
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/medsupply-pro/internal/application/dashboard"
	"github.com/jhoicas/medsupply-pro/internal/application/dto"
	"github.com/jhoicas/medsupply-pro/internal/domain"
	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
	"github.com/jhoicas/medsupply-pro/pkg/logger"
)

// OrdersAPI mutación de órdenes en el backend.
type OrdersAPI interface {
	PlaceOrder(ctx context.Context, token string, in dto.PlaceOrderRequest) (orderID string, err error)
}

// PlaceOrderInput selección del formulario de orden.
type PlaceOrderInput struct {
	Items     []entity.OrderItem
	Emergency bool
}

// PlaceOrderUseCase valida, envía y anexa.
type PlaceOrderUseCase struct {
	api    OrdersAPI
	loader *dashboard.Loader
	log    *logger.Logger
}

// NewPlaceOrderUseCase construye el caso de uso.
func NewPlaceOrderUseCase(api OrdersAPI, loader *dashboard.Loader, log *logger.Logger) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{api: api, loader: loader, log: log}
}

// Execute crea la orden. El total local es un estimado con los precios del
// catálogo cargado, solo para mostrar la entrada recién anexada; el total
// autoritativo lo calcula el backend y llegará en la próxima sesión.
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, token string, user entity.User, in PlaceOrderInput) (*entity.Order, error) {
	if !user.IsFacility() {
		return nil, domain.ErrForbidden
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la orden requiere al menos un ítem", domain.ErrInvalidInput)
	}
	items := make([]dto.OrderItemRequest, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == "" || it.Qty <= 0 {
			return nil, fmt.Errorf("%w: cada ítem requiere producto y cantidad positiva", domain.ErrInvalidInput)
		}
		items = append(items, dto.OrderItemRequest{ProductID: it.ProductID, Qty: it.Qty})
	}

	id, err := uc.api.PlaceOrder(ctx, token, dto.PlaceOrderRequest{Items: items, Emergency: in.Emergency})
	if err != nil {
		return nil, err
	}

	o := entity.Order{
		ID:          id,
		Status:      entity.OrderStatusPending,
		TotalAmount: uc.estimateTotal(in.Items),
		Emergency:   in.Emergency,
		CreatedAt:   time.Now(),
		Facility:    &entity.PartySummary{ID: user.ID, Name: user.Name},
	}
	uc.loader.AppendOrder(o)
	uc.log.Info().Str("order_id", id).Bool("emergency", in.Emergency).Msg("orden creada")
	return &o, nil
}

// estimateTotal suma qty·price con los precios del catálogo en memoria.
// Productos que no estén en el catálogo local aportan 0.
func (uc *PlaceOrderUseCase) estimateTotal(items []entity.OrderItem) decimal.Decimal {
	byID := make(map[string]decimal.Decimal, len(uc.loader.Products()))
	for _, p := range uc.loader.Products() {
		byID[p.ID] = p.Price
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(byID[it.ProductID].Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return total
}
