package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/medsupply-pro/internal/application/dto"
	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
)

// Products GET /api/products. Secuencia ordenada del catálogo visible.
func (c *Client) Products(ctx context.Context, token string) ([]entity.Product, error) {
	var out []dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, "/api/products", token, nil, &out); err != nil {
		return nil, err
	}
	products := make([]entity.Product, 0, len(out))
	for _, p := range out {
		products = append(products, p.ToEntity())
	}
	return products, nil
}

// Orders GET /api/orders. Solo tiene contenido para facilities (y vendors
// como contraparte); el cliente lo pide únicamente en sesiones facility.
func (c *Client) Orders(ctx context.Context, token string) ([]entity.Order, error) {
	var out []dto.OrderResponse
	if err := c.do(ctx, http.MethodGet, "/api/orders", token, nil, &out); err != nil {
		return nil, err
	}
	orders := make([]entity.Order, 0, len(out))
	for _, o := range out {
		orders = append(orders, o.ToEntity())
	}
	return orders, nil
}

// SpendAnalytics GET /api/analytics/spend. Snapshot mensual del facility.
func (c *Client) SpendAnalytics(ctx context.Context, token string) (entity.SpendSnapshot, error) {
	var out dto.SpendResponse
	if err := c.do(ctx, http.MethodGet, "/api/analytics/spend", token, nil, &out); err != nil {
		return entity.SpendSnapshot{}, err
	}
	return out.ToEntity(), nil
}

// CreateProduct POST /api/vendor/products. Devuelve el id asignado.
func (c *Client) CreateProduct(ctx context.Context, token string, in dto.CreateProductRequest) (string, error) {
	var out dto.CreateProductResponse
	if err := c.do(ctx, http.MethodPost, "/api/vendor/products", token, in, &out); err != nil {
		return "", err
	}
	if !out.OK || out.ProductID == "" {
		return "", fmt.Errorf("api: el backend no confirmó la creación del producto")
	}
	return out.ProductID, nil
}

// PlaceOrder POST /api/orders. Devuelve el id asignado.
func (c *Client) PlaceOrder(ctx context.Context, token string, in dto.PlaceOrderRequest) (string, error) {
	var out dto.PlaceOrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders", token, in, &out); err != nil {
		return "", err
	}
	if !out.OK || out.OrderID == "" {
		return "", fmt.Errorf("api: el backend no confirmó la orden")
	}
	return out.OrderID, nil
}
