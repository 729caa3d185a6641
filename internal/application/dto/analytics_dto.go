package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
)

// SpendResponse snapshot mensual de GET /api/analytics/spend.
type SpendResponse struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	TotalSpend  decimal.Decimal `json:"total_spend"`
	OrdersCount int             `json:"orders_count"`
}

// ToEntity convierte el snapshot de la API al dominio.
func (r SpendResponse) ToEntity() entity.SpendSnapshot {
	return entity.SpendSnapshot{
		Year:        r.Year,
		Month:       r.Month,
		TotalSpend:  r.TotalSpend,
		OrdersCount: r.OrdersCount,
	}
}
