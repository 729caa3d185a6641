package entity

import "github.com/shopspring/decimal"

// SpendSnapshot agregado mensual de gasto calculado por el backend
// (/api/analytics/spend). El cliente guarda solo el snapshot más reciente,
// sin histórico.
type SpendSnapshot struct {
	Year        int
	Month       int
	TotalSpend  decimal.Decimal
	OrdersCount int
}
