package view

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
)

const recentLimit = 5 // entradas en los widgets "Recent" del overview

// OverviewStats tarjetas de la vista Overview.
type OverviewStats struct {
	TotalProducts int
	ActiveOrders  int
	MonthlySpend  decimal.Decimal
	Verified      bool
}

// AnalyticsStats tarjetas de la vista Analytics. Cuando no hay snapshot
// cargado (rol vendor, o aún sin respuesta) los valores son 0/0/mes actual.
type AnalyticsStats struct {
	TotalSpend  decimal.Decimal
	OrdersCount int
	Month       int
}

// ActiveOrders cuenta las órdenes en curso: toda orden cuyo estado no sea
// "delivered". Colección vacía cuenta 0.
func ActiveOrders(orders []entity.Order) int {
	n := 0
	for _, o := range orders {
		if o.Active() {
			n++
		}
	}
	return n
}

// BuildOverview deriva las tarjetas del overview de las colecciones cargadas.
// snapshot puede ser nil (vendor, o analítica aún no cargada).
func BuildOverview(user entity.User, products []entity.Product, orders []entity.Order, snapshot *entity.SpendSnapshot) OverviewStats {
	spend := decimal.Zero
	if snapshot != nil {
		spend = snapshot.TotalSpend
	}
	return OverviewStats{
		TotalProducts: len(products),
		ActiveOrders:  ActiveOrders(orders),
		MonthlySpend:  spend,
		Verified:      user.Verified,
	}
}

// BuildAnalytics deriva las tarjetas de analítica. now se inyecta para poder
// fijar el mes por defecto en tests.
func BuildAnalytics(snapshot *entity.SpendSnapshot, now time.Time) AnalyticsStats {
	if snapshot == nil {
		return AnalyticsStats{TotalSpend: decimal.Zero, Month: int(now.Month())}
	}
	return AnalyticsStats{
		TotalSpend:  snapshot.TotalSpend,
		OrdersCount: snapshot.OrdersCount,
		Month:       snapshot.Month,
	}
}

// RecentProducts primeras entradas del catálogo para el widget del overview.
func RecentProducts(products []entity.Product) []entity.Product {
	if len(products) <= recentLimit {
		return products
	}
	return products[:recentLimit]
}

// RecentOrders primeras órdenes para el widget del overview.
func RecentOrders(orders []entity.Order) []entity.Order {
	if len(orders) <= recentLimit {
		return orders
	}
	return orders[:recentLimit]
}
