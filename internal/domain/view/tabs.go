// Package view contiene la lógica pura de presentación del dashboard:
// pestañas por rol, filtrado del catálogo y agregados de resumen. Nada aquí
// hace I/O; todo es derivable de las colecciones en memoria.
package view

import "github.com/jhoicas/medsupply-pro/internal/domain/entity"

// Tab identificador de una vista del dashboard.
type Tab string

const (
	TabOverview  Tab = "overview"
	TabProducts  Tab = "products"
	TabOrders    Tab = "orders"
	TabAnalytics Tab = "analytics"
)

// DefaultTab pestaña activa al entrar al dashboard.
const DefaultTab = TabOverview

// Label etiqueta visible de la pestaña.
func (t Tab) Label() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabProducts:
		return "Products"
	case TabOrders:
		return "Orders"
	case TabAnalytics:
		return "Analytics"
	}
	return string(t)
}

// TabsFor devuelve, en orden, las pestañas visibles para un rol. Los vendors
// no ven órdenes ni analítica; cualquier otro rol ve las cuatro.
func TabsFor(role string) []Tab {
	if role == entity.RoleVendor {
		return []Tab{TabOverview, TabProducts}
	}
	return []Tab{TabOverview, TabProducts, TabOrders, TabAnalytics}
}

// HasTab indica si la pestaña está disponible en el conjunto dado.
func HasTab(tabs []Tab, t Tab) bool {
	for _, x := range tabs {
		if x == t {
			return true
		}
	}
	return false
}
