package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
	"github.com/jhoicas/medsupply-pro/internal/domain/view"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests TabsFor — composición de pestañas por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestTabsFor_FacilityVeLasCuatro(t *testing.T) {
	tabs := view.TabsFor(entity.RoleFacility)
	assert.Equal(t, []view.Tab{view.TabOverview, view.TabProducts, view.TabOrders, view.TabAnalytics}, tabs,
		"facility debe ver overview, products, orders y analytics en ese orden")
}

func TestTabsFor_VendorSoloOverviewYProducts(t *testing.T) {
	tabs := view.TabsFor(entity.RoleVendor)
	assert.Equal(t, []view.Tab{view.TabOverview, view.TabProducts}, tabs,
		"vendor no debe ver orders ni analytics")
}

func TestTabsFor_AdminVeLasCuatro(t *testing.T) {
	// En el backend solo los vendors pierden pestañas; admin ve todo.
	tabs := view.TabsFor(entity.RoleAdmin)
	assert.Len(t, tabs, 4)
}

func TestHasTab(t *testing.T) {
	tabs := view.TabsFor(entity.RoleVendor)
	assert.True(t, view.HasTab(tabs, view.TabProducts))
	assert.False(t, view.HasTab(tabs, view.TabOrders),
		"orders no debe estar disponible para vendor")
}

func TestDefaultTab_EsOverview(t *testing.T) {
	assert.Equal(t, view.TabOverview, view.DefaultTab)
}
