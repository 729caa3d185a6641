package dashboard_test

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/medsupply-pro/internal/application/dashboard"
	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
	"github.com/jhoicas/medsupply-pro/pkg/logger"
)

// fakeDataAPI cuenta las llamadas por recurso; las funciones son
// intercambiables por test.
type fakeDataAPI struct {
	productsFn func() ([]entity.Product, error)
	ordersFn   func() ([]entity.Order, error)
	spendFn    func() (entity.SpendSnapshot, error)

	productsCalls atomic.Int32
	ordersCalls   atomic.Int32
	spendCalls    atomic.Int32
}

func (f *fakeDataAPI) Products(context.Context, string) ([]entity.Product, error) {
	f.productsCalls.Add(1)
	return f.productsFn()
}

func (f *fakeDataAPI) Orders(context.Context, string) ([]entity.Order, error) {
	f.ordersCalls.Add(1)
	return f.ordersFn()
}

func (f *fakeDataAPI) SpendAnalytics(context.Context, string) (entity.SpendSnapshot, error) {
	f.spendCalls.Add(1)
	return f.spendFn()
}

func happyAPI() *fakeDataAPI {
	return &fakeDataAPI{
		productsFn: func() ([]entity.Product, error) {
			return []entity.Product{{ID: "p1", Name: "Surgical Gloves - M"}}, nil
		},
		ordersFn: func() ([]entity.Order, error) {
			return []entity.Order{{ID: "o1", Status: entity.OrderStatusPending}}, nil
		},
		spendFn: func() (entity.SpendSnapshot, error) {
			return entity.SpendSnapshot{Year: 2026, Month: 8, TotalSpend: decimal.NewFromInt(500), OrdersCount: 3}, nil
		},
	}
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error", Out: io.Discard})
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga por rol
// ──────────────────────────────────────────────────────────────────────────────

// Facility dispara los 3 GETs.
func TestLoad_FacilityCargaLosTresRecursos(t *testing.T) {
	api := happyAPI()
	l := dashboard.NewLoader(api, testLogger())

	l.Load(context.Background(), "tok", entity.User{ID: "u1", Role: entity.RoleFacility})

	assert.EqualValues(t, 1, api.productsCalls.Load())
	assert.EqualValues(t, 1, api.ordersCalls.Load())
	assert.EqualValues(t, 1, api.spendCalls.Load())

	assert.Len(t, l.Products(), 1)
	assert.Len(t, l.Orders(), 1)
	require.NotNil(t, l.Analytics())
	assert.Equal(t, 8, l.Analytics().Month)
	assert.NoError(t, l.Err())
	assert.False(t, l.Loading(), "el flag de carga debe quedar en false al terminar")
}

// Vendor solo pide productos; orders/analytics nunca se
// solicitan.
func TestLoad_VendorSoloPideProductos(t *testing.T) {
	api := happyAPI()
	l := dashboard.NewLoader(api, testLogger())

	l.Load(context.Background(), "tok", entity.User{ID: "v1", Role: entity.RoleVendor})

	assert.EqualValues(t, 1, api.productsCalls.Load())
	assert.EqualValues(t, 0, api.ordersCalls.Load(), "orders no debe solicitarse para vendor")
	assert.EqualValues(t, 0, api.spendCalls.Load(), "analytics no debe solicitarse para vendor")
	assert.Nil(t, l.Analytics())
}

func TestEnsureLoaded_UnaVezPorUsuario(t *testing.T) {
	api := happyAPI()
	l := dashboard.NewLoader(api, testLogger())
	user := entity.User{ID: "u1", Role: entity.RoleFacility}

	l.EnsureLoaded(context.Background(), "tok", user)
	l.EnsureLoaded(context.Background(), "tok", user) // cambio de pestaña: no recarga
	assert.EqualValues(t, 1, api.productsCalls.Load())

	// Usuario distinto (re-login) sí recarga.
	l.EnsureLoaded(context.Background(), "tok2", entity.User{ID: "u2", Role: entity.RoleFacility})
	assert.EqualValues(t, 2, api.productsCalls.Load())
}

func TestReset_PermiteRecargarTrasLogout(t *testing.T) {
	api := happyAPI()
	l := dashboard.NewLoader(api, testLogger())
	user := entity.User{ID: "u1", Role: entity.RoleFacility}

	l.EnsureLoaded(context.Background(), "tok", user)
	l.Reset()
	assert.Empty(t, l.Products())
	assert.Nil(t, l.Analytics())

	l.EnsureLoaded(context.Background(), "tok", user)
	assert.EqualValues(t, 2, api.productsCalls.Load())
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallos por recurso (modelo de éxito parcial)
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_FalloParcialConservaLoQueSiLlego(t *testing.T) {
	api := happyAPI()
	api.ordersFn = func() ([]entity.Order, error) { return nil, errors.New("boom") }
	l := dashboard.NewLoader(api, testLogger())

	l.Load(context.Background(), "tok", entity.User{ID: "u1", Role: entity.RoleFacility})

	assert.Len(t, l.Products(), 1, "productos cargados deben conservarse")
	assert.Empty(t, l.Orders())
	require.NotNil(t, l.Analytics(), "analytics falla independiente de orders")

	require.Len(t, l.Failures(), 1)
	assert.Error(t, l.Failures()[dashboard.ResourceOrders])
	assert.False(t, l.Loading(), "loading baja aunque haya fallos")
}

func TestErr_ColapsaFallosEnUnBanner(t *testing.T) {
	api := happyAPI()
	api.productsFn = func() ([]entity.Product, error) { return nil, errors.New("http 500") }
	api.spendFn = func() (entity.SpendSnapshot, error) { return entity.SpendSnapshot{}, errors.New("timeout") }
	l := dashboard.NewLoader(api, testLogger())

	l.Load(context.Background(), "tok", entity.User{ID: "u1", Role: entity.RoleFacility})

	err := l.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "products: http 500")
	assert.Contains(t, err.Error(), "analytics: timeout")
	assert.NotContains(t, err.Error(), "orders:", "orders no falló y no debe aparecer")
}

func TestErr_SinFallosEsNil(t *testing.T) {
	l := dashboard.NewLoader(happyAPI(), testLogger())
	l.Load(context.Background(), "tok", entity.User{ID: "v1", Role: entity.RoleVendor})
	assert.NoError(t, l.Err())
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones locales (append optimista tras el round-trip)
// ──────────────────────────────────────────────────────────────────────────────

func TestAppend_SinRefetch(t *testing.T) {
	api := happyAPI()
	l := dashboard.NewLoader(api, testLogger())
	l.Load(context.Background(), "tok", entity.User{ID: "u1", Role: entity.RoleFacility})

	l.AppendProduct(entity.Product{ID: "p2", Name: "Syringe 5ml"})
	l.AppendOrder(entity.Order{ID: "o2", Status: entity.OrderStatusPending})

	assert.Len(t, l.Products(), 2)
	assert.Len(t, l.Orders(), 2)
	assert.EqualValues(t, 1, api.productsCalls.Load(), "append nunca refetchea")
	assert.EqualValues(t, 1, api.ordersCalls.Load())
}
