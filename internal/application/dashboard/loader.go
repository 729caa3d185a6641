// Package dashboard carga y posee las colecciones que consumen las vistas:
// productos (todos los roles) y, para facilities, órdenes y analítica de
// gasto. Las vistas reciben referencias de solo lectura; las mutaciones
// entran por los casos de uso de catalog/orders, que anexan aquí tras el
// round-trip al backend.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
	"github.com/jhoicas/medsupply-pro/pkg/logger"
)

// Resource nombre de cada colección cargada, para atribuir fallos por
// recurso en lugar de colapsarlos en un único mensaje.
type Resource string

const (
	ResourceProducts  Resource = "products"
	ResourceOrders    Resource = "orders"
	ResourceAnalytics Resource = "analytics"
)

// resourceOrder orden estable para mensajes y recorridos.
var resourceOrder = []Resource{ResourceProducts, ResourceOrders, ResourceAnalytics}

// Loader dueño de las colecciones en memoria durante una sesión autenticada.
// No es seguro para uso concurrente: se opera desde el bucle de eventos del
// cliente; la concurrencia interna de Load no escapa de la llamada.
type Loader struct {
	api DataAPI
	log *logger.Logger

	forUser   string
	loading   bool
	products  []entity.Product
	orders    []entity.Order
	analytics *entity.SpendSnapshot
	failures  map[Resource]error
}

// NewLoader construye el loader vacío.
func NewLoader(api DataAPI, log *logger.Logger) *Loader {
	return &Loader{api: api, log: log, failures: map[Resource]error{}}
}

// Load trae todo lo que el rol permite: productos siempre; órdenes y
// analítica solo para facilities, en paralelo. Cada fetch falla de forma
// independiente: los datos parciales de los que sí respondieron se
// conservan y el fallo queda atribuido por recurso. El flag de carga solo
// baja cuando todas las llamadas emitidas terminaron.
func (l *Loader) Load(ctx context.Context, token string, user entity.User) {
	l.loading = true
	defer func() { l.loading = false }()

	l.failures = map[Resource]error{}
	l.forUser = user.ID

	type productsResult struct {
		items []entity.Product
		err   error
	}
	type ordersResult struct {
		items []entity.Order
		err   error
	}
	type analyticsResult struct {
		snap entity.SpendSnapshot
		err  error
	}

	prodCh := make(chan productsResult, 1)
	go func() {
		items, err := l.api.Products(ctx, token)
		prodCh <- productsResult{items, err}
	}()

	var ordCh chan ordersResult
	var anCh chan analyticsResult
	if user.IsFacility() {
		ordCh = make(chan ordersResult, 1)
		anCh = make(chan analyticsResult, 1)
		go func() {
			items, err := l.api.Orders(ctx, token)
			ordCh <- ordersResult{items, err}
		}()
		go func() {
			snap, err := l.api.SpendAnalytics(ctx, token)
			anCh <- analyticsResult{snap, err}
		}()
	}

	prod := <-prodCh
	if prod.err != nil {
		l.failures[ResourceProducts] = prod.err
	} else {
		l.products = prod.items
	}

	if ordCh != nil {
		ord := <-ordCh
		if ord.err != nil {
			l.failures[ResourceOrders] = ord.err
		} else {
			l.orders = ord.items
		}
		an := <-anCh
		if an.err != nil {
			l.failures[ResourceAnalytics] = an.err
		} else {
			snap := an.snap
			l.analytics = &snap
		}
	}

	l.log.Debug().
		Str("user", user.ID).
		Int("products", len(l.products)).
		Int("orders", len(l.orders)).
		Int("failures", len(l.failures)).
		Msg("dashboard cargado")
}

// EnsureLoaded carga una sola vez por usuario resuelto; un usuario distinto
// (re-login) dispara la recarga. Cambiar de pestaña nunca pasa por aquí.
func (l *Loader) EnsureLoaded(ctx context.Context, token string, user entity.User) {
	if l.forUser == user.ID {
		return
	}
	l.Load(ctx, token, user)
}

// Loading indica si hay una carga en curso; las vistas muestran un
// placeholder en lugar de datos parciales mientras esté en true.
func (l *Loader) Loading() bool { return l.loading }

// Products colección de solo lectura para las vistas.
func (l *Loader) Products() []entity.Product { return l.products }

// Orders colección de solo lectura para las vistas (vacía para vendors).
func (l *Loader) Orders() []entity.Order { return l.orders }

// Analytics snapshot más reciente, o nil si no se cargó (vendor o fallo).
func (l *Loader) Analytics() *entity.SpendSnapshot { return l.analytics }

// Failures fallos atribuidos por recurso de la última carga.
func (l *Loader) Failures() map[Resource]error { return l.failures }

// Err colapsa los fallos en un único mensaje para el banner, preservando el
// render todo-o-nada original. nil si la última carga fue completa.
func (l *Loader) Err() error {
	if len(l.failures) == 0 {
		return nil
	}
	parts := make([]string, 0, len(l.failures))
	for _, r := range resourceOrder {
		if err, ok := l.failures[r]; ok {
			parts = append(parts, fmt.Sprintf("%s: %v", r, err))
		}
	}
	return fmt.Errorf("failed to load data (%s)", strings.Join(parts, "; "))
}

// AppendProduct anexa un producto recién creado sin refetch.
func (l *Loader) AppendProduct(p entity.Product) {
	l.products = append(l.products, p)
}

// AppendOrder anexa una orden recién creada sin refetch.
func (l *Loader) AppendOrder(o entity.Order) {
	l.orders = append(l.orders, o)
}

// Reset descarta las colecciones al cerrar sesión; el próximo usuario
// resuelto vuelve a cargar desde cero.
func (l *Loader) Reset() {
	l.forUser = ""
	l.products = nil
	l.orders = nil
	l.analytics = nil
	l.failures = map[Resource]error{}
}
