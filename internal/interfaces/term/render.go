package term

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
	"github.com/jhoicas/medsupply-pro/internal/domain/view"
)

// Renderer dibuja las vistas del dashboard en texto plano. Todo sale por el
// writer inyectado (stdout en el binario, un buffer en tests).
type Renderer struct {
	out io.Writer
}

// NewRenderer construye el renderer.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Banner muestra un error operativo. Se queda en pantalla hasta la próxima
// acción del usuario; cualquier navegación lo descarta.
func (r *Renderer) Banner(msg string) {
	fmt.Fprintf(r.out, "\n!! %s\n", msg)
}

// Loading placeholder mientras el loader trae las colecciones.
func (r *Renderer) Loading() {
	fmt.Fprintln(r.out, "Loading...")
}

// AuthScreen vista sin sesión: cómo entrar o crear cuenta.
func (r *Renderer) AuthScreen() {
	fmt.Fprintln(r.out, "MedSupply Pro")
	fmt.Fprintln(r.out, "  login <email> <password>")
	fmt.Fprintln(r.out, "  signup <facility|vendor> <email> <password> [name]")
}

// NavBar encabezado con el usuario, las pestañas del rol y la activa.
func (r *Renderer) NavBar(user entity.User, tabs []view.Tab, active view.Tab) {
	fmt.Fprintf(r.out, "\n── MedSupply Pro ── %s (%s)", user.DisplayName(), user.Role)
	if !user.Verified {
		fmt.Fprint(r.out, " [sin verificar]")
	}
	fmt.Fprintln(r.out)
	for _, t := range tabs {
		if t == active {
			fmt.Fprintf(r.out, " [%s]", t.Label())
		} else {
			fmt.Fprintf(r.out, "  %s ", t.Label())
		}
	}
	fmt.Fprintln(r.out)
}

// Overview tarjetas de resumen más los widgets de recientes.
func (r *Renderer) Overview(user entity.User, products []entity.Product, orders []entity.Order, snapshot *entity.SpendSnapshot) {
	stats := view.BuildOverview(user, products, orders, snapshot)
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Total products\t%d\n", stats.TotalProducts)
	fmt.Fprintf(w, "Active orders\t%d\n", stats.ActiveOrders)
	fmt.Fprintf(w, "Monthly spend\t$%s\n", stats.MonthlySpend.StringFixed(2))
	fmt.Fprintf(w, "Verified\t%t\n", stats.Verified)
	w.Flush()

	if recent := view.RecentProducts(products); len(recent) > 0 {
		fmt.Fprintln(r.out, "\nRecent products:")
		for _, p := range recent {
			fmt.Fprintf(r.out, "  %s ($%s)\n", p.Name, p.Price.StringFixed(2))
		}
	}
	if recent := view.RecentOrders(orders); len(recent) > 0 {
		fmt.Fprintln(r.out, "\nRecent orders:")
		for _, o := range recent {
			fmt.Fprintf(r.out, "  %s  $%s  %s\n", shortID(o.ID), o.TotalAmount.StringFixed(2), o.Status)
		}
	}
}

// Products catálogo filtrado por el término vigente. Los productos con stock
// bajo se marcan con "(low)".
func (r *Renderer) Products(products []entity.Product, term string) {
	filtered := view.FilterProducts(products, term)
	if term != "" {
		fmt.Fprintf(r.out, "Filter: %q\n", term)
	}
	if len(filtered) == 0 {
		fmt.Fprintln(r.out, "No products found")
		return
	}
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK\tVENDOR")
	for _, p := range filtered {
		stock := fmt.Sprintf("%d %s", p.Stock, p.Unit)
		if p.LowStock() {
			stock += " (low)"
		}
		vendor := p.Vendor.Name
		if p.Vendor.Verified {
			vendor += " ✓"
		}
		fmt.Fprintf(w, "%s\t%s\t$%s\t%s\t%s\n", shortID(p.ID), p.Name, p.Price.StringFixed(2), stock, vendor)
	}
	w.Flush()
}

// Orders órdenes del facility, más recientes primero según el backend.
func (r *Renderer) Orders(orders []entity.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(r.out, "No orders found")
		return
	}
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTOTAL\tVENDOR\tCREATED")
	for _, o := range orders {
		vendor := "-"
		if o.Vendor != nil {
			vendor = o.Vendor.Name
		}
		status := o.Status
		if o.Emergency {
			status += " (emergency)"
		}
		fmt.Fprintf(w, "%s\t%s\t$%s\t%s\t%s\n",
			shortID(o.ID), status, o.TotalAmount.StringFixed(2), vendor, o.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

// Analytics tarjetas de gasto mensual; sin snapshot muestra ceros y el mes
// en curso.
func (r *Renderer) Analytics(snapshot *entity.SpendSnapshot, now time.Time) {
	stats := view.BuildAnalytics(snapshot, now)
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Month\t%s\n", time.Month(stats.Month))
	fmt.Fprintf(w, "Total spend\t$%s\n", stats.TotalSpend.StringFixed(2))
	fmt.Fprintf(w, "Orders\t%d\n", stats.OrdersCount)
	w.Flush()
}

// shortID recorta UUIDs para que las tablas quepan en una terminal angosta.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
