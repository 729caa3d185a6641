// Package term es la capa de presentación del cliente: un bucle de comandos
// sobre stdin que opera la sesión, el loader y los casos de uso, y dibuja la
// vista activa en stdout. Toda la lógica de presentación pura vive en
// domain/view; aquí solo hay parseo de comandos y orquestación.
package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/medsupply-pro/internal/application/catalog"
	"github.com/jhoicas/medsupply-pro/internal/application/dashboard"
	"github.com/jhoicas/medsupply-pro/internal/application/dto"
	"github.com/jhoicas/medsupply-pro/internal/application/orders"
	"github.com/jhoicas/medsupply-pro/internal/application/session"
	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
	"github.com/jhoicas/medsupply-pro/internal/domain/view"
	"github.com/jhoicas/medsupply-pro/pkg/logger"
)

// App bucle de eventos del cliente. Single-threaded: cada comando se procesa
// completo (incluidas las llamadas al backend) antes de leer el siguiente.
type App struct {
	session       *session.Manager
	loader        *dashboard.Loader
	createProduct *catalog.CreateProductUseCase
	placeOrder    *orders.PlaceOrderUseCase
	render        *Renderer
	log           *logger.Logger

	in io.Reader

	activeTab  view.Tab
	searchTerm string
	banner     string
}

// NewApp cablea la app con sus dependencias.
func NewApp(sess *session.Manager, loader *dashboard.Loader, create *catalog.CreateProductUseCase, place *orders.PlaceOrderUseCase, render *Renderer, in io.Reader, log *logger.Logger) *App {
	return &App{
		session:       sess,
		loader:        loader,
		createProduct: create,
		placeOrder:    place,
		render:        render,
		log:           log,
		in:            in,
		activeTab:     view.DefaultTab,
	}
}

// Run arranca: restaura la sesión persistida si la hay y entra al bucle de
// comandos hasta EOF, quit o cancelación del contexto.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Bootstrap(ctx); err != nil {
		// El token guardado no sirvió; la sesión ya quedó limpia y se
		// muestra la vista de auth como si no hubiera habido token.
		a.log.Debug().Err(err).Msg("sesión persistida descartada")
	}
	if a.session.State() == session.StateAuthenticated {
		a.reload(ctx)
	}
	a.draw()

	sc := bufio.NewScanner(a.in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			a.draw()
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			return nil
		}
		a.dispatch(ctx, cmd, args)
		a.draw()
	}
	return sc.Err()
}

// dispatch ejecuta un comando. Los errores no tumban el bucle: quedan en el
// banner hasta la próxima navegación.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	if a.session.State() != session.StateAuthenticated {
		switch cmd {
		case "login":
			a.cmdLogin(ctx, args)
		case "signup":
			a.cmdSignup(ctx, args)
		case "help":
			a.banner = ""
		default:
			a.banner = fmt.Sprintf("comando desconocido: %s (login, signup, quit)", cmd)
		}
		return
	}

	switch cmd {
	case "tab":
		a.cmdTab(args)
	case "search":
		// Navegación: descarta el banner y fija el término para Products.
		a.banner = ""
		a.searchTerm = strings.Join(args, " ")
		a.activeTab = view.TabProducts
	case "add-product":
		a.cmdAddProduct(ctx, args)
	case "order":
		a.cmdOrder(ctx, args)
	case "verify-license":
		a.cmdVerifyLicense(ctx, args)
	case "refresh":
		a.banner = ""
		a.loader.Reset()
		a.reload(ctx)
	case "logout":
		a.session.Logout()
		a.loader.Reset()
		a.activeTab = view.DefaultTab
		a.searchTerm = ""
		a.banner = ""
	case "help":
		a.banner = ""
	default:
		a.banner = fmt.Sprintf("comando desconocido: %s", cmd)
	}
}

func (a *App) cmdLogin(ctx context.Context, args []string) {
	if len(args) != 2 {
		a.banner = "uso: login <email> <password>"
		return
	}
	if err := a.session.Login(ctx, args[0], args[1]); err != nil {
		// El mensaje del backend se muestra tal cual ("invalid credentials").
		a.banner = err.Error()
		return
	}
	a.enterDashboard(ctx)
}

func (a *App) cmdSignup(ctx context.Context, args []string) {
	if len(args) < 3 {
		a.banner = "uso: signup <facility|vendor> <email> <password> [name]"
		return
	}
	role := args[0]
	if role != entity.RoleFacility && role != entity.RoleVendor {
		a.banner = "el rol debe ser facility o vendor"
		return
	}
	in := dto.SignupRequest{Role: role, Email: args[1], Password: args[2], Name: strings.Join(args[3:], " ")}
	if err := a.session.Signup(ctx, in); err != nil {
		a.banner = err.Error()
		return
	}
	a.enterDashboard(ctx)
}

func (a *App) cmdTab(args []string) {
	if len(args) != 1 {
		a.banner = "uso: tab <overview|products|orders|analytics>"
		return
	}
	t := view.Tab(args[0])
	if !view.HasTab(view.TabsFor(a.session.User().Role), t) {
		a.banner = fmt.Sprintf("pestaña no disponible: %s", args[0])
		return
	}
	a.banner = ""
	a.activeTab = t
}

// cmdAddProduct alta de producto: los dos últimos argumentos son precio y
// stock, lo anterior es el nombre (puede llevar espacios).
func (a *App) cmdAddProduct(ctx context.Context, args []string) {
	if len(args) < 3 {
		a.banner = "uso: add-product <name...> <price> <stock>"
		return
	}
	price, err := decimal.NewFromString(args[len(args)-2])
	if err != nil {
		a.banner = "precio inválido: " + args[len(args)-2]
		return
	}
	stock, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		a.banner = "stock inválido: " + args[len(args)-1]
		return
	}
	in := catalog.CreateProductInput{
		Name:  strings.Join(args[:len(args)-2], " "),
		Price: price,
		Stock: stock,
	}
	if _, err := a.createProduct.Execute(ctx, a.session.Token(), *a.session.User(), in); err != nil {
		a.banner = err.Error()
		return
	}
	a.banner = ""
	a.activeTab = view.TabProducts
}

// cmdOrder crea una orden: pares producto:cantidad y un "emergency" opcional
// al final. Los ids aceptan el prefijo corto que muestran las tablas.
func (a *App) cmdOrder(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.banner = "uso: order <product:qty> [product:qty ...] [emergency]"
		return
	}
	emergency := false
	if args[len(args)-1] == "emergency" {
		emergency = true
		args = args[:len(args)-1]
	}
	items := make([]entity.OrderItem, 0, len(args))
	for _, arg := range args {
		id, qtyStr, ok := strings.Cut(arg, ":")
		if !ok {
			a.banner = "ítem inválido, se espera product:qty: " + arg
			return
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil {
			a.banner = "cantidad inválida: " + qtyStr
			return
		}
		items = append(items, entity.OrderItem{ProductID: a.resolveProductID(id), Qty: qty})
	}
	if _, err := a.placeOrder.Execute(ctx, a.session.Token(), *a.session.User(), orders.PlaceOrderInput{Items: items, Emergency: emergency}); err != nil {
		a.banner = err.Error()
		return
	}
	a.banner = ""
	a.activeTab = view.TabOrders
}

func (a *App) cmdVerifyLicense(ctx context.Context, args []string) {
	if len(args) != 1 {
		a.banner = "uso: verify-license <number>"
		return
	}
	if err := a.session.VerifyLicense(ctx, args[0]); err != nil {
		a.banner = err.Error()
		return
	}
	a.banner = ""
}

// resolveProductID expande un prefijo de id al id completo del catálogo
// cargado; sin coincidencia única devuelve el argumento tal cual y el
// backend decidirá.
func (a *App) resolveProductID(prefix string) string {
	match := ""
	for _, p := range a.loader.Products() {
		if strings.HasPrefix(p.ID, prefix) {
			if match != "" {
				return prefix
			}
			match = p.ID
		}
	}
	if match == "" {
		return prefix
	}
	return match
}

// enterDashboard transición post-login: pestaña por defecto, sin filtro, y
// carga inicial de colecciones.
func (a *App) enterDashboard(ctx context.Context) {
	a.banner = ""
	a.activeTab = view.DefaultTab
	a.searchTerm = ""
	a.loader.Reset()
	a.reload(ctx)
}

// reload dispara la carga y deja el fallo colapsado (si lo hubo) en el
// banner; los datos parciales que sí llegaron quedan disponibles.
func (a *App) reload(ctx context.Context) {
	u := a.session.User()
	if u == nil {
		return
	}
	a.loader.EnsureLoaded(ctx, a.session.Token(), *u)
	if err := a.loader.Err(); err != nil {
		a.banner = err.Error()
	}
}

// draw dibuja el estado actual completo: banner si hay, y la vista activa.
func (a *App) draw() {
	if a.banner != "" {
		a.render.Banner(a.banner)
	}
	if a.session.State() != session.StateAuthenticated {
		a.render.AuthScreen()
		return
	}
	u := *a.session.User()
	tabs := view.TabsFor(u.Role)
	a.render.NavBar(u, tabs, a.activeTab)
	if a.loader.Loading() {
		a.render.Loading()
		return
	}
	switch a.activeTab {
	case view.TabProducts:
		a.render.Products(a.loader.Products(), a.searchTerm)
	case view.TabOrders:
		a.render.Orders(a.loader.Orders())
	case view.TabAnalytics:
		a.render.Analytics(a.loader.Analytics(), time.Now())
	default:
		a.render.Overview(u, a.loader.Products(), a.loader.Orders(), a.loader.Analytics())
	}
}
