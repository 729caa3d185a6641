package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/medsupply-pro/internal/application/dto"
	apphttp "github.com/jhoicas/medsupply-pro/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testJWTSecret = "test-secret-key-for-unit-tests"

// buildTestApp construye la app Fiber con el store sembrado (vendor BestMed
// Supplies con dos productos, facility County Hospital con una orden
// entregada).
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := apphttp.NewStore()
	require.NoError(t, store.Seed())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Store: store, JWTSecret: testJWTSecret, JWTExpDays: 7})
	return app
}

// doJSON lanza una petición con cuerpo JSON opcional y token opcional.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// loginAs devuelve el token de una cuenta sembrada.
func loginAs(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/login", "", dto.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode, "login de cuenta sembrada debe ser 200")
	out := decode[dto.TokenResponse](t, resp)
	require.NotEmpty(t, out.Token)
	return out.Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth: signup / login / me
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_CreaCuentaYEmiteToken(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/signup", "", dto.SignupRequest{
		Email: "nuevo@example.com", Password: "secret123", Name: "Clínica Nueva", Role: "facility",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.TokenResponse](t, resp)
	assert.NotEmpty(t, out.Token)
	assert.NotEmpty(t, out.UserID)
}

func TestSignup_EmailDuplicado(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/signup", "", dto.SignupRequest{
		Email: "vendor@example.com", Password: "otro", Role: "vendor",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "email exists", out.Error)
}

func TestSignup_RolInvalido(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/signup", "", dto.SignupRequest{
		Email: "x@example.com", Password: "pw", Role: "admin",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"el signup solo admite facility y vendor")
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/login", "", dto.LoginRequest{
		Email: "facility@example.com", Password: "incorrecta",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "invalid credentials", out.Error)
}

func TestMe_DevuelvePerfilDelToken(t *testing.T) {
	app := buildTestApp(t)
	tok := loginAs(t, app, "facility@example.com", "facpass")

	resp := doJSON(t, app, http.MethodGet, "/api/me", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.UserResponse](t, resp)
	assert.Equal(t, "facility", out.Role)
	assert.Equal(t, "County Hospital", out.Name)
	assert.True(t, out.Verified)
}

// ──────────────────────────────────────────────────────────────────────────────
// Middleware: formato del header y validez del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "missing auth", out.Error)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/me", "token.invalido.aqui", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "invalid token", out.Error)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Basic abc")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "invalid auth format", out.Error)
}

// ──────────────────────────────────────────────────────────────────────────────
// RBAC por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestRBAC_FacilityNoPuedeCrearProductos(t *testing.T) {
	app := buildTestApp(t)
	tok := loginAs(t, app, "facility@example.com", "facpass")

	resp := doJSON(t, app, http.MethodPost, "/api/vendor/products", tok, dto.CreateProductRequest{Name: "X"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRBAC_VendorNoPuedeOrdenarNiVerAnalitica(t *testing.T) {
	app := buildTestApp(t)
	tok := loginAs(t, app, "vendor@example.com", "vendorpass")

	resp := doJSON(t, app, http.MethodPost, "/api/orders", tok, dto.PlaceOrderRequest{})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/analytics/spend", tok, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_ListaSembradaConVendor(t *testing.T) {
	app := buildTestApp(t)
	tok := loginAs(t, app, "facility@example.com", "facpass")

	resp := doJSON(t, app, http.MethodGet, "/api/products", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[[]dto.ProductResponse](t, resp)
	require.Len(t, out, 2)
	// Orden por precio: guantes (0.5) antes que IV set (5).
	assert.Equal(t, "Surgical Gloves - M", out[0].Name)
	assert.Equal(t, "BestMed Supplies", out[0].Vendor.Name)
	assert.True(t, out[0].Vendor.Verified)
}

func TestProducts_FiltroQ(t *testing.T) {
	app := buildTestApp(t)
	tok := loginAs(t, app, "facility@example.com", "facpass")

	resp := doJSON(t, app, http.MethodGet, "/api/products?q=gloves", tok, nil)
	out := decode[[]dto.ProductResponse](t, resp)
	require.Len(t, out, 1)
	assert.Equal(t, "Surgical Gloves - M", out[0].Name)
}

func TestCreateProduct_VendorConDefaults(t *testing.T) {
	app := buildTestApp(t)
	tok := loginAs(t, app, "vendor@example.com", "vendorpass")

	resp := doJSON(t, app, http.MethodPost, "/api/vendor/products", tok, map[string]any{
		"name": "Gauze Pads", "price": 1.25, "stock": 300,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.CreateProductResponse](t, resp)
	assert.True(t, out.OK)
	assert.NotEmpty(t, out.ProductID)

	// El catálogo creció y el nuevo producto trae los defaults.
	resp = doJSON(t, app, http.MethodGet, "/api/products?q=gauze", tok, nil)
	products := decode[[]dto.ProductResponse](t, resp)
	require.Len(t, products, 1)
	assert.Equal(t, "general", products[0].Category)
	assert.Equal(t, "pcs", products[0].Unit)
	assert.Equal(t, 10, products[0].MinThreshold)
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes y analítica
// ──────────────────────────────────────────────────────────────────────────────

func firstProductID(t *testing.T, app *fiber.App, tok string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodGet, "/api/products", tok, nil)
	out := decode[[]dto.ProductResponse](t, resp)
	require.NotEmpty(t, out)
	return out[0].ID
}

func TestPlaceOrder_DescuentaStockYCalculaTotal(t *testing.T) {
	app := buildTestApp(t)
	tok := loginAs(t, app, "facility@example.com", "facpass")
	gloves := firstProductID(t, app, tok) // 0.5 c/u, stock 1000

	resp := doJSON(t, app, http.MethodPost, "/api/orders", tok, dto.PlaceOrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: gloves, Qty: 100}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.PlaceOrderResponse](t, resp)
	assert.True(t, out.OK)
	assert.NotEmpty(t, out.OrderID)

	// Stock descontado: 1000 sembrados - 100 de la orden entregada del seed
	// - 100 de esta orden.
	resp = doJSON(t, app, http.MethodGet, "/api/products?q=gloves", tok, nil)
	products := decode[[]dto.ProductResponse](t, resp)
	require.Len(t, products, 1)
	assert.Equal(t, 800, products[0].Stock)

	// La orden aparece listada con el total qty·price.
	resp = doJSON(t, app, http.MethodGet, "/api/orders", tok, nil)
	ordersOut := decode[[]dto.OrderResponse](t, resp)
	require.Len(t, ordersOut, 2, "la orden del seed más la nueva")
	assert.Equal(t, out.OrderID, ordersOut[0].ID, "más recientes primero")
	assert.Equal(t, "50", ordersOut[0].TotalAmount.String())
	assert.Equal(t, "pending", ordersOut[0].Status)
	require.NotNil(t, ordersOut[0].Vendor)
	assert.Equal(t, "BestMed Supplies", ordersOut[0].Vendor.Name)
}

func TestPlaceOrder_EmergenciaNoDescuentaStock(t *testing.T) {
	app := buildTestApp(t)
	tok := loginAs(t, app, "facility@example.com", "facpass")
	gloves := firstProductID(t, app, tok)

	resp := doJSON(t, app, http.MethodPost, "/api/orders", tok, dto.PlaceOrderRequest{
		Items:     []dto.OrderItemRequest{{ProductID: gloves, Qty: 5000}}, // más que el stock
		Emergency: true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "las emergencias no validan stock")

	resp = doJSON(t, app, http.MethodGet, "/api/products?q=gloves", tok, nil)
	products := decode[[]dto.ProductResponse](t, resp)
	assert.Equal(t, 900, products[0].Stock, "el stock no cambia en emergencias")
}

func TestPlaceOrder_StockInsuficiente(t *testing.T) {
	app := buildTestApp(t)
	tok := loginAs(t, app, "facility@example.com", "facpass")
	gloves := firstProductID(t, app, tok)

	resp := doJSON(t, app, http.MethodPost, "/api/orders", tok, dto.PlaceOrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: gloves, Qty: 5000}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "not enough stock for Surgical Gloves - M", out.Error)
}

func TestPlaceOrder_SinItems(t *testing.T) {
	app := buildTestApp(t)
	tok := loginAs(t, app, "facility@example.com", "facpass")

	resp := doJSON(t, app, http.MethodPost, "/api/orders", tok, dto.PlaceOrderRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "items required", out.Error)
}

func TestPlaceOrder_FacilitySinVerificar(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/signup", "", dto.SignupRequest{
		Email: "sinverificar@example.com", Password: "pw123456", Role: "facility",
	})
	tok := decode[dto.TokenResponse](t, resp).Token

	resp = doJSON(t, app, http.MethodPost, "/api/orders", tok, dto.PlaceOrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: "cualquiera", Qty: 1}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "facility not verified", out.Error)
}

func TestVerifyLicense_HabilitaOrdenar(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/signup", "", dto.SignupRequest{
		Email: "clinica@example.com", Password: "pw123456", Role: "facility",
	})
	tok := decode[dto.TokenResponse](t, resp).Token

	resp = doJSON(t, app, http.MethodPost, "/api/verify_license", tok, dto.VerifyLicenseRequest{LicenseNumber: "LIC-9"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/me", tok, nil)
	me := decode[dto.UserResponse](t, resp)
	assert.True(t, me.Verified)
}

func TestSpend_AgregaSoloOrdenesConfirmadas(t *testing.T) {
	app := buildTestApp(t)
	tok := loginAs(t, app, "facility@example.com", "facpass")

	// El seed deja una orden entregada de 100·0.5 = 50; una pendiente nueva
	// no debe sumar.
	gloves := firstProductID(t, app, tok)
	doJSON(t, app, http.MethodPost, "/api/orders", tok, dto.PlaceOrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: gloves, Qty: 10}},
	})

	resp := doJSON(t, app, http.MethodGet, "/api/analytics/spend", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.SpendResponse](t, resp)
	assert.Equal(t, "50", out.TotalSpend.String())
	assert.Equal(t, 1, out.OrdersCount)
}
