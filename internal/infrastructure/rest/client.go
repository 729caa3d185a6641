// Package rest adaptador net/http del backend de MedSupply. Implementa los
// puertos de session, dashboard, catalog y orders. No guarda estado de
// sesión: el bearer token llega como argumento en cada llamada.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/medsupply-pro/internal/application/catalog"
	"github.com/jhoicas/medsupply-pro/internal/application/dashboard"
	"github.com/jhoicas/medsupply-pro/internal/application/dto"
	"github.com/jhoicas/medsupply-pro/internal/application/orders"
	"github.com/jhoicas/medsupply-pro/internal/application/session"
	"github.com/jhoicas/medsupply-pro/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa los puertos.
var (
	_ session.AuthAPI    = (*Client)(nil)
	_ dashboard.DataAPI  = (*Client)(nil)
	_ catalog.CatalogAPI = (*Client)(nil)
	_ orders.OrdersAPI   = (*Client)(nil)
)

const maxResponseBytes = 1 << 20 // las respuestas del backend son pequeñas

// genericErrMsg fallback cuando el backend no aporta mensaje de error.
const genericErrMsg = "An error occurred"

// APIError error HTTP del backend con el mensaje crudo del cuerpo
// {"error": ...}, o un genérico si no venía ninguno. Error() devuelve solo
// el mensaje: es lo que se muestra inline en los formularios.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// Client cliente REST del backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. timeout acota toda petición: una llamada
// colgada no deja el dashboard cargando para siempre. timeout 0 desactiva el
// límite.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// do ejecuta una petición JSON. token vacío omite el header Authorization.
// out nil descarta el cuerpo de éxito.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: crear request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("api: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("api: leer respuesta: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.asAPIError(method, path, resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("api: deserializar respuesta de %s: %w", path, err)
		}
	}
	return nil
}

// asAPIError extrae el mensaje del cuerpo {"error": ...} del backend.
func (c *Client) asAPIError(method, path string, status int, raw []byte) error {
	msg := genericErrMsg
	var body dto.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		msg = body.Error
	}
	c.log.Debug().Int("status", status).Str("path", path).Str("msg", msg).Msg("error del backend")
	return &APIError{StatusCode: status, Message: msg}
}
