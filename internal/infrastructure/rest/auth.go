package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/medsupply-pro/internal/application/dto"
	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
)

// Login POST /api/login. Devuelve el token emitido; el error lleva el
// mensaje crudo del backend para mostrarlo inline.
func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (string, error) {
	var out dto.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", "", in, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("api: login sin token en la respuesta")
	}
	return out.Token, nil
}

// Signup POST /api/signup. Mismo contrato que Login.
func (c *Client) Signup(ctx context.Context, in dto.SignupRequest) (string, error) {
	var out dto.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/signup", "", in, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("api: signup sin token en la respuesta")
	}
	return out.Token, nil
}

// Me GET /api/me. Resuelve el perfil del token.
func (c *Client) Me(ctx context.Context, token string) (entity.User, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/me", token, nil, &out); err != nil {
		return entity.User{}, err
	}
	return out.ToEntity(), nil
}

// VerifyLicense POST /api/verify_license (solo facility).
func (c *Client) VerifyLicense(ctx context.Context, token, licenseNumber string) error {
	in := dto.VerifyLicenseRequest{LicenseNumber: licenseNumber}
	var out dto.OkResponse
	return c.do(ctx, http.MethodPost, "/api/verify_license", token, in, &out)
}
