package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/medsupply-pro/internal/application/dto"
	"github.com/jhoicas/medsupply-pro/internal/domain"
	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
	"github.com/jhoicas/medsupply-pro/pkg/jwt"
)

// AuthHandler maneja signup, login, perfil y verificación de licencia.
type AuthHandler struct {
	store      *Store
	jwtSecret  string
	jwtExpDays int
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(store *Store, jwtSecret string, jwtExpDays int) *AuthHandler {
	return &AuthHandler{store: store, jwtSecret: jwtSecret, jwtExpDays: jwtExpDays}
}

// Signup POST /api/signup: crea la cuenta y emite token.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if in.Email == "" || in.Password == "" || (in.Role != entity.RoleFacility && in.Role != entity.RoleVendor) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "email,password,role required"})
	}
	u, err := h.store.CreateUser(in.Email, in.Password, in.Role, in.Name)
	if err != nil {
		if err == domain.ErrEmailAlreadyExists {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "email exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	tok, err := jwt.Generate(h.jwtSecret, u.ID, u.Role, h.jwtExpDays)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.TokenResponse{Token: tok, UserID: u.ID})
}

// Login POST /api/login: valida credenciales y emite token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "email,password required"})
	}
	u, err := h.store.Authenticate(in.Email, in.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid credentials"})
	}
	tok, err := jwt.Generate(h.jwtSecret, u.ID, u.Role, h.jwtExpDays)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.TokenResponse{Token: tok, UserID: u.ID, Role: u.Role, Verified: u.Verified})
}

// Me GET /api/me: perfil del token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u := CurrentUser(c)
	return c.JSON(dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Verified:  u.Verified,
		Lat:       u.Lat,
		Lon:       u.Lon,
		CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05"),
	})
}

// VerifyLicense POST /api/verify_license (solo facility): en desarrollo
// cualquier número de licencia no vacío verifica la cuenta.
func (h *AuthHandler) VerifyLicense(c *fiber.Ctx) error {
	var in dto.VerifyLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if in.LicenseNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "license_number required"})
	}
	u := CurrentUser(c)
	if !h.store.MarkVerified(u.ID) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "user not found"})
	}
	return c.JSON(dto.OkResponse{OK: true})
}
