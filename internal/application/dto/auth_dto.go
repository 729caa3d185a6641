package dto

import "github.com/jhoicas/medsupply-pro/internal/domain/entity"

// LoginRequest credenciales para POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest alta de cuenta para POST /api/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"` // facility | vendor
}

// TokenResponse respuesta de login/signup. El cliente solo consume Token;
// el resto de campos acompaña por compatibilidad con el backend.
type TokenResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id,omitempty"`
	Role     string `json:"role,omitempty"`
	Verified bool   `json:"verified,omitempty"`
}

// UserResponse perfil devuelto por GET /api/me.
type UserResponse struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	Role      string   `json:"role"`
	Verified  bool     `json:"verified"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	CreatedAt string   `json:"created_at"`
}

// ToEntity convierte el perfil de la API al dominio.
func (r UserResponse) ToEntity() entity.User {
	return entity.User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		Role:      r.Role,
		Verified:  r.Verified,
		Lat:       r.Lat,
		Lon:       r.Lon,
		CreatedAt: ParseTime(r.CreatedAt),
	}
}

// VerifyLicenseRequest cuerpo de POST /api/verify_license (solo facility).
type VerifyLicenseRequest struct {
	LicenseNumber string `json:"license_number"`
}
