package session

import (
	"context"

	"github.com/jhoicas/medsupply-pro/internal/application/dto"
	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
)

// AuthAPI operaciones de autenticación del backend. El token siempre viaja
// como argumento explícito; el adaptador REST no guarda estado de sesión.
type AuthAPI interface {
	Login(ctx context.Context, in dto.LoginRequest) (token string, err error)
	Signup(ctx context.Context, in dto.SignupRequest) (token string, err error)
	Me(ctx context.Context, token string) (entity.User, error)
	VerifyLicense(ctx context.Context, token, licenseNumber string) error
}

// TokenStore persiste el bearer token entre ejecuciones; es el único estado
// del cliente que sobrevive un reinicio (análogo al localStorage del
// navegador).
type TokenStore interface {
	Load() (string, error) // "" sin error cuando no hay token guardado
	Save(token string) error
	Clear() error
}
