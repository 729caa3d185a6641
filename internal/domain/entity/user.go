package entity

import "time"

// Roles de cuenta del marketplace. El backend también conoce "admin", pero el
// cliente solo crea cuentas facility/vendor.
const (
	RoleFacility = "facility" // comprador: centro médico
	RoleVendor   = "vendor"   // vendedor: proveedor de insumos
	RoleAdmin    = "admin"
)

// User perfil resuelto vía /api/me. Inmutable dentro de una sesión: el
// cliente nunca lo edita localmente, solo lo vuelve a pedir al backend.
type User struct {
	ID        string
	Email     string
	Name      string
	Role      string
	Verified  bool
	Lat       *float64 // ubicación opcional del centro / bodega
	Lon       *float64
	CreatedAt time.Time
}

// DisplayName nombre para la barra de navegación: Name si existe, si no Email.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// IsFacility indica si la cuenta es compradora.
func (u User) IsFacility() bool { return u.Role == RoleFacility }

// IsVendor indica si la cuenta es vendedora.
func (u User) IsVendor() bool { return u.Role == RoleVendor }
