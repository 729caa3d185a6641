// Package session administra el ciclo de vida de la sesión del cliente:
// token persistido, verificación contra /api/me y transición entre estados.
// La sesión es un objeto explícito que se crea al arrancar y se destruye en
// logout; nunca estado ambiental.
package session

import (
	"context"

	"github.com/jhoicas/medsupply-pro/internal/application/dto"
	"github.com/jhoicas/medsupply-pro/internal/domain"
	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
	"github.com/jhoicas/medsupply-pro/pkg/logger"
)

// State estado de la sesión.
type State int

const (
	// StateUnauthenticated sin token; se muestra la vista de auth.
	StateUnauthenticated State = iota
	// StatePendingVerification hay token pero /api/me aún no lo confirma.
	StatePendingVerification
	// StateAuthenticated token verificado y usuario resuelto.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StatePendingVerification:
		return "pending_verification"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unauthenticated"
}

// Manager máquina de estados de la sesión. Invariante: User() != nil solo en
// StateAuthenticated; token ausente implica usuario ausente. No es seguro
// para uso concurrente: el cliente lo opera desde un único bucle de eventos.
type Manager struct {
	api   AuthAPI
	store TokenStore
	log   *logger.Logger

	state State
	token string
	user  *entity.User
}

// NewManager construye el manager en estado Unauthenticated.
func NewManager(api AuthAPI, store TokenStore, log *logger.Logger) *Manager {
	return &Manager{api: api, store: store, log: log, state: StateUnauthenticated}
}

// State devuelve el estado actual.
func (m *Manager) State() State { return m.state }

// Token devuelve el bearer token vigente ("" si no hay sesión).
func (m *Manager) Token() string { return m.token }

// User devuelve el perfil resuelto, o nil fuera de StateAuthenticated.
func (m *Manager) User() *entity.User { return m.user }

// Bootstrap reconstruye la sesión al arrancar desde el token persistido.
// Sin token guardado queda en Unauthenticated sin error; con token guardado
// lo verifica inmediatamente (el error de verificación se devuelve, pero la
// sesión ya quedó limpia: el caller solo debe mostrar la vista de auth).
func (m *Manager) Bootstrap(ctx context.Context) error {
	tok, err := m.store.Load()
	if err != nil {
		m.log.Warn().Err(err).Msg("no se pudo leer el token persistido")
		return nil
	}
	if tok == "" {
		return nil
	}
	m.token = tok
	m.state = StatePendingVerification
	return m.Verify(ctx)
}

// Verify valida el token contra /api/me. Éxito puebla el usuario y pasa a
// Authenticated. Cualquier fallo (expirado, malformado, revocado, error de
// red) borra el token persistido y resetea a Unauthenticated; la causa no se
// distingue al caller más allá del error devuelto. Todo-o-nada: nunca queda
// usuario sin token verificado.
func (m *Manager) Verify(ctx context.Context) error {
	if m.token == "" {
		return domain.ErrNotAuthenticated
	}
	user, err := m.api.Me(ctx, m.token)
	if err != nil {
		m.log.Debug().Err(err).Msg("verificación de token rechazada")
		m.reset()
		return err
	}
	m.user = &user
	m.state = StateAuthenticated
	m.log.Info().Str("user", user.Email).Str("role", user.Role).Msg("sesión verificada")
	return nil
}

// Login autentica con credenciales. En fallo el mensaje del backend se
// devuelve tal cual para mostrarlo inline; el estado no cambia. En éxito el
// token se persiste y se verifica de inmediato.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	tok, err := m.api.Login(ctx, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	return m.adopt(ctx, tok)
}

// Signup crea la cuenta y entra con el token devuelto. Mismo contrato de
// errores que Login.
func (m *Manager) Signup(ctx context.Context, in dto.SignupRequest) error {
	tok, err := m.api.Signup(ctx, in)
	if err != nil {
		return err
	}
	return m.adopt(ctx, tok)
}

// VerifyLicense envía la licencia del facility y refresca el perfil para
// recoger el flag verified (el perfil nunca se edita localmente).
func (m *Manager) VerifyLicense(ctx context.Context, licenseNumber string) error {
	if m.state != StateAuthenticated {
		return domain.ErrNotAuthenticated
	}
	if err := m.api.VerifyLicense(ctx, m.token, licenseNumber); err != nil {
		return err
	}
	return m.Verify(ctx)
}

// Logout destruye la sesión de forma síncrona e incondicional. No llama al
// backend.
func (m *Manager) Logout() {
	m.log.Info().Msg("cerrando sesión")
	m.reset()
}

// adopt toma un token recién emitido: lo persiste y lo verifica.
func (m *Manager) adopt(ctx context.Context, tok string) error {
	if err := m.store.Save(tok); err != nil {
		// La sesión en memoria sigue siendo válida; solo no sobrevivirá un
		// reinicio.
		m.log.Warn().Err(err).Msg("no se pudo persistir el token")
	}
	m.token = tok
	m.user = nil
	m.state = StatePendingVerification
	return m.Verify(ctx)
}

// reset limpia token persistido y estado en memoria.
func (m *Manager) reset() {
	if err := m.store.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("no se pudo borrar el token persistido")
	}
	m.token = ""
	m.user = nil
	m.state = StateUnauthenticated
}
