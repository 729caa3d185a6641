// Package http expone el contrato REST del marketplace sobre Fiber para
// desarrollo local y tests. Replica los códigos y mensajes de error del
// backend real; no persiste nada.
package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/medsupply-pro/internal/application/dto"
	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
	"github.com/jhoicas/medsupply-pro/pkg/jwt"
)

// localUser clave del userRecord resuelto en c.Locals.
const localUser = "current_user"

// AuthMiddleware valida el Bearer Token y carga el usuario a c.Locals.
// Mensajes y códigos calcados del backend: missing auth / invalid auth
// format / invalid token (401) y user not found (404).
func AuthMiddleware(jwtSecret string, store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "missing auth"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid auth format"})
		}
		userID, _, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid token"})
		}
		user, ok := store.GetUser(userID)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "user not found"})
		}
		c.Locals(localUser, user)
		return c.Next()
	}
}

// RequireRole autoriza la ruta a un rol; admin siempre pasa.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := CurrentUser(c)
		if u == nil || (u.Role != role && u.Role != entity.RoleAdmin) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "forbidden"})
		}
		return c.Next()
	}
}

// CurrentUser devuelve el usuario resuelto por AuthMiddleware, o nil.
func CurrentUser(c *fiber.Ctx) *userRecord {
	u, _ := c.Locals(localUser).(*userRecord)
	return u
}
