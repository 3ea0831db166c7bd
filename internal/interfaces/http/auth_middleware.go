package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/guard"
	"github.com/jhoicas/inventario-console/internal/application/session"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/internal/domain/repository"
)

// Locals keys de la consola en Fiber.
const (
	LocalScope   = "client_scope"
	LocalStore   = "session_store"
	LocalSession = "session"
)

// ScopeOptions cookie que identifica al navegador.
type ScopeOptions struct {
	CookieName string
	Secure     bool
}

// ClientScope asegura la cookie de cliente y deja en c.Locals el scope y su session.Store.
// Una cookie ausente o que no sea un uuid se reemplaza por uno nuevo (sesión vacía).
func ClientScope(storage repository.SessionStorage, opts ScopeOptions) fiber.Handler {
	name := opts.CookieName
	if name == "" {
		name = "almacen_client"
	}
	return func(c *fiber.Ctx) error {
		scope := strings.TrimSpace(c.Cookies(name))
		if _, err := uuid.Parse(scope); err != nil {
			scope = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     name,
				Value:    scope,
				Path:     "/",
				HTTPOnly: true,
				Secure:   opts.Secure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(LocalScope, scope)
		c.Locals(LocalStore, session.NewStore(storage, scope))
		return c.Next()
	}
}

// RequireAuthenticated exige sesión: sin ella responde 401 con redirect a /login.
func RequireAuthenticated() fiber.Handler {
	return requirement(guard.RequireAuthenticated)
}

// RequireAdmin exige rol ADMIN: sin sesión 401 → /login; con sesión no admin 403 → /shipments.
func RequireAdmin() fiber.Handler {
	return requirement(guard.RequireAdmin)
}

func requirement(req guard.Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := GetStore(c)
		if store == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "LOGIN_REQUIRED", Message: "inicie sesión", Redirect: guard.LoginPath,
			})
		}
		sess := store.Current(c.UserContext())
		d := guard.Authorize(sess, req)
		if !d.Allow {
			if d.Redirect == guard.LoginPath {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Code: "LOGIN_REQUIRED", Message: "inicie sesión", Redirect: d.Redirect,
				})
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: "no tiene permisos para esta vista", Redirect: d.Redirect,
			})
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// GetScope devuelve el scope del cliente (después de ClientScope).
func GetScope(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalScope).(string)
	return s
}

// GetStore devuelve el session.Store del cliente (después de ClientScope).
func GetStore(c *fiber.Ctx) *session.Store {
	s, _ := c.Locals(LocalStore).(*session.Store)
	return s
}

// GetSession devuelve la sesión validada por RequireAuthenticated/RequireAdmin.
func GetSession(c *fiber.Ctx) *entity.Session {
	s, _ := c.Locals(LocalSession).(*entity.Session)
	return s
}

// GetToken devuelve el token de la sesión validada ("" sin sesión).
func GetToken(c *fiber.Ctx) string {
	if s := GetSession(c); s != nil {
		return s.Token
	}
	return ""
}
