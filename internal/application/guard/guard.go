// Package guard decide si una vista protegida de la consola se puede mostrar con la sesión actual.
// Es una función pura: lee la sesión pero nunca la modifica.
package guard

import (
	"context"
	"strings"

	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// Rutas de la consola que usa la redirección.
const (
	LoginPath   = "/login"
	DefaultPath = "/shipments"
)

// Requirement capacidad que exige una vista.
type Requirement int

const (
	// RequireNone vistas públicas (login, registro).
	RequireNone Requirement = iota
	RequireAuthenticated
	RequireAdmin
)

// String nombre legible del requisito.
func (r Requirement) String() string {
	switch r {
	case RequireNone:
		return "none"
	case RequireAuthenticated:
		return "authenticated"
	case RequireAdmin:
		return "admin"
	}
	return "unknown"
}

// Decision resultado de Authorize: Allow o redirección a Redirect.
type Decision struct {
	Allow    bool   `json:"allow"`
	Redirect string `json:"redirect,omitempty"`
}

// Allowed decisión que deja pasar.
func Allowed() Decision { return Decision{Allow: true} }

// RedirectTo decisión de redirección.
func RedirectTo(path string) Decision { return Decision{Redirect: path} }

// Authorize decide con la sesión dada (nil = sin sesión).
//   - authenticated: sin sesión → login.
//   - admin: sin sesión → login; con sesión no admin → vista por defecto (no es un error); admin → allow.
func Authorize(sess *entity.Session, req Requirement) Decision {
	switch req {
	case RequireNone:
		return Allowed()
	case RequireAuthenticated:
		if sess == nil {
			return RedirectTo(LoginPath)
		}
		return Allowed()
	case RequireAdmin:
		if sess == nil {
			return RedirectTo(LoginPath)
		}
		if !sess.IsAdmin() {
			return RedirectTo(DefaultPath)
		}
		return Allowed()
	}
	// Requisito desconocido: cerrado.
	return RedirectTo(LoginPath)
}

// SessionReader fuente de la sesión actual (lo implementa *session.Store).
type SessionReader interface {
	Current(ctx context.Context) *entity.Session
}

// Check lee la sesión actual y decide. No escribe nada.
func Check(ctx context.Context, reader SessionReader, req Requirement) Decision {
	return Authorize(reader.Current(ctx), req)
}

// routes tabla de navegación de la consola (prefijo → requisito).
var routes = []struct {
	prefix string
	req    Requirement
}{
	{"/login", RequireNone},
	{"/register", RequireNone},
	{"/users", RequireAdmin},
}

// RequirementFor devuelve el requisito de una ruta de la consola.
// Cualquier ruta que no sea pública exige sesión.
func RequirementFor(path string) Requirement {
	p := "/" + strings.Trim(strings.ToLower(path), "/")
	for _, r := range routes {
		if p == r.prefix || strings.HasPrefix(p, r.prefix+"/") {
			return r.req
		}
	}
	return RequireAuthenticated
}
