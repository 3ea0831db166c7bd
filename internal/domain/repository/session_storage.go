package repository

import "context"

// Claves bien conocidas de la sesión persistida.
const (
	SessionKeyToken = "token"
	SessionKeyUser  = "user"
)

// SessionStorage puerto de persistencia clave/valor por scope (un navegador o un perfil de CLI).
// Cada llamada es atómica respecto de los lectores: ningún lector ve escrituras a medias.
type SessionStorage interface {
	// GetItems devuelve solo las claves presentes.
	GetItems(ctx context.Context, scope string, keys ...string) (map[string]string, error)
	SetItems(ctx context.Context, scope string, items map[string]string) error
	RemoveItems(ctx context.Context, scope string, keys ...string) error
}
