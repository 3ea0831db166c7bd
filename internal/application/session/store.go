// Package session mantiene la sesión autenticada de un cliente de la consola (navegador o perfil de CLI).
//
// El Store no cachea nada: cada lectura reconstruye la sesión desde el almacenamiento, de modo que
// un logout hecho desde otra pestaña o proceso se observa en la siguiente lectura.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/internal/domain/repository"
	"github.com/jhoicas/inventario-console/pkg/jwt"
)

// Store sesión de un scope concreto sobre un SessionStorage.
type Store struct {
	storage repository.SessionStorage
	scope   string
}

// NewStore construye el store para el scope dado. El estado inicial es lo que ya haya en el storage.
func NewStore(storage repository.SessionStorage, scope string) *Store {
	return &Store{storage: storage, scope: scope}
}

// Scope devuelve el scope del store.
func (s *Store) Scope() string { return s.scope }

// Establish decodifica el token y persiste token + claims en una sola escritura.
// Si el token no se puede decodificar se borra cualquier sesión previa (fail closed)
// y se devuelve domain.ErrInvalidToken.
func (s *Store) Establish(ctx context.Context, token string) (*entity.Session, error) {
	decoded, err := jwt.Decode(token)
	if err != nil {
		if clearErr := s.Clear(ctx); clearErr != nil {
			return nil, fmt.Errorf("%w: limpiar sesión previa: %v", domain.ErrInvalidToken, clearErr)
		}
		return nil, domain.ErrInvalidToken
	}
	claims := toEntityClaims(decoded)
	user, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("serializar claims: %w", err)
	}
	if err := s.storage.SetItems(ctx, s.scope, map[string]string{
		repository.SessionKeyToken: token,
		repository.SessionKeyUser:  string(user),
	}); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	return &entity.Session{Token: token, Claims: claims}, nil
}

// Load lee la sesión persistida. Devuelve (nil, nil) si no hay sesión completa.
func (s *Store) Load(ctx context.Context) (*entity.Session, error) {
	items, err := s.storage.GetItems(ctx, s.scope, repository.SessionKeyToken, repository.SessionKeyUser)
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	token, okToken := items[repository.SessionKeyToken]
	user, okUser := items[repository.SessionKeyUser]
	if !okToken || !okUser || token == "" {
		return nil, nil
	}
	var claims entity.Claims
	if err := json.Unmarshal([]byte(user), &claims); err != nil {
		return nil, nil
	}
	return &entity.Session{Token: token, Claims: claims}, nil
}

// Current devuelve la sesión actual o nil. Los errores de storage degradan a "sin sesión".
func (s *Store) Current(ctx context.Context) *entity.Session {
	sess, err := s.Load(ctx)
	if err != nil {
		return nil
	}
	return sess
}

// Clear borra token y claims en una sola operación.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.RemoveItems(ctx, s.scope, repository.SessionKeyToken, repository.SessionKeyUser); err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}

// IsAuthenticated true si hay sesión.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	return s.Current(ctx) != nil
}

// HasRole true si la sesión actual tiene el rol indicado.
func (s *Store) HasRole(ctx context.Context, role entity.Role) bool {
	return s.Current(ctx).HasRole(role)
}

// IsAdmin atajo de HasRole(entity.RoleAdmin).
func (s *Store) IsAdmin(ctx context.Context) bool {
	return s.HasRole(ctx, entity.RoleAdmin)
}

// IsAtLeastStorekeeper true para admin o almacenero.
func (s *Store) IsAtLeastStorekeeper(ctx context.Context) bool {
	return s.Current(ctx).IsAtLeastStorekeeper()
}

func toEntityClaims(c *jwt.Claims) entity.Claims {
	out := entity.Claims{Subject: c.Subject, RawRole: c.Role}
	if c.IssuedAt != nil {
		t := c.IssuedAt.Time.UTC()
		out.IssuedAt = &t
	}
	if c.ExpiresAt != nil {
		t := c.ExpiresAt.Time.UTC()
		out.ExpiresAt = &t
	}
	return out
}
