package movement

import (
	"sync"

	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// Registry mantiene a lo sumo un borrador por cliente (scope).
type Registry struct {
	mu      sync.Mutex
	gateway ports.ShipmentGateway
	drafts  map[string]*Composer
}

// NewRegistry construye el registro de borradores.
func NewRegistry(gateway ports.ShipmentGateway) *Registry {
	return &Registry{gateway: gateway, drafts: make(map[string]*Composer)}
}

// Open crea un borrador nuevo para el scope y reemplaza el anterior,
// salvo que el anterior se esté enviando.
func (r *Registry) Open(scope string, kind entity.MovementKind) (*Composer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.drafts[scope]; ok && prev.State() == StateSubmitting {
		return nil, domain.ErrSubmitInProgress
	}
	c := NewComposer(r.gateway, kind)
	r.drafts[scope] = c
	return c, nil
}

// Get devuelve el borrador del scope o domain.ErrNoDraft.
func (r *Registry) Get(scope string) (*Composer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.drafts[scope]
	if !ok {
		return nil, domain.ErrNoDraft
	}
	return c, nil
}

// Discard cancela el borrador del scope; no se puede cancelar mientras se envía.
func (r *Registry) Discard(scope string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.drafts[scope]
	if !ok {
		return domain.ErrNoDraft
	}
	if c.State() == StateSubmitting {
		return domain.ErrSubmitInProgress
	}
	delete(r.drafts, scope)
	return nil
}

// Forget elimina el borrador sin condiciones (logout o tras registrarlo).
// Solo lo quita si sigue siendo c, por si otro Open lo reemplazó entretanto; c nil borra cualquiera.
func (r *Registry) Forget(scope string, c *Composer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.drafts[scope]; ok && (c == nil || cur == c) {
		delete(r.drafts, scope)
	}
}

// Len cantidad de borradores abiertos.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drafts)
}
