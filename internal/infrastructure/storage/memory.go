package storage

import (
	"context"
	"sync"

	"github.com/jhoicas/inventario-console/internal/domain/repository"
)

var _ repository.SessionStorage = (*Memory)(nil)

// Memory almacenamiento de sesiones en memoria del proceso (un mapa por scope).
type Memory struct {
	mu     sync.RWMutex
	scopes map[string]map[string]string
}

// NewMemory construye un almacenamiento vacío.
func NewMemory() *Memory {
	return &Memory{scopes: make(map[string]map[string]string)}
}

// GetItems devuelve una copia de las claves presentes.
func (m *Memory) GetItems(_ context.Context, scope string, keys ...string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return pick(m.scopes[scope], keys), nil
}

// SetItems escribe todas las claves bajo un único lock.
func (m *Memory) SetItems(_ context.Context, scope string, items map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	bucket, ok := m.scopes[scope]
	if !ok {
		bucket = make(map[string]string, len(items))
		m.scopes[scope] = bucket
	}
	for k, v := range items {
		bucket[k] = v
	}
	return nil
}

// RemoveItems borra las claves; el scope desaparece cuando queda vacío.
func (m *Memory) RemoveItems(_ context.Context, scope string, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	bucket, ok := m.scopes[scope]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(bucket, k)
	}
	if len(bucket) == 0 {
		delete(m.scopes, scope)
	}
	return nil
}

func pick(bucket map[string]string, keys []string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := bucket[k]; ok {
			out[k] = v
		}
	}
	return out
}
