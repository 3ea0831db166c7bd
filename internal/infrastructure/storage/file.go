package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/inventario-console/internal/domain/repository"
)

var _ repository.SessionStorage = (*File)(nil)

// File persiste todos los scopes en un único documento JSON.
// Cada escritura reemplaza el archivo completo (temp + rename), así que un lector
// ve el estado anterior o el nuevo, nunca uno intermedio.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile construye el almacenamiento sobre path; el directorio se crea al primer guardado.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path ruta del documento.
func (f *File) Path() string { return f.path }

// GetItems lee el documento en cada llamada (sin cache).
func (f *File) GetItems(_ context.Context, scope string, keys ...string) (map[string]string, error) {
	doc, err := f.read()
	if err != nil {
		return nil, err
	}
	return pick(doc[scope], keys), nil
}

// SetItems fusiona items en el scope y reescribe el documento.
func (f *File) SetItems(_ context.Context, scope string, items map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.read()
	if err != nil {
		return err
	}
	bucket, ok := doc[scope]
	if !ok {
		bucket = make(map[string]string, len(items))
		doc[scope] = bucket
	}
	for k, v := range items {
		bucket[k] = v
	}
	return f.write(doc)
}

// RemoveItems borra claves del scope y reescribe el documento.
func (f *File) RemoveItems(_ context.Context, scope string, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.read()
	if err != nil {
		return err
	}
	bucket, ok := doc[scope]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(bucket, k)
	}
	if len(bucket) == 0 {
		delete(doc, scope)
	}
	return f.write(doc)
}

func (f *File) read() (map[string]map[string]string, error) {
	doc := make(map[string]map[string]string)
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return doc, nil
		}
		return nil, fmt.Errorf("leer %s: %w", f.path, err)
	}
	if len(raw) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", f.path, err)
	}
	return doc, nil
}

func (f *File) write(doc map[string]map[string]string) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar sesiones: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return fmt.Errorf("archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir sesiones: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("permisos sesiones: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar sesiones: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("reemplazar %s: %w", f.path, err)
	}
	return nil
}
