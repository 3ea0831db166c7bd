package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-console/internal/domain/repository"
)

var _ repository.SessionStorage = (*SessionStorage)(nil)

// SessionStorage almacenamiento de sesiones de la consola en PostgreSQL (tabla console_session_items).
type SessionStorage struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewSessionStorage construye el almacenamiento.
func NewSessionStorage(pool *pgxpool.Pool) *SessionStorage {
	return &SessionStorage{pool: pool, tx: NewTxRunner(pool)}
}

// GetItems lee las claves pedidas del ámbito; las ausentes no aparecen en el mapa.
func (s *SessionStorage) GetItems(ctx context.Context, scope string, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	rows, err := s.pool.Query(ctx,
		`SELECT item_key, item_value FROM console_session_items WHERE scope = $1 AND item_key = ANY($2)`,
		scope, keys)
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("leer sesión: %w", err)
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	return out, nil
}

// SetItems escribe todas las claves en una sola transacción.
func (s *SessionStorage) SetItems(ctx context.Context, scope string, items map[string]string) error {
	if len(items) == 0 {
		return nil
	}
	return s.tx.Run(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for k, v := range items {
			batch.Queue(`
				INSERT INTO console_session_items (scope, item_key, item_value, updated_at)
				VALUES ($1, $2, $3, now())
				ON CONFLICT (scope, item_key) DO UPDATE
				SET item_value = EXCLUDED.item_value, updated_at = EXCLUDED.updated_at`,
				scope, k, v)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("guardar sesión: %w", err)
		}
		return nil
	})
}

// RemoveItems borra las claves indicadas del ámbito.
func (s *SessionStorage) RemoveItems(ctx context.Context, scope string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := s.pool.Exec(ctx,
		`DELETE FROM console_session_items WHERE scope = $1 AND item_key = ANY($2)`,
		scope, keys)
	if err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
