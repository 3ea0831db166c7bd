package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/domain/repository"
	"github.com/jhoicas/inventario-console/internal/infrastructure/storage"
)

// backends ejecuta el mismo contrato sobre cada implementación.
func backends(t *testing.T) map[string]repository.SessionStorage {
	t.Helper()
	return map[string]repository.SessionStorage{
		"memory": storage.NewMemory(),
		"file":   storage.NewFile(filepath.Join(t.TempDir(), "nested", "session.json")),
	}
}

func TestSessionStorage_Contrato(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			got, err := st.GetItems(ctx, "cliente-a", "token", "user")
			require.NoError(t, err)
			assert.Empty(t, got, "scope inexistente no devuelve claves")

			require.NoError(t, st.SetItems(ctx, "cliente-a", map[string]string{"token": "t1", "user": "u1"}))
			require.NoError(t, st.SetItems(ctx, "cliente-b", map[string]string{"token": "t2"}))

			got, err = st.GetItems(ctx, "cliente-a", "token", "user", "otra")
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"token": "t1", "user": "u1"}, got)

			got, err = st.GetItems(ctx, "cliente-b", "token", "user")
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"token": "t2"}, got, "los scopes están aislados")

			require.NoError(t, st.SetItems(ctx, "cliente-a", map[string]string{"token": "t3"}))
			got, err = st.GetItems(ctx, "cliente-a", "token", "user")
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"token": "t3", "user": "u1"}, got, "SetItems fusiona")

			require.NoError(t, st.RemoveItems(ctx, "cliente-a", "token", "user"))
			got, err = st.GetItems(ctx, "cliente-a", "token", "user")
			require.NoError(t, err)
			assert.Empty(t, got)

			require.NoError(t, st.RemoveItems(ctx, "inexistente", "token"))
		})
	}
}

func TestFile_SobreviveReapertura(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	require.NoError(t, storage.NewFile(path).SetItems(ctx, "default", map[string]string{"token": "abc"}))

	reopened := storage.NewFile(path)
	got, err := reopened.GetItems(ctx, "default", "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", got["token"])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFile_DocumentoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o600))

	_, err := storage.NewFile(path).GetItems(context.Background(), "default", "token")
	assert.Error(t, err)
}
