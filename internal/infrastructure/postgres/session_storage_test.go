package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/domain/repository"
	"github.com/jhoicas/inventario-console/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-console/pkg/config"
)

// Requiere TEST_DATABASE_URL apuntando a una base desechable.
func TestSessionStorage_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.RunMigrations(ctx, pool))

	st := postgres.NewSessionStorage(pool)
	scope := uuid.NewString()

	require.NoError(t, st.SetItems(ctx, scope, map[string]string{
		repository.SessionKeyToken: "a.b.c",
		repository.SessionKeyUser:  `{"sub":"alice_store"}`,
	}))
	got, err := st.GetItems(ctx, scope, repository.SessionKeyToken, repository.SessionKeyUser)
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", got[repository.SessionKeyToken])

	require.NoError(t, st.SetItems(ctx, scope, map[string]string{repository.SessionKeyToken: "d.e.f"}))
	got, err = st.GetItems(ctx, scope, repository.SessionKeyToken)
	require.NoError(t, err)
	assert.Equal(t, "d.e.f", got[repository.SessionKeyToken])

	other, err := st.GetItems(ctx, uuid.NewString(), repository.SessionKeyToken)
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, st.RemoveItems(ctx, scope, repository.SessionKeyToken, repository.SessionKeyUser))
	got, err = st.GetItems(ctx, scope, repository.SessionKeyToken, repository.SessionKeyUser)
	require.NoError(t, err)
	assert.Empty(t, got)
}
