package guard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/application/guard"
	"github.com/jhoicas/inventario-console/internal/application/session"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/internal/infrastructure/storage"
	pkgjwt "github.com/jhoicas/inventario-console/pkg/jwt"
)

func fixture(role string) *entity.Session {
	return &entity.Session{Token: "t", Claims: entity.Claims{Subject: "u", RawRole: role}}
}

func TestAuthorize_Tabla(t *testing.T) {
	cases := []struct {
		name string
		sess *entity.Session
		req  guard.Requirement
		want guard.Decision
	}{
		{"publica sin sesión", nil, guard.RequireNone, guard.Allowed()},
		{"autenticada sin sesión", nil, guard.RequireAuthenticated, guard.RedirectTo(guard.LoginPath)},
		{"autenticada almacenero", fixture("ROLE_STOREKEEPER"), guard.RequireAuthenticated, guard.Allowed()},
		{"autenticada rol desconocido", fixture("ROLE_X"), guard.RequireAuthenticated, guard.Allowed()},
		{"admin sin sesión", nil, guard.RequireAdmin, guard.RedirectTo(guard.LoginPath)},
		{"admin con almacenero", fixture("ROLE_STOREKEEPER"), guard.RequireAdmin, guard.RedirectTo(guard.DefaultPath)},
		{"admin con rol desconocido", fixture("ROLE_X"), guard.RequireAdmin, guard.RedirectTo(guard.DefaultPath)},
		{"admin con admin", fixture("ROLE_ADMIN"), guard.RequireAdmin, guard.Allowed()},
		{"requisito desconocido", fixture("ROLE_ADMIN"), guard.Requirement(99), guard.RedirectTo(guard.LoginPath)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, guard.Authorize(tc.sess, tc.req))
		})
	}
}

func TestAuthorize_NoModificaLaSesion(t *testing.T) {
	sess := fixture("ROLE_STOREKEEPER")
	before := *sess
	_ = guard.Authorize(sess, guard.RequireAdmin)
	_ = guard.Authorize(sess, guard.RequireAdmin)
	assert.Equal(t, before, *sess)
}

func TestCheck_ConStore(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(storage.NewMemory(), "cliente")

	assert.Equal(t, guard.RedirectTo(guard.LoginPath), guard.Check(ctx, store, guard.RequireAdmin))

	tok, err := pkgjwt.Generate("secret", "root", "ROLE_ADMIN", "test", 60)
	require.NoError(t, err)
	_, err = store.Establish(ctx, tok)
	require.NoError(t, err)

	assert.Equal(t, guard.Allowed(), guard.Check(ctx, store, guard.RequireAdmin))
	assert.True(t, store.IsAuthenticated(ctx), "Check no toca la sesión")
}

func TestRequirementFor(t *testing.T) {
	assert.Equal(t, guard.RequireNone, guard.RequirementFor("/login"))
	assert.Equal(t, guard.RequireNone, guard.RequirementFor("register/"))
	assert.Equal(t, guard.RequireAdmin, guard.RequirementFor("/users"))
	assert.Equal(t, guard.RequireAdmin, guard.RequirementFor("/Users/12"))
	assert.Equal(t, guard.RequireAuthenticated, guard.RequirementFor("/shipments"))
	assert.Equal(t, guard.RequireAuthenticated, guard.RequirementFor("/usersettings"))
	assert.Equal(t, guard.RequireAuthenticated, guard.RequirementFor(""))
}
