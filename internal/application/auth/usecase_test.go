package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/application/auth"
	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/session"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/infrastructure/storage"
	pkgjwt "github.com/jhoicas/inventario-console/pkg/jwt"
)

type fakeAuthGateway struct {
	token  string
	err    error
	signIn []dto.LoginRequest
	signUp []dto.SignUpRequest
}

func (g *fakeAuthGateway) SignIn(_ context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	g.signIn = append(g.signIn, in)
	if g.err != nil {
		return nil, g.err
	}
	return &dto.TokenResponse{Token: g.token}, nil
}

func (g *fakeAuthGateway) SignUp(_ context.Context, in dto.SignUpRequest) (*dto.TokenResponse, error) {
	g.signUp = append(g.signUp, in)
	if g.err != nil {
		return nil, g.err
	}
	return &dto.TokenResponse{Token: g.token}, nil
}

func mustToken(t *testing.T, subject, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate("secret", subject, role, "test", 60)
	require.NoError(t, err)
	return tok
}

func TestLogin_EscenarioAlmacenero(t *testing.T) {
	ctx := context.Background()
	gw := &fakeAuthGateway{token: mustToken(t, "alice_store", "ROLE_STOREKEEPER")}
	uc := auth.NewAuthUseCase(gw)
	store := session.NewStore(storage.NewMemory(), "c1")

	sess, err := uc.Login(ctx, store, dto.LoginRequest{Username: "alice_store", Password: "secretpw1"})
	require.NoError(t, err)
	assert.Equal(t, "alice_store", sess.Claims.Subject)
	assert.Equal(t, []dto.LoginRequest{{Username: "alice_store", Password: "secretpw1"}}, gw.signIn)

	assert.False(t, store.IsAdmin(ctx))
	assert.True(t, store.IsAtLeastStorekeeper(ctx))
}

func TestLogin_CamposRequeridos(t *testing.T) {
	gw := &fakeAuthGateway{}
	uc := auth.NewAuthUseCase(gw)
	store := session.NewStore(storage.NewMemory(), "c1")

	_, err := uc.Login(context.Background(), store, dto.LoginRequest{Username: "  ", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, gw.signIn, "no se llama al backend con el formulario incompleto")
}

func TestLogin_RechazoDelBackendNoTocaLaSesion(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(storage.NewMemory(), "c1")
	_, err := store.Establish(ctx, mustToken(t, "root", "ROLE_ADMIN"))
	require.NoError(t, err)

	uc := auth.NewAuthUseCase(&fakeAuthGateway{err: errors.New("401")})
	_, err = uc.Login(ctx, store, dto.LoginRequest{Username: "root", Password: "mal"})
	require.Error(t, err)
	assert.True(t, store.IsAdmin(ctx))
}

func TestLogin_TokenIlegibleDejaSinSesion(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(storage.NewMemory(), "c1")
	_, err := store.Establish(ctx, mustToken(t, "root", "ROLE_ADMIN"))
	require.NoError(t, err)

	uc := auth.NewAuthUseCase(&fakeAuthGateway{token: "basura"})
	_, err = uc.Login(ctx, store, dto.LoginRequest{Username: "root", Password: "secretpw1"})
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.False(t, store.IsAuthenticated(ctx))
}

func TestRegister_Validaciones(t *testing.T) {
	valid := dto.RegisterRequest{Username: "bob_store", Email: "bob@example.com", Password: "password1", ConfirmPassword: "password1"}
	cases := map[string]func(r *dto.RegisterRequest){
		"usuario corto":       func(r *dto.RegisterRequest) { r.Username = "bob" },
		"email vacío":         func(r *dto.RegisterRequest) { r.Email = "" },
		"email inválido":      func(r *dto.RegisterRequest) { r.Email = "bob-at-example" },
		"contraseña corta":    func(r *dto.RegisterRequest) { r.Password, r.ConfirmPassword = "short", "short" },
		"confirmación errada": func(r *dto.RegisterRequest) { r.ConfirmPassword = "password2" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := valid
			mutate(&in)
			gw := &fakeAuthGateway{}
			_, err := auth.NewAuthUseCase(gw).Register(context.Background(), session.NewStore(storage.NewMemory(), "c"), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.NotEmpty(t, domain.UserMessage(err, ""))
			assert.Empty(t, gw.signUp)
		})
	}
}

func TestRegister_EstableceSesion(t *testing.T) {
	ctx := context.Background()
	gw := &fakeAuthGateway{token: mustToken(t, "bob_store", "ROLE_STOREKEEPER")}
	store := session.NewStore(storage.NewMemory(), "c1")

	_, err := auth.NewAuthUseCase(gw).Register(ctx, store, dto.RegisterRequest{
		Username: " bob_store ", Email: "bob@example.com", Password: "password1", ConfirmPassword: "password1",
	})
	require.NoError(t, err)
	require.Len(t, gw.signUp, 1)
	assert.Equal(t, dto.SignUpRequest{Username: "bob_store", Email: "bob@example.com", Password: "password1"}, gw.signUp[0])
	assert.True(t, store.IsAtLeastStorekeeper(ctx))
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(storage.NewMemory(), "c1")
	_, err := store.Establish(ctx, mustToken(t, "root", "ROLE_ADMIN"))
	require.NoError(t, err)

	require.NoError(t, auth.NewAuthUseCase(&fakeAuthGateway{}).Logout(ctx, store))
	assert.False(t, store.IsAuthenticated(ctx))
}
