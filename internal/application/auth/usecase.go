package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/application/session"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// Reglas del formulario de registro.
const (
	MinUsernameLength = 5
	MinPasswordLength = 8
)

// AuthUseCase casos de uso de autenticación de la consola: login, registro y logout.
// La verificación de credenciales y la firma del token son del backend; aquí solo se
// valida el formulario y se establece la sesión con el token recibido.
type AuthUseCase struct {
	gateway ports.AuthGateway
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(gateway ports.AuthGateway) *AuthUseCase {
	return &AuthUseCase{gateway: gateway}
}

// Login envía las credenciales y, con el token devuelto, reemplaza la sesión del store.
// Si el backend rechaza las credenciales la sesión previa no se toca; si responde sin un
// token decodificable, la sesión queda vacía.
func (uc *AuthUseCase) Login(ctx context.Context, store *session.Store, in dto.LoginRequest) (*entity.Session, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return nil, domain.NewValidationError("", "usuario y contraseña son requeridos")
	}
	out, err := uc.gateway.SignIn(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("iniciar sesión: %w", err)
	}
	return store.Establish(ctx, tokenOf(out))
}

// Register valida el formulario, registra al usuario y establece su sesión.
func (uc *AuthUseCase) Register(ctx context.Context, store *session.Store, in dto.RegisterRequest) (*entity.Session, error) {
	if err := ValidateRegister(&in); err != nil {
		return nil, err
	}
	out, err := uc.gateway.SignUp(ctx, dto.SignUpRequest{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("registrar usuario: %w", err)
	}
	return store.Establish(ctx, tokenOf(out))
}

// Logout borra la sesión del store.
func (uc *AuthUseCase) Logout(ctx context.Context, store *session.Store) error {
	return store.Clear(ctx)
}

// ValidateRegister aplica las reglas del formulario de registro (normaliza espacios).
func ValidateRegister(in *dto.RegisterRequest) error {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if len([]rune(in.Username)) < MinUsernameLength {
		return domain.NewValidationError("username", fmt.Sprintf("el usuario debe tener al menos %d caracteres", MinUsernameLength))
	}
	if in.Email == "" {
		return domain.NewValidationError("email", "el email es requerido")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return domain.NewValidationError("email", "email inválido")
	}
	if len([]rune(in.Password)) < MinPasswordLength {
		return domain.NewValidationError("password", fmt.Sprintf("la contraseña debe tener al menos %d caracteres", MinPasswordLength))
	}
	if in.Password != in.ConfirmPassword {
		return domain.NewValidationError("confirmPassword", "las contraseñas no coinciden")
	}
	return nil
}

func tokenOf(out *dto.TokenResponse) string {
	if out == nil {
		return ""
	}
	return out.Token
}
