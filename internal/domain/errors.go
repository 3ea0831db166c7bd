package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidToken       = errors.New("token de sesión inválido")
	ErrInvalidKind        = errors.New("tipo de movimiento desconocido")
	ErrInvalidRole        = errors.New("rol desconocido")
	ErrNoDraft            = errors.New("no hay un movimiento en edición")
	ErrDraftIncomplete    = errors.New("el movimiento no está listo para enviarse")
	ErrDraftClosed        = errors.New("el movimiento ya fue registrado")
	ErrSubmitInProgress   = errors.New("el movimiento ya se está enviando")
	ErrBackendUnavailable = errors.New("backend de almacenes no disponible")
)

// UserMessenger lo implementan los errores que traen un mensaje apto para mostrar al usuario
// (por ejemplo, el campo "message" de una respuesta de error del backend).
type UserMessenger interface {
	UserMessage() string
}

// UserMessage devuelve el mensaje legible del error si existe; si no, fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var um UserMessenger
	if errors.As(err, &um) {
		if msg := um.UserMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}

// ValidationError rechazo de validación con mensaje para el usuario. errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError construye el error de validación.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// UserMessage implementa UserMessenger.
func (e *ValidationError) UserMessage() string { return e.Message }

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }
