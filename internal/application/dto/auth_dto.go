package dto

import "time"

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest registro de un almacenero nuevo. ConfirmPassword solo se valida en la consola.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// SignUpRequest cuerpo que se envía al backend (sin la confirmación).
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse respuesta de sign-in / sign-up del backend.
type TokenResponse struct {
	Token string `json:"token"`
}

// SessionResponse estado de la sesión para la consola.
type SessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	Username      string     `json:"username,omitempty"`
	Role          string     `json:"role,omitempty"`
	IsAdmin       bool       `json:"isAdmin"`
	IsStorekeeper bool       `json:"isStorekeeper"`
	IssuedAt      *time.Time `json:"issuedAt,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

// NavigationResponse decisión del guard para una ruta de la consola.
type NavigationResponse struct {
	Path        string `json:"path"`
	Requirement string `json:"requirement"`
	Allow       bool   `json:"allow"`
	Redirect    string `json:"redirect,omitempty"`
}
