package entity

import "time"

// Claims identidad decodificada del token de sesión. Inmutable mientras se mantiene:
// un nuevo login la reemplaza completa.
type Claims struct {
	Subject   string     `json:"sub"`
	RawRole   string     `json:"role,omitempty"`
	IssuedAt  *time.Time `json:"iat,omitempty"`
	ExpiresAt *time.Time `json:"exp,omitempty"`
}

// Role devuelve el rol normalizado de los claims.
func (c Claims) Role() Role {
	return ParseRole(c.RawRole)
}

// Session par token + claims. Existe completa o no existe (nil).
type Session struct {
	Token  string
	Claims Claims
}

// HasRole indica si la sesión tiene exactamente el rol dado.
func (s *Session) HasRole(role Role) bool {
	if s == nil || !role.Valid() {
		return false
	}
	return s.Claims.Role() == role
}

// IsAdmin atajo de HasRole(RoleAdmin).
func (s *Session) IsAdmin() bool {
	return s.HasRole(RoleAdmin)
}

// IsAtLeastStorekeeper true para cualquier rol reconocido: admin cubre el nivel de almacenero.
func (s *Session) IsAtLeastStorekeeper() bool {
	return s.HasRole(RoleStorekeeper) || s.HasRole(RoleAdmin)
}
