package entity

// Role rol normalizado de un usuario de la consola.
type Role string

// Roles reconocidos. El backend los emite con prefijo "ROLE_".
const (
	RoleAdmin       Role = "ADMIN"
	RoleStorekeeper Role = "STOREKEEPER"
	RoleUnknown     Role = ""
)

const rolePrefix = "ROLE_"

// ParseRole reconoce solo "ROLE_ADMIN", "ROLE_STOREKEEPER" y sus nombres sin prefijo, tal cual.
// Sin trim ni mayúsculas: cualquier otra forma es RoleUnknown.
func ParseRole(raw string) Role {
	switch raw {
	case rolePrefix + string(RoleAdmin), string(RoleAdmin):
		return RoleAdmin
	case rolePrefix + string(RoleStorekeeper), string(RoleStorekeeper):
		return RoleStorekeeper
	default:
		return RoleUnknown
	}
}

// Wire devuelve el rol con el formato del backend ("ROLE_ADMIN").
func (r Role) Wire() string {
	if r == RoleUnknown {
		return ""
	}
	return rolePrefix + string(r)
}

// Valid indica si el rol es uno de los reconocidos.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStorekeeper
}
