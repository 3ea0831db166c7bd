package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

func TestParseRole(t *testing.T) {
	cases := map[string]entity.Role{
		"ROLE_ADMIN":       entity.RoleAdmin,
		"ROLE_STOREKEEPER": entity.RoleStorekeeper,
		"ADMIN":            entity.RoleAdmin,
		"STOREKEEPER":      entity.RoleStorekeeper,
		"admin":            entity.RoleUnknown,
		"role_admin":       entity.RoleUnknown,
		" ROLE_ADMIN ":     entity.RoleUnknown,
		" STOREKEEPER ":    entity.RoleUnknown,
		"ROLE_AUDITOR":     entity.RoleUnknown,
		"":                 entity.RoleUnknown,
	}
	for raw, want := range cases {
		assert.Equal(t, want, entity.ParseRole(raw), raw)
	}
	assert.Equal(t, "ROLE_ADMIN", entity.RoleAdmin.Wire())
	assert.Equal(t, "", entity.RoleUnknown.Wire())
}

func TestSession_RolesNil(t *testing.T) {
	var s *entity.Session
	assert.False(t, s.IsAdmin())
	assert.False(t, s.IsAtLeastStorekeeper())
	assert.False(t, s.HasRole(entity.RoleAdmin))
}

func TestParseMovementKind(t *testing.T) {
	k, ok := entity.ParseMovementKind("Write-Off")
	assert.True(t, ok)
	assert.Equal(t, entity.MovementWriteOff, k)

	_, ok = entity.ParseMovementKind("outgoing")
	assert.False(t, ok, "outgoing no se compone desde la consola")
}
