package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// UserUseCase administración de usuarios (vista solo para admin; el backend vuelve a autorizar).
type UserUseCase struct {
	gateway ports.UserGateway
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(gateway ports.UserGateway) *UserUseCase {
	return &UserUseCase{gateway: gateway}
}

// List lista usuarios.
func (uc *UserUseCase) List(ctx context.Context, token string, p dto.PageRequest) (*entity.Page[entity.User], error) {
	p.DefaultPage()
	return uc.gateway.ListUsers(ctx, token, p)
}

// UpdateRole cambia el rol. El valor lo escribe un admin en un formulario, así que se normaliza
// ("storekeeper", " ROLE_ADMIN ") antes de reconocerlo; se envía el formato del backend.
func (uc *UserUseCase) UpdateRole(ctx context.Context, token, id, rawRole string) (*entity.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "id es requerido")
	}
	role := entity.ParseRole(strings.ToUpper(strings.TrimSpace(rawRole)))
	if !role.Valid() {
		return nil, domain.NewValidationError("role", "rol desconocido: use ADMIN o STOREKEEPER")
	}
	return uc.gateway.UpdateUserRole(ctx, token, id, dto.UpdateRoleRequest{Role: role.Wire()})
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, token, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("id", "id es requerido")
	}
	return uc.gateway.DeleteUser(ctx, token, id)
}
