package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// WarehouseUseCase casos de uso CRUD de bodegas contra el backend.
type WarehouseUseCase struct {
	gateway ports.CatalogGateway
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(gateway ports.CatalogGateway) *WarehouseUseCase {
	return &WarehouseUseCase{gateway: gateway}
}

// List lista bodegas con paginación.
func (uc *WarehouseUseCase) List(ctx context.Context, token string, p dto.PageRequest) (*entity.Page[entity.Warehouse], error) {
	p.DefaultPage()
	return uc.gateway.ListWarehouses(ctx, token, p)
}

// GetByID obtiene una bodega.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, token, id string) (*entity.Warehouse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "id es requerido")
	}
	return uc.gateway.GetWarehouse(ctx, token, id)
}

// Create crea una bodega.
func (uc *WarehouseUseCase) Create(ctx context.Context, token string, in dto.WarehouseRequest) (*entity.Warehouse, error) {
	if err := validateWarehouse(&in); err != nil {
		return nil, err
	}
	return uc.gateway.CreateWarehouse(ctx, token, in)
}

// Update actualiza una bodega.
func (uc *WarehouseUseCase) Update(ctx context.Context, token, id string, in dto.WarehouseRequest) (*entity.Warehouse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "id es requerido")
	}
	if err := validateWarehouse(&in); err != nil {
		return nil, err
	}
	return uc.gateway.UpdateWarehouse(ctx, token, id, in)
}

// Delete elimina una bodega.
func (uc *WarehouseUseCase) Delete(ctx context.Context, token, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("id", "id es requerido")
	}
	return uc.gateway.DeleteWarehouse(ctx, token, id)
}

func validateWarehouse(in *dto.WarehouseRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)
	if in.Name == "" {
		return domain.NewValidationError("name", "el nombre de la bodega es requerido")
	}
	if len([]rune(in.Name)) > 255 {
		return domain.NewValidationError("name", "el nombre no puede superar 255 caracteres")
	}
	if len([]rune(in.Location)) > 500 {
		return domain.NewValidationError("location", "la ubicación no puede superar 500 caracteres")
	}
	return nil
}
