package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// ProductUseCase casos de uso CRUD de productos.
type ProductUseCase struct {
	gateway ports.CatalogGateway
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(gateway ports.CatalogGateway) *ProductUseCase {
	return &ProductUseCase{gateway: gateway}
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, token string, p dto.PageRequest) (*entity.Page[entity.Product], error) {
	p.DefaultPage()
	return uc.gateway.ListProducts(ctx, token, p)
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(ctx context.Context, token, id string) (*entity.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "id es requerido")
	}
	return uc.gateway.GetProduct(ctx, token, id)
}

// Create crea un producto.
func (uc *ProductUseCase) Create(ctx context.Context, token string, in dto.ProductRequest) (*entity.Product, error) {
	if err := validateProduct(&in); err != nil {
		return nil, err
	}
	return uc.gateway.CreateProduct(ctx, token, in)
}

// Update actualiza un producto.
func (uc *ProductUseCase) Update(ctx context.Context, token, id string, in dto.ProductRequest) (*entity.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "id es requerido")
	}
	if err := validateProduct(&in); err != nil {
		return nil, err
	}
	return uc.gateway.UpdateProduct(ctx, token, id, in)
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, token, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("id", "id es requerido")
	}
	return uc.gateway.DeleteProduct(ctx, token, id)
}

func validateProduct(in *dto.ProductRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Unit = strings.TrimSpace(in.Unit)
	switch {
	case in.Name == "":
		return domain.NewValidationError("name", "el nombre del producto es requerido")
	case len([]rune(in.Name)) > 255:
		return domain.NewValidationError("name", "el nombre no puede superar 255 caracteres")
	case len([]rune(in.Unit)) > 50:
		return domain.NewValidationError("unit", "la unidad no puede superar 50 caracteres")
	case len([]rune(in.Description)) > 1000:
		return domain.NewValidationError("description", "la descripción no puede superar 1000 caracteres")
	}
	return nil
}
