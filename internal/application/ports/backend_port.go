package ports

import (
	"context"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// AuthGateway autenticación contra el backend de almacenes (rutas públicas, sin token).
type AuthGateway interface {
	SignIn(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error)
	SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.TokenResponse, error)
}

// ShipmentGateway operaciones de movimientos. token es el Bearer de la sesión.
type ShipmentGateway interface {
	CreateIncoming(ctx context.Context, token string, in dto.CreateShipmentRequest) (*entity.Shipment, error)
	CreateWriteOff(ctx context.Context, token string, in dto.CreateShipmentRequest) (*entity.Shipment, error)
	CreateTransfer(ctx context.Context, token string, in dto.CreateTransferRequest) (*entity.Shipment, error)
	ListShipments(ctx context.Context, token string, f dto.ShipmentFilter) (*entity.Page[entity.Shipment], error)
	GetShipment(ctx context.Context, token, id string) (*entity.Shipment, error)
}

// CatalogGateway bodegas, productos y existencias.
type CatalogGateway interface {
	ListWarehouses(ctx context.Context, token string, p dto.PageRequest) (*entity.Page[entity.Warehouse], error)
	GetWarehouse(ctx context.Context, token, id string) (*entity.Warehouse, error)
	CreateWarehouse(ctx context.Context, token string, in dto.WarehouseRequest) (*entity.Warehouse, error)
	UpdateWarehouse(ctx context.Context, token, id string, in dto.WarehouseRequest) (*entity.Warehouse, error)
	DeleteWarehouse(ctx context.Context, token, id string) error

	ListProducts(ctx context.Context, token string, p dto.PageRequest) (*entity.Page[entity.Product], error)
	GetProduct(ctx context.Context, token, id string) (*entity.Product, error)
	CreateProduct(ctx context.Context, token string, in dto.ProductRequest) (*entity.Product, error)
	UpdateProduct(ctx context.Context, token, id string, in dto.ProductRequest) (*entity.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error

	ListStock(ctx context.Context, token string, f dto.StockFilter) (*entity.Page[entity.StockSnapshot], error)
	GetStock(ctx context.Context, token, id string) (*entity.StockSnapshot, error)
}

// UserGateway administración de usuarios (solo admin; el backend lo vuelve a verificar).
type UserGateway interface {
	ListUsers(ctx context.Context, token string, p dto.PageRequest) (*entity.Page[entity.User], error)
	UpdateUserRole(ctx context.Context, token, id string, in dto.UpdateRoleRequest) (*entity.User, error)
	DeleteUser(ctx context.Context, token, id string) error
}

// StockReportGenerator genera el PDF de existencias.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, report dto.StockReport) ([]byte, error)
}
