package dto

import (
	"time"

	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// WarehouseRequest alta/edición de bodega.
type WarehouseRequest struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// ProductRequest alta/edición de producto.
type ProductRequest struct {
	Name        string `json:"name"`
	Unit        string `json:"unit,omitempty"`
	Description string `json:"description,omitempty"`
}

// StockFilter filtros del listado de existencias.
type StockFilter struct {
	PageRequest
	ProductName string `query:"productName" json:"productName,omitempty"`
	WarehouseID string `query:"warehouseId" json:"warehouseId,omitempty"`
}

// UpdateRoleRequest cambio de rol de un usuario.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// StockReport datos del informe PDF de existencias.
type StockReport struct {
	Title       string
	GeneratedBy string
	GeneratedAt time.Time
	Filter      StockFilter
	Rows        []entity.StockSnapshot
}
