package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// ── Bodegas ───────────────────────────────────────────────────────────────────

func (c *Client) ListWarehouses(ctx context.Context, token string, p dto.PageRequest) (*entity.Page[entity.Warehouse], error) {
	var out entity.Page[entity.Warehouse]
	if err := c.do(ctx, http.MethodGet, "/api/warehouses", token, pageQuery(p.Page, p.Size), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetWarehouse(ctx context.Context, token, id string) (*entity.Warehouse, error) {
	var out entity.Warehouse
	if err := c.do(ctx, http.MethodGet, "/api/warehouses/"+escapeID(id), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateWarehouse(ctx context.Context, token string, in dto.WarehouseRequest) (*entity.Warehouse, error) {
	var out entity.Warehouse
	if err := c.do(ctx, http.MethodPost, "/api/warehouses", token, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateWarehouse(ctx context.Context, token, id string, in dto.WarehouseRequest) (*entity.Warehouse, error) {
	var out entity.Warehouse
	if err := c.do(ctx, http.MethodPut, "/api/warehouses/"+escapeID(id), token, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteWarehouse(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/warehouses/"+escapeID(id), token, nil, nil, nil)
}

// ── Productos ─────────────────────────────────────────────────────────────────

func (c *Client) ListProducts(ctx context.Context, token string, p dto.PageRequest) (*entity.Page[entity.Product], error) {
	var out entity.Page[entity.Product]
	if err := c.do(ctx, http.MethodGet, "/api/products", token, pageQuery(p.Page, p.Size), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProduct(ctx context.Context, token, id string) (*entity.Product, error) {
	var out entity.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+escapeID(id), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, in dto.ProductRequest) (*entity.Product, error) {
	var out entity.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", token, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, in dto.ProductRequest) (*entity.Product, error) {
	var out entity.Product
	if err := c.do(ctx, http.MethodPut, "/api/products/"+escapeID(id), token, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+escapeID(id), token, nil, nil, nil)
}

// ── Existencias ───────────────────────────────────────────────────────────────

func (c *Client) ListStock(ctx context.Context, token string, f dto.StockFilter) (*entity.Page[entity.StockSnapshot], error) {
	q := pageQuery(f.Page, f.Size)
	setIf(q, "productName", f.ProductName)
	setIf(q, "warehouseId", f.WarehouseID)
	var out entity.Page[entity.StockSnapshot]
	if err := c.do(ctx, http.MethodGet, "/api/stock", token, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetStock(ctx context.Context, token, id string) (*entity.StockSnapshot, error) {
	var out entity.StockSnapshot
	if err := c.do(ctx, http.MethodGet, "/api/stock/"+escapeID(id), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
