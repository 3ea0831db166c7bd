package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// CreateIncoming registra una entrada.
func (c *Client) CreateIncoming(ctx context.Context, token string, in dto.CreateShipmentRequest) (*entity.Shipment, error) {
	return c.createShipment(ctx, token, "/api/shipments/incoming", in)
}

// CreateWriteOff registra una baja.
func (c *Client) CreateWriteOff(ctx context.Context, token string, in dto.CreateShipmentRequest) (*entity.Shipment, error) {
	return c.createShipment(ctx, token, "/api/shipments/write-off", in)
}

// CreateTransfer registra un traslado entre bodegas.
func (c *Client) CreateTransfer(ctx context.Context, token string, in dto.CreateTransferRequest) (*entity.Shipment, error) {
	return c.createShipment(ctx, token, "/api/shipments/transfer", in)
}

func (c *Client) createShipment(ctx context.Context, token, path string, in any) (*entity.Shipment, error) {
	var out entity.Shipment
	if err := c.do(ctx, http.MethodPost, path, token, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListShipments GET /api/shipments con filtros.
func (c *Client) ListShipments(ctx context.Context, token string, f dto.ShipmentFilter) (*entity.Page[entity.Shipment], error) {
	q := pageQuery(f.Page, f.Size)
	setIf(q, "transactionType", f.TransactionType)
	setIf(q, "warehouseId", f.WarehouseID)
	setIf(q, "fromDate", f.FromDate)
	setIf(q, "toDate", f.ToDate)
	var out entity.Page[entity.Shipment]
	if err := c.do(ctx, http.MethodGet, "/api/shipments", token, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetShipment GET /api/shipments/{id}.
func (c *Client) GetShipment(ctx context.Context, token, id string) (*entity.Shipment, error) {
	var out entity.Shipment
	if err := c.do(ctx, http.MethodGet, "/api/shipments/"+escapeID(id), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
