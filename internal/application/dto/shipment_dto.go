package dto

import "github.com/jhoicas/inventario-console/internal/domain/entity"

// ShipmentItemRequest línea enviada al backend.
type ShipmentItemRequest struct {
	ProductID WireID `json:"productId"`
	Count     int    `json:"count"`
}

// CreateShipmentRequest cuerpo de POST /api/shipments/incoming y /write-off.
type CreateShipmentRequest struct {
	WarehouseID WireID                `json:"warehouseId"`
	Items       []ShipmentItemRequest `json:"items"`
}

// CreateTransferRequest cuerpo de POST /api/shipments/transfer.
type CreateTransferRequest struct {
	FromWarehouseID WireID                `json:"fromWarehouseId"`
	ToWarehouseID   WireID                `json:"toWarehouseId"`
	Items           []ShipmentItemRequest `json:"items"`
}

// ShipmentFilter filtros del listado de operaciones.
type ShipmentFilter struct {
	PageRequest
	TransactionType string `query:"transactionType" json:"transactionType,omitempty"`
	WarehouseID     string `query:"warehouseId" json:"warehouseId,omitempty"`
	FromDate        string `query:"fromDate" json:"fromDate,omitempty"` // YYYY-MM-DD
	ToDate          string `query:"toDate" json:"toDate,omitempty"`
}

// OpenDraftRequest abre un movimiento nuevo en la consola.
type OpenDraftRequest struct {
	Kind          string `json:"kind"`
	WarehouseID   string `json:"warehouseId,omitempty"`
	DestinationID string `json:"destinationId,omitempty"`
}

// UpdateDraftRequest cambia cabecera del movimiento; campos nil no se tocan.
type UpdateDraftRequest struct {
	Kind          *string `json:"kind,omitempty"`
	WarehouseID   *string `json:"warehouseId,omitempty"`
	DestinationID *string `json:"destinationId,omitempty"`
}

// AddLineRequest línea candidata.
type AddLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// DraftResponse vista del movimiento en edición.
type DraftResponse struct {
	ID            string                `json:"id"`
	Kind          string                `json:"kind"`
	WarehouseID   string                `json:"warehouseId,omitempty"`
	DestinationID string                `json:"destinationId,omitempty"`
	Lines         []entity.MovementLine `json:"lines"`
	State         string                `json:"state"`
	CanSubmit     bool                  `json:"canSubmit"`
	LastError     string                `json:"lastError,omitempty"`
}

// AddLineResponse resultado explícito de agregar una línea.
type AddLineResponse struct {
	Status string        `json:"status"`
	Draft  DraftResponse `json:"draft"`
}

// SubmitDraftResponse resultado de registrar el movimiento: lista refrescada.
type SubmitDraftResponse struct {
	Shipment  *entity.Shipment               `json:"shipment,omitempty"`
	Shipments *entity.Page[entity.Shipment] `json:"shipments,omitempty"`
}
