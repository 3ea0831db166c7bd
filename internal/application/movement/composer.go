// Package movement compone en memoria un movimiento de stock de varias líneas antes de enviarlo
// al backend (entrada, baja o traslado).
//
// Ciclo de vida del borrador:
//
//	Empty ──AddLine──▶ Building ──(bodega + líneas)──▶ Ready ──Submit──▶ Submitting ─┬─▶ Committed
//	                                                     ▲                           │
//	                                                     └───────── error ◀──────────┘
//
// Las líneas inválidas nunca entran al borrador y las líneas repetidas de un mismo producto
// no se fusionan: cada AddLine es una línea independiente.
package movement

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// FailureFallback mensaje genérico cuando el backend no envía uno propio.
const FailureFallback = "No se pudo registrar el movimiento"

// State estado del borrador.
type State int

const (
	StateEmpty State = iota
	StateBuilding
	StateReady
	StateSubmitting
	StateCommitted
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateBuilding:
		return "building"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StateCommitted:
		return "committed"
	}
	return "unknown"
}

// LineStatus resultado explícito de AddLine.
type LineStatus int

const (
	LineAdded LineStatus = iota
	LineInvalidProduct
	LineInvalidQuantity
	LineDraftLocked
)

func (s LineStatus) String() string {
	switch s {
	case LineAdded:
		return "added"
	case LineInvalidProduct:
		return "invalid_product"
	case LineInvalidQuantity:
		return "invalid_quantity"
	case LineDraftLocked:
		return "locked"
	}
	return "unknown"
}

// Err traduce el estado a error (nil si la línea se agregó).
func (s LineStatus) Err() error {
	switch s {
	case LineAdded:
		return nil
	case LineInvalidProduct:
		return domain.NewValidationError("productId", "seleccione un producto")
	case LineInvalidQuantity:
		return domain.NewValidationError("quantity", "la cantidad debe ser al menos 1")
	case LineDraftLocked:
		return domain.ErrDraftClosed
	}
	return domain.ErrInvalidInput
}

// Draft foto inmutable del borrador.
type Draft struct {
	ID            string
	Kind          entity.MovementKind
	WarehouseID   string
	DestinationID string
	Lines         []entity.MovementLine
	State         State
	CanSubmit     bool
	LastError     error
}

// Composer borrador de un movimiento. Seguro para uso concurrente: la llamada al backend
// se hace fuera del lock y el estado Submitting rechaza un segundo Submit.
type Composer struct {
	mu            sync.Mutex
	id            string
	gateway       ports.ShipmentGateway
	kind          entity.MovementKind
	warehouseID   string
	destinationID string
	lines         []entity.MovementLine
	submitting    bool
	committed     bool
	lastErr       error
}

// NewComposer crea un borrador vacío del tipo indicado (incoming si kind está vacío).
func NewComposer(gateway ports.ShipmentGateway, kind entity.MovementKind) *Composer {
	if kind == "" {
		kind = entity.MovementIncoming
	}
	return &Composer{
		id:      uuid.NewString(),
		gateway: gateway,
		kind:    kind,
	}
}

// ID identificador del borrador.
func (c *Composer) ID() string { return c.id }

// SetKind cambia el tipo del movimiento.
func (c *Composer) SetKind(raw string) error {
	kind, ok := entity.ParseMovementKind(raw)
	if !ok {
		return domain.ErrInvalidKind
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.lockedErr(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

// SetWarehouse fija la bodega (origen en un traslado). Vacío la desasigna.
func (c *Composer) SetWarehouse(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.lockedErr(); err != nil {
		return err
	}
	c.warehouseID = strings.TrimSpace(id)
	return nil
}

// SetDestination fija la bodega destino de un traslado.
func (c *Composer) SetDestination(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.lockedErr(); err != nil {
		return err
	}
	c.destinationID = strings.TrimSpace(id)
	return nil
}

// AddLine agrega una línea si el producto no está vacío y la cantidad es >= 1.
func (c *Composer) AddLine(productID string, quantity int) LineStatus {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return LineInvalidProduct
	}
	if quantity < 1 {
		return LineInvalidQuantity
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lockedErr() != nil {
		return LineDraftLocked
	}
	c.lines = append(c.lines, entity.MovementLine{ProductID: productID, Quantity: quantity})
	return LineAdded
}

// RemoveLine quita la línea en index. Devuelve false (sin cambios) si no existe.
func (c *Composer) RemoveLine(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lockedErr() != nil || index < 0 || index >= len(c.lines) {
		return false
	}
	c.lines = append(c.lines[:index:index], c.lines[index+1:]...)
	return true
}

// Lines copia de las líneas en orden de inserción.
func (c *Composer) Lines() []entity.MovementLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.MovementLine(nil), c.lines...)
}

// State estado actual.
func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// CanSubmit true solo en Ready.
func (c *Composer) CanSubmit() bool {
	return c.State() == StateReady
}

// LastError último error de envío (nil tras un envío exitoso).
func (c *Composer) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Snapshot devuelve una foto consistente del borrador.
func (c *Composer) Snapshot() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	state := c.stateLocked()
	return Draft{
		ID:            c.id,
		Kind:          c.kind,
		WarehouseID:   c.warehouseID,
		DestinationID: c.destinationID,
		Lines:         append([]entity.MovementLine{}, c.lines...),
		State:         state,
		CanSubmit:     state == StateReady,
		LastError:     c.lastErr,
	}
}

// Submit congela el borrador y lo envía según su tipo:
// incoming → CreateIncoming, write-off → CreateWriteOff, transfer → CreateTransfer.
// Si el backend rechaza, el borrador vuelve a Ready con las mismas líneas para reintentar.
func (c *Composer) Submit(ctx context.Context, token string) (*entity.Shipment, error) {
	c.mu.Lock()
	switch {
	case c.committed:
		c.mu.Unlock()
		return nil, domain.ErrDraftClosed
	case c.submitting:
		c.mu.Unlock()
		return nil, domain.ErrSubmitInProgress
	case c.stateLocked() != StateReady:
		c.mu.Unlock()
		return nil, domain.ErrDraftIncomplete
	}
	c.submitting = true
	kind, from, to := c.kind, c.warehouseID, c.destinationID
	items := toItems(c.lines)
	c.mu.Unlock()

	shipment, err := c.dispatch(ctx, token, kind, from, to, items)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if err != nil {
		c.lastErr = err
		return nil, fmt.Errorf("registrar movimiento %s: %w", kind, err)
	}
	c.committed = true
	c.lastErr = nil
	return shipment, nil
}

func (c *Composer) dispatch(ctx context.Context, token string, kind entity.MovementKind, from, to string, items []dto.ShipmentItemRequest) (*entity.Shipment, error) {
	switch kind {
	case entity.MovementIncoming:
		return c.gateway.CreateIncoming(ctx, token, dto.CreateShipmentRequest{WarehouseID: dto.WireID(from), Items: items})
	case entity.MovementWriteOff:
		return c.gateway.CreateWriteOff(ctx, token, dto.CreateShipmentRequest{WarehouseID: dto.WireID(from), Items: items})
	case entity.MovementTransfer:
		return c.gateway.CreateTransfer(ctx, token, dto.CreateTransferRequest{
			FromWarehouseID: dto.WireID(from),
			ToWarehouseID:   dto.WireID(to),
			Items:           items,
		})
	}
	return nil, domain.ErrInvalidKind
}

func (c *Composer) stateLocked() State {
	switch {
	case c.committed:
		return StateCommitted
	case c.submitting:
		return StateSubmitting
	case len(c.lines) == 0:
		return StateEmpty
	case c.readyLocked():
		return StateReady
	}
	return StateBuilding
}

func (c *Composer) readyLocked() bool {
	if c.warehouseID == "" || len(c.lines) == 0 {
		return false
	}
	if c.kind == entity.MovementTransfer {
		return c.destinationID != "" && c.destinationID != c.warehouseID
	}
	return true
}

func (c *Composer) lockedErr() error {
	if c.committed {
		return domain.ErrDraftClosed
	}
	if c.submitting {
		return domain.ErrSubmitInProgress
	}
	return nil
}

func toItems(lines []entity.MovementLine) []dto.ShipmentItemRequest {
	items := make([]dto.ShipmentItemRequest, len(lines))
	for i, l := range lines {
		items[i] = dto.ShipmentItemRequest{ProductID: dto.WireID(l.ProductID), Count: l.Quantity}
	}
	return items
}
