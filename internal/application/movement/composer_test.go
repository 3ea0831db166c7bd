package movement_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/movement"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Gateway falso
// ──────────────────────────────────────────────────────────────────────────────

type call struct {
	op       string
	token    string
	shipment dto.CreateShipmentRequest
	transfer dto.CreateTransferRequest
}

type apiErr struct{ msg string }

func (e *apiErr) Error() string       { return "backend: " + e.msg }
func (e *apiErr) UserMessage() string { return e.msg }

type fakeGateway struct {
	mu      sync.Mutex
	calls   []call
	err     error
	block   chan struct{} // si no es nil, la llamada espera hasta que se cierre
	entered chan struct{}
}

func (g *fakeGateway) record(c call) (*entity.Shipment, error) {
	g.mu.Lock()
	g.calls = append(g.calls, c)
	block, entered, err := g.block, g.entered, g.err
	g.mu.Unlock()
	if entered != nil {
		entered <- struct{}{}
	}
	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return &entity.Shipment{ID: 1, TransactionType: c.op}, nil
}

func (g *fakeGateway) CreateIncoming(_ context.Context, token string, in dto.CreateShipmentRequest) (*entity.Shipment, error) {
	return g.record(call{op: "incoming", token: token, shipment: in})
}
func (g *fakeGateway) CreateWriteOff(_ context.Context, token string, in dto.CreateShipmentRequest) (*entity.Shipment, error) {
	return g.record(call{op: "write-off", token: token, shipment: in})
}
func (g *fakeGateway) CreateTransfer(_ context.Context, token string, in dto.CreateTransferRequest) (*entity.Shipment, error) {
	return g.record(call{op: "transfer", token: token, transfer: in})
}
func (g *fakeGateway) ListShipments(context.Context, string, dto.ShipmentFilter) (*entity.Page[entity.Shipment], error) {
	return &entity.Page[entity.Shipment]{}, nil
}
func (g *fakeGateway) GetShipment(context.Context, string, string) (*entity.Shipment, error) {
	return nil, domain.ErrNotFound
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Líneas
// ──────────────────────────────────────────────────────────────────────────────

func TestAddLine_RechazaCantidadesNoPositivas(t *testing.T) {
	c := movement.NewComposer(&fakeGateway{}, entity.MovementIncoming)

	assert.Equal(t, movement.LineInvalidQuantity, c.AddLine("P1", 0))
	assert.Equal(t, movement.LineInvalidQuantity, c.AddLine("P1", -1))
	assert.Equal(t, movement.LineInvalidProduct, c.AddLine("", 3))
	assert.Equal(t, movement.LineInvalidProduct, c.AddLine("   ", 3))
	assert.Empty(t, c.Lines())
	assert.Equal(t, movement.StateEmpty, c.State())
}

func TestAddLine_ProductoRepetidoNoSeFusiona(t *testing.T) {
	c := movement.NewComposer(&fakeGateway{}, entity.MovementIncoming)

	assert.Equal(t, movement.LineAdded, c.AddLine("P1", 3))
	assert.Equal(t, movement.LineAdded, c.AddLine("P1", 3))

	assert.Equal(t, []entity.MovementLine{
		{ProductID: "P1", Quantity: 3},
		{ProductID: "P1", Quantity: 3},
	}, c.Lines())
}

func TestLineStatus_Err(t *testing.T) {
	assert.NoError(t, movement.LineAdded.Err())
	assert.ErrorIs(t, movement.LineInvalidProduct.Err(), domain.ErrInvalidInput)
	assert.ErrorIs(t, movement.LineInvalidQuantity.Err(), domain.ErrInvalidInput)
	assert.ErrorIs(t, movement.LineDraftLocked.Err(), domain.ErrDraftClosed)
	assert.NotEqual(t, movement.LineInvalidProduct.Err().Error(), movement.LineInvalidQuantity.Err().Error())
}

func TestRemoveLine(t *testing.T) {
	c := movement.NewComposer(&fakeGateway{}, entity.MovementIncoming)
	c.AddLine("P1", 1)
	c.AddLine("P2", 2)
	c.AddLine("P3", 3)

	assert.False(t, c.RemoveLine(-1))
	assert.False(t, c.RemoveLine(3))
	assert.True(t, c.RemoveLine(1))
	assert.Equal(t, []entity.MovementLine{{ProductID: "P1", Quantity: 1}, {ProductID: "P3", Quantity: 3}}, c.Lines())
}

// ──────────────────────────────────────────────────────────────────────────────
// Estados
// ──────────────────────────────────────────────────────────────────────────────

func TestEstados_DeEmptyAReady(t *testing.T) {
	c := movement.NewComposer(&fakeGateway{}, entity.MovementIncoming)
	assert.Equal(t, movement.StateEmpty, c.State())

	require.NoError(t, c.SetWarehouse("W1"))
	assert.Equal(t, movement.StateEmpty, c.State(), "sin líneas nunca llega a Ready")
	assert.False(t, c.CanSubmit())

	c.AddLine("P1", 2)
	assert.Equal(t, movement.StateReady, c.State())

	require.NoError(t, c.SetWarehouse(""))
	assert.Equal(t, movement.StateBuilding, c.State())
}

func TestSubmit_SinLineasNoDisponible(t *testing.T) {
	gw := &fakeGateway{}
	c := movement.NewComposer(gw, entity.MovementIncoming)
	require.NoError(t, c.SetWarehouse("W1"))

	_, err := c.Submit(context.Background(), "tok")
	assert.ErrorIs(t, err, domain.ErrDraftIncomplete)
	assert.Zero(t, gw.callCount())
}

func TestTransfer_RequiereDestinoDistinto(t *testing.T) {
	c := movement.NewComposer(&fakeGateway{}, entity.MovementTransfer)
	require.NoError(t, c.SetWarehouse("W1"))
	c.AddLine("P1", 1)
	assert.Equal(t, movement.StateBuilding, c.State())

	require.NoError(t, c.SetDestination("W1"))
	assert.Equal(t, movement.StateBuilding, c.State(), "origen y destino iguales")

	require.NoError(t, c.SetDestination("W2"))
	assert.Equal(t, movement.StateReady, c.State())
}

func TestSetKind_Desconocido(t *testing.T) {
	c := movement.NewComposer(&fakeGateway{}, "")
	assert.ErrorIs(t, c.SetKind("outgoing"), domain.ErrInvalidKind)
	assert.Equal(t, entity.MovementIncoming, c.Snapshot().Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// Envío
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenario_IncomingConservaLineas(t *testing.T) {
	gw := &fakeGateway{}
	c := movement.NewComposer(gw, entity.MovementIncoming)
	require.NoError(t, c.SetWarehouse("W1"))
	c.AddLine("P1", 2)
	c.AddLine("P1", 5)

	shipment, err := c.Submit(context.Background(), "tok")
	require.NoError(t, err)
	require.NotNil(t, shipment)

	require.Equal(t, 1, gw.callCount())
	got := gw.calls[0]
	assert.Equal(t, "incoming", got.op)
	assert.Equal(t, "tok", got.token)
	assert.Equal(t, dto.WireID("W1"), got.shipment.WarehouseID)
	assert.Equal(t, []dto.ShipmentItemRequest{
		{ProductID: "P1", Count: 2},
		{ProductID: "P1", Count: 5},
	}, got.shipment.Items, "dos líneas, sin sumar a 7")
	assert.Equal(t, movement.StateCommitted, c.State())
}

func TestSubmit_DespachaPorTipo(t *testing.T) {
	gw := &fakeGateway{}

	wo := movement.NewComposer(gw, entity.MovementWriteOff)
	require.NoError(t, wo.SetWarehouse("3"))
	wo.AddLine("7", 1)
	_, err := wo.Submit(context.Background(), "tok")
	require.NoError(t, err)

	tr := movement.NewComposer(gw, entity.MovementTransfer)
	require.NoError(t, tr.SetWarehouse("3"))
	require.NoError(t, tr.SetDestination("4"))
	tr.AddLine("7", 2)
	_, err = tr.Submit(context.Background(), "tok")
	require.NoError(t, err)

	require.Equal(t, 2, gw.callCount())
	assert.Equal(t, "write-off", gw.calls[0].op)
	assert.Equal(t, "transfer", gw.calls[1].op)
	assert.Equal(t, dto.WireID("3"), gw.calls[1].transfer.FromWarehouseID)
	assert.Equal(t, dto.WireID("4"), gw.calls[1].transfer.ToWarehouseID)
}

func TestSubmit_FalloVuelveAReadyYConservaLineas(t *testing.T) {
	gw := &fakeGateway{err: &apiErr{msg: "Недостаточно товара на складе"}}
	c := movement.NewComposer(gw, entity.MovementWriteOff)
	require.NoError(t, c.SetWarehouse("W1"))
	c.AddLine("P1", 9)

	_, err := c.Submit(context.Background(), "tok")
	require.Error(t, err)
	assert.Equal(t, "Недостаточно товара на складе", domain.UserMessage(err, movement.FailureFallback))
	assert.Equal(t, movement.StateReady, c.State())
	assert.Equal(t, []entity.MovementLine{{ProductID: "P1", Quantity: 9}}, c.Lines())
	assert.Error(t, c.LastError())

	gw.mu.Lock()
	gw.err = nil
	gw.mu.Unlock()
	_, err = c.Submit(context.Background(), "tok")
	require.NoError(t, err, "reintento sin volver a cargar las líneas")
	assert.NoError(t, c.LastError())
	assert.Equal(t, 2, gw.callCount())
}

func TestSubmit_FalloSinMensajeUsaGenerico(t *testing.T) {
	gw := &fakeGateway{err: errors.New("connection refused")}
	c := movement.NewComposer(gw, entity.MovementIncoming)
	require.NoError(t, c.SetWarehouse("W1"))
	c.AddLine("P1", 1)

	_, err := c.Submit(context.Background(), "tok")
	assert.Equal(t, movement.FailureFallback, domain.UserMessage(err, movement.FailureFallback))
}

func TestSubmit_ReentranteRechazado(t *testing.T) {
	gw := &fakeGateway{block: make(chan struct{}), entered: make(chan struct{}, 1)}
	c := movement.NewComposer(gw, entity.MovementIncoming)
	require.NoError(t, c.SetWarehouse("W1"))
	c.AddLine("P1", 1)

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background(), "tok")
		done <- err
	}()
	<-gw.entered
	assert.Equal(t, movement.StateSubmitting, c.State())

	_, err := c.Submit(context.Background(), "tok")
	assert.ErrorIs(t, err, domain.ErrSubmitInProgress)
	assert.Equal(t, movement.LineDraftLocked, c.AddLine("P2", 1), "el borrador queda congelado")
	assert.False(t, c.RemoveLine(0))
	assert.ErrorIs(t, c.SetWarehouse("W2"), domain.ErrSubmitInProgress)

	close(gw.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, gw.callCount(), "solo una llamada en vuelo")
}

func TestSubmit_CommittedEsTerminal(t *testing.T) {
	gw := &fakeGateway{}
	c := movement.NewComposer(gw, entity.MovementIncoming)
	require.NoError(t, c.SetWarehouse("W1"))
	c.AddLine("P1", 1)
	_, err := c.Submit(context.Background(), "tok")
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), "tok")
	assert.ErrorIs(t, err, domain.ErrDraftClosed)
	assert.Equal(t, movement.LineDraftLocked, c.AddLine("P1", 1))
	assert.Equal(t, 1, gw.callCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Registry
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistry_UnBorradorPorCliente(t *testing.T) {
	reg := movement.NewRegistry(&fakeGateway{})

	_, err := reg.Get("a")
	assert.ErrorIs(t, err, domain.ErrNoDraft)

	first, err := reg.Open("a", entity.MovementIncoming)
	require.NoError(t, err)
	first.AddLine("P1", 1)

	second, err := reg.Open("a", entity.MovementWriteOff)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Empty(t, second.Lines(), "un borrador nuevo siempre empieza vacío")

	_, err = reg.Open("b", "")
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	require.NoError(t, reg.Discard("a"))
	assert.ErrorIs(t, reg.Discard("a"), domain.ErrNoDraft)

	reg.Forget("b", nil)
	assert.Zero(t, reg.Len())
}

func TestRegistry_ForgetSoloElMismoBorrador(t *testing.T) {
	reg := movement.NewRegistry(&fakeGateway{})
	old, err := reg.Open("a", "")
	require.NoError(t, err)
	current, err := reg.Open("a", "")
	require.NoError(t, err)

	reg.Forget("a", old)
	got, err := reg.Get("a")
	require.NoError(t, err)
	assert.Equal(t, current.ID(), got.ID())
}
