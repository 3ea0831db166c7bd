package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/movement"
	"github.com/jhoicas/inventario-console/internal/application/usecase"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// DraftHandler edición y envío del movimiento en curso de cada cliente.
type DraftHandler struct {
	drafts    *movement.Registry
	shipments *usecase.ShipmentUseCase
	log       *logger.Logger
}

// NewDraftHandler construye el handler.
func NewDraftHandler(drafts *movement.Registry, shipments *usecase.ShipmentUseCase, log *logger.Logger) *DraftHandler {
	return &DraftHandler{drafts: drafts, shipments: shipments, log: log}
}

// Open godoc
// @Summary      Abrir movimiento
// @Description  Crea un borrador nuevo (reemplaza el anterior del cliente).
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenDraftRequest  true  "kind: incoming | write-off | transfer"
// @Success      201   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shipments/draft [post]
func (h *DraftHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	kind := entity.MovementIncoming
	if in.Kind != "" {
		k, ok := entity.ParseMovementKind(in.Kind)
		if !ok {
			return writeError(c, domain.ErrInvalidKind, "")
		}
		kind = k
	}
	d, err := h.drafts.Open(GetScope(c), kind)
	if err != nil {
		return writeError(c, err, "")
	}
	if err := d.SetWarehouse(in.WarehouseID); err != nil {
		return writeError(c, err, "")
	}
	if err := d.SetDestination(in.DestinationID); err != nil {
		return writeError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(draftResponse(d.Snapshot()))
}

// Get godoc
// @Summary      Movimiento en edición
// @Tags         drafts
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shipments/draft [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	d, err := h.drafts.Get(GetScope(c))
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(draftResponse(d.Snapshot()))
}

// Update godoc
// @Summary      Cambiar cabecera del movimiento
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateDraftRequest  true  "kind, warehouseId, destinationId (opcionales)"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/shipments/draft [put]
func (h *DraftHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	d, err := h.drafts.Get(GetScope(c))
	if err != nil {
		return writeError(c, err, "")
	}
	if in.Kind != nil {
		if err := d.SetKind(*in.Kind); err != nil {
			return writeError(c, err, "")
		}
	}
	if in.WarehouseID != nil {
		if err := d.SetWarehouse(*in.WarehouseID); err != nil {
			return writeError(c, err, "")
		}
	}
	if in.DestinationID != nil {
		if err := d.SetDestination(*in.DestinationID); err != nil {
			return writeError(c, err, "")
		}
	}
	return c.JSON(draftResponse(d.Snapshot()))
}

// Discard godoc
// @Summary      Cancelar movimiento
// @Tags         drafts
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shipments/draft [delete]
func (h *DraftHandler) Discard(c *fiber.Ctx) error {
	if err := h.drafts.Discard(GetScope(c)); err != nil {
		return writeError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddLine godoc
// @Summary      Agregar línea
// @Description  Las líneas inválidas no entran al borrador; las repetidas no se fusionan.
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddLineRequest  true  "productId, quantity >= 1"
// @Success      201   {object}  dto.AddLineResponse
// @Failure      400   {object}  dto.AddLineResponse
// @Failure      409   {object}  dto.AddLineResponse
// @Router       /api/shipments/draft/lines [post]
func (h *DraftHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddLineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	d, err := h.drafts.Get(GetScope(c))
	if err != nil {
		return writeError(c, err, "")
	}
	status := d.AddLine(in.ProductID, in.Quantity)
	out := dto.AddLineResponse{Status: status.String(), Draft: draftResponse(d.Snapshot())}
	switch status {
	case movement.LineAdded:
		return c.Status(fiber.StatusCreated).JSON(out)
	case movement.LineDraftLocked:
		return c.Status(fiber.StatusConflict).JSON(out)
	}
	return c.Status(fiber.StatusBadRequest).JSON(out)
}

// RemoveLine godoc
// @Summary      Quitar línea
// @Tags         drafts
// @Produce      json
// @Param        index  path  int  true  "Posición de la línea (desde 0)"
// @Success      200    {object}  dto.DraftResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/shipments/draft/lines/{index} [delete]
func (h *DraftHandler) RemoveLine(c *fiber.Ctx) error {
	d, err := h.drafts.Get(GetScope(c))
	if err != nil {
		return writeError(c, err, "")
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil || !d.RemoveLine(index) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "LINE_NOT_FOUND", Message: "línea inexistente"})
	}
	return c.JSON(draftResponse(d.Snapshot()))
}

// Submit godoc
// @Summary      Registrar movimiento
// @Description  Envía el borrador al backend según su tipo. Si falla, el borrador conserva sus líneas.
// @Tags         drafts
// @Produce      json
// @Success      201  {object}  dto.SubmitDraftResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/shipments/draft/submit [post]
func (h *DraftHandler) Submit(c *fiber.Ctx) error {
	scope := GetScope(c)
	d, err := h.drafts.Get(scope)
	if err != nil {
		return writeError(c, err, "")
	}
	shipment, err := d.Submit(c.UserContext(), GetToken(c))
	if err != nil {
		h.log.Client(scope).Warn().Err(err).Str("draft", d.ID()).Msg("movimiento rechazado")
		return writeError(c, err, movement.FailureFallback)
	}
	h.drafts.Forget(scope, d)
	h.log.Client(scope).Info().Str("draft", d.ID()).Int64("shipment", shipmentID(shipment)).Msg("movimiento registrado")

	out := dto.SubmitDraftResponse{Shipment: shipment}
	if list, err := h.shipments.List(c.UserContext(), GetToken(c), dto.ShipmentFilter{}); err == nil {
		out.Shipments = list
	} else {
		h.log.Warn().Err(err).Msg("no se pudo refrescar el listado de operaciones")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func draftResponse(d movement.Draft) dto.DraftResponse {
	out := dto.DraftResponse{
		ID:            d.ID,
		Kind:          string(d.Kind),
		WarehouseID:   d.WarehouseID,
		DestinationID: d.DestinationID,
		Lines:         d.Lines,
		State:         d.State.String(),
		CanSubmit:     d.CanSubmit,
	}
	if out.Lines == nil {
		out.Lines = []entity.MovementLine{}
	}
	if d.LastError != nil {
		out.LastError = domain.UserMessage(d.LastError, movement.FailureFallback)
	}
	return out
}

func shipmentID(s *entity.Shipment) int64 {
	if s == nil {
		return 0
	}
	return s.ID
}
