package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/usecase"
)

// ShipmentHandler listado y detalle de operaciones.
type ShipmentHandler struct {
	uc *usecase.ShipmentUseCase
}

// NewShipmentHandler construye el handler.
func NewShipmentHandler(uc *usecase.ShipmentUseCase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc}
}

// List godoc
// @Summary      Listar operaciones
// @Tags         shipments
// @Produce      json
// @Param        transactionType  query  string  false  "incoming | write-off | outgoing | transfer"
// @Param        warehouseId      query  string  false  "Bodega"
// @Param        fromDate         query  string  false  "Desde (AAAA-MM-DD)"
// @Param        toDate           query  string  false  "Hasta (AAAA-MM-DD)"
// @Param        page             query  int     false  "Página (desde 0)"
// @Param        size             query  int     false  "Tamaño"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/shipments [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	var f dto.ShipmentFilter
	if err := c.QueryParser(&f); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.UserContext(), GetToken(c), f)
	if err != nil {
		return writeError(c, err, "no se pudieron cargar las operaciones")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener operación
// @Tags         shipments
// @Produce      json
// @Param        id   path  string  true  "ID de la operación"
// @Success      200  {object}  entity.Shipment
// @Router       /api/shipments/{id} [get]
func (h *ShipmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetToken(c), c.Params("id"))
	if err != nil {
		return writeError(c, err, "operación no encontrada")
	}
	return c.JSON(out)
}
