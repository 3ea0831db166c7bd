package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/usecase"
)

// WarehouseHandler maneja las peticiones HTTP para bodegas (protegido).
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// List godoc
// @Summary      Listar bodegas
// @Tags         warehouses
// @Produce      json
// @Param        page  query  int  false  "Página (desde 0)"  default(0)
// @Param        size  query  int  false  "Tamaño"  default(100)
// @Success      200   {object}  map[string]interface{}
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	var p dto.PageRequest
	if err := c.QueryParser(&p); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.UserContext(), GetToken(c), p)
	if err != nil {
		return writeError(c, err, "no se pudieron cargar las bodegas")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener bodega por ID
// @Tags         warehouses
// @Produce      json
// @Param        id   path  string  true  "ID de la bodega"
// @Success      200  {object}  entity.Warehouse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetToken(c), c.Params("id"))
	if err != nil {
		return writeError(c, err, "bodega no encontrada")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear bodega
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WarehouseRequest  true  "Datos de la bodega"
// @Success      201   {object}  entity.Warehouse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.WarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetToken(c), in)
	if err != nil {
		return writeError(c, err, "no se pudo crear la bodega")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar bodega
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la bodega"
// @Param        body  body  dto.WarehouseRequest  true  "Datos de la bodega"
// @Success      200   {object}  entity.Warehouse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [put]
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	var in dto.WarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetToken(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err, "no se pudo actualizar la bodega")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar bodega
// @Tags         warehouses
// @Param        id   path  string  true  "ID de la bodega"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [delete]
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetToken(c), c.Params("id")); err != nil {
		return writeError(c, err, "no se pudo eliminar la bodega")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
