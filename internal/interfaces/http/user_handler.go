package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/usecase"
)

// UserHandler administración de usuarios (solo ADMIN).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Param        page  query  int  false  "Página (desde 0)"
// @Param        size  query  int  false  "Tamaño"
// @Success      200   {object}  map[string]interface{}
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var p dto.PageRequest
	if err := c.QueryParser(&p); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.UserContext(), GetToken(c), p)
	if err != nil {
		return writeError(c, err, "no se pudieron cargar los usuarios")
	}
	return c.JSON(out)
}

// UpdateRole godoc
// @Summary      Cambiar rol de un usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del usuario"
// @Param        body  body  dto.UpdateRoleRequest  true  "ADMIN o STOREKEEPER"
// @Success      200   {object}  entity.User
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateRole(c.UserContext(), GetToken(c), c.Params("id"), in.Role)
	if err != nil {
		return writeError(c, err, "no se pudo cambiar el rol")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Param        id   path  string  true  "ID del usuario"
// @Success      204
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetToken(c), c.Params("id")); err != nil {
		return writeError(c, err, "no se pudo eliminar el usuario")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
