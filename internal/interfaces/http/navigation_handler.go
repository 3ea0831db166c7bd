package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/guard"
)

// Navigation godoc
// @Summary      Decisión de navegación
// @Description  Indica si la vista se puede mostrar con la sesión actual o a dónde redirigir.
// @Tags         navigation
// @Produce      json
// @Param        path  query  string  true  "Ruta de la consola, p. ej. /users"
// @Success      200   {object}  dto.NavigationResponse
// @Router       /api/navigation [get]
func Navigation(c *fiber.Ctx) error {
	path := c.Query("path", "/")
	req := guard.RequirementFor(path)
	d := guard.Check(c.UserContext(), GetStore(c), req)
	return c.JSON(dto.NavigationResponse{
		Path:        path,
		Requirement: req.String(),
		Allow:       d.Allow,
		Redirect:    d.Redirect,
	})
}
