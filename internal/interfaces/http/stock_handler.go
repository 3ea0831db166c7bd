package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/usecase"
)

// StockHandler existencias e informe PDF.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar existencias
// @Tags         stock
// @Produce      json
// @Param        productName  query  string  false  "Filtro por nombre de producto"
// @Param        warehouseId  query  string  false  "Filtro por bodega"
// @Param        page         query  int     false  "Página (desde 0)"
// @Param        size         query  int     false  "Tamaño"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var f dto.StockFilter
	if err := c.QueryParser(&f); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.UserContext(), GetToken(c), f)
	if err != nil {
		return writeError(c, err, "no se pudieron cargar las existencias")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro de existencias
// @Tags         stock
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  entity.StockSnapshot
// @Router       /api/stock/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetToken(c), c.Params("id"))
	if err != nil {
		return writeError(c, err, "registro no encontrado")
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Informe PDF de existencias
// @Tags         stock
// @Produce      application/pdf
// @Param        productName  query  string  false  "Filtro por nombre de producto"
// @Param        warehouseId  query  string  false  "Filtro por bodega"
// @Success      200  {file}  binary
// @Router       /api/stock/report.pdf [get]
func (h *StockHandler) Report(c *fiber.Ctx) error {
	var f dto.StockFilter
	if err := c.QueryParser(&f); err != nil {
		return badBody(c)
	}
	user := ""
	if s := GetSession(c); s != nil {
		user = s.Claims.Subject
	}
	pdf, err := h.uc.Report(c.UserContext(), GetToken(c), user, f)
	if err != nil {
		return writeError(c, err, "no se pudo generar el informe")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="existencias-%s.pdf"`, time.Now().Format("20060102")))
	return c.Send(pdf)
}
