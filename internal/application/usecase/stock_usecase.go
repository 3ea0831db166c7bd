package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// reportPageSize tamaño de página al recorrer el stock para el informe.
const reportPageSize = 200

// StockUseCase consulta de existencias e informe PDF.
type StockUseCase struct {
	gateway  ports.CatalogGateway
	reporter ports.StockReportGenerator
	now      func() time.Time
}

// NewStockUseCase construye el caso de uso. reporter puede ser nil si no se exporta PDF.
func NewStockUseCase(gateway ports.CatalogGateway, reporter ports.StockReportGenerator) *StockUseCase {
	return &StockUseCase{gateway: gateway, reporter: reporter, now: time.Now}
}

// List lista existencias con filtros.
func (uc *StockUseCase) List(ctx context.Context, token string, f dto.StockFilter) (*entity.Page[entity.StockSnapshot], error) {
	f.DefaultPage()
	f.ProductName = strings.TrimSpace(f.ProductName)
	return uc.gateway.ListStock(ctx, token, f)
}

// GetByID obtiene un registro de existencias.
func (uc *StockUseCase) GetByID(ctx context.Context, token, id string) (*entity.StockSnapshot, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "id es requerido")
	}
	return uc.gateway.GetStock(ctx, token, id)
}

// Report recorre todas las páginas del listado filtrado y genera el PDF.
// Las cantidades se muestran tal como las devuelve el backend.
func (uc *StockUseCase) Report(ctx context.Context, token, generatedBy string, f dto.StockFilter) ([]byte, error) {
	if uc.reporter == nil {
		return nil, fmt.Errorf("informe de stock no configurado")
	}
	f.ProductName = strings.TrimSpace(f.ProductName)
	f.Size = reportPageSize
	var rows []entity.StockSnapshot
	for page := 0; ; page++ {
		f.Page = page
		res, err := uc.gateway.ListStock(ctx, token, f)
		if err != nil {
			return nil, err
		}
		rows = append(rows, res.Content...)
		if len(res.Content) < reportPageSize || (res.TotalPages > 0 && page+1 >= res.TotalPages) {
			break
		}
	}
	return uc.reporter.GenerateStockReport(ctx, dto.StockReport{
		Title:       "Existencias por bodega",
		GeneratedBy: generatedBy,
		GeneratedAt: uc.now(),
		Filter:      f,
		Rows:        rows,
	})
}
