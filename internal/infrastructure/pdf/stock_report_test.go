package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

func TestGenerateStockReport_GeneraPDF(t *testing.T) {
	g := NewMarotoStockReport()
	out, err := g.GenerateStockReport(context.Background(), dto.StockReport{
		Title:       "Existencias por bodega",
		GeneratedBy: "alice_store",
		GeneratedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Rows: []entity.StockSnapshot{
			{ID: 1, Count: 1200, LastUpdate: "2024-02-29T08:15:00",
				Warehouse: &entity.Warehouse{ID: 1, Name: "Central"},
				Product:   &entity.Product{ID: 1, Name: "Tornillo", Unit: "caja"}},
			{ID: 2, Count: 3},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateStockReport_SinFilas(t *testing.T) {
	out, err := NewMarotoStockReport().GenerateStockReport(context.Background(), dto.StockReport{Title: "Vacío"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestDescribeFilter(t *testing.T) {
	assert.Equal(t, "Todas las bodegas y productos", describeFilter(dto.StockFilter{}))
	assert.Equal(t, "Producto: torn   |   Bodega: 2", describeFilter(dto.StockFilter{ProductName: "torn", WarehouseID: "2"}))
}

func TestPrinter_SeparadorDeMiles(t *testing.T) {
	assert.Equal(t, "1.234.567", NewMarotoStockReport().printer.Sprintf("%d", 1234567))
}
