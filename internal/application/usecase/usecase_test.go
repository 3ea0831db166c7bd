package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/usecase"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeCatalog struct {
	warehouseIn dto.WarehouseRequest
	productIn   dto.ProductRequest
	stockCalls  []dto.StockFilter
	stockPages  [][]entity.StockSnapshot
	deleted     string
	token       string
}

func (f *fakeCatalog) ListWarehouses(_ context.Context, token string, p dto.PageRequest) (*entity.Page[entity.Warehouse], error) {
	f.token = token
	return &entity.Page[entity.Warehouse]{Size: p.Size, Number: p.Page}, nil
}
func (f *fakeCatalog) GetWarehouse(context.Context, string, string) (*entity.Warehouse, error) {
	return &entity.Warehouse{ID: 1}, nil
}
func (f *fakeCatalog) CreateWarehouse(_ context.Context, _ string, in dto.WarehouseRequest) (*entity.Warehouse, error) {
	f.warehouseIn = in
	return &entity.Warehouse{ID: 1, Name: in.Name, Location: in.Location}, nil
}
func (f *fakeCatalog) UpdateWarehouse(_ context.Context, _ string, _ string, in dto.WarehouseRequest) (*entity.Warehouse, error) {
	f.warehouseIn = in
	return &entity.Warehouse{ID: 1, Name: in.Name}, nil
}
func (f *fakeCatalog) DeleteWarehouse(_ context.Context, _ string, id string) error {
	f.deleted = id
	return nil
}
func (f *fakeCatalog) ListProducts(_ context.Context, _ string, p dto.PageRequest) (*entity.Page[entity.Product], error) {
	return &entity.Page[entity.Product]{Size: p.Size}, nil
}
func (f *fakeCatalog) GetProduct(context.Context, string, string) (*entity.Product, error) {
	return &entity.Product{ID: 7}, nil
}
func (f *fakeCatalog) CreateProduct(_ context.Context, _ string, in dto.ProductRequest) (*entity.Product, error) {
	f.productIn = in
	return &entity.Product{ID: 7, Name: in.Name}, nil
}
func (f *fakeCatalog) UpdateProduct(_ context.Context, _ string, _ string, in dto.ProductRequest) (*entity.Product, error) {
	f.productIn = in
	return &entity.Product{ID: 7, Name: in.Name}, nil
}
func (f *fakeCatalog) DeleteProduct(_ context.Context, _ string, id string) error {
	f.deleted = id
	return nil
}
func (f *fakeCatalog) ListStock(_ context.Context, _ string, filter dto.StockFilter) (*entity.Page[entity.StockSnapshot], error) {
	f.stockCalls = append(f.stockCalls, filter)
	if filter.Page < len(f.stockPages) {
		return &entity.Page[entity.StockSnapshot]{Content: f.stockPages[filter.Page], TotalPages: len(f.stockPages)}, nil
	}
	return &entity.Page[entity.StockSnapshot]{}, nil
}
func (f *fakeCatalog) GetStock(context.Context, string, string) (*entity.StockSnapshot, error) {
	return &entity.StockSnapshot{ID: 3}, nil
}

type fakeUsers struct {
	role dto.UpdateRoleRequest
}

func (f *fakeUsers) ListUsers(context.Context, string, dto.PageRequest) (*entity.Page[entity.User], error) {
	return &entity.Page[entity.User]{}, nil
}
func (f *fakeUsers) UpdateUserRole(_ context.Context, _ string, _ string, in dto.UpdateRoleRequest) (*entity.User, error) {
	f.role = in
	return &entity.User{ID: 2, Role: in.Role}, nil
}
func (f *fakeUsers) DeleteUser(context.Context, string, string) error { return nil }

type fakeShipments struct {
	filter dto.ShipmentFilter
}

func (f *fakeShipments) CreateIncoming(context.Context, string, dto.CreateShipmentRequest) (*entity.Shipment, error) {
	return nil, errors.New("no usado")
}
func (f *fakeShipments) CreateWriteOff(context.Context, string, dto.CreateShipmentRequest) (*entity.Shipment, error) {
	return nil, errors.New("no usado")
}
func (f *fakeShipments) CreateTransfer(context.Context, string, dto.CreateTransferRequest) (*entity.Shipment, error) {
	return nil, errors.New("no usado")
}
func (f *fakeShipments) ListShipments(_ context.Context, _ string, filter dto.ShipmentFilter) (*entity.Page[entity.Shipment], error) {
	f.filter = filter
	return &entity.Page[entity.Shipment]{}, nil
}
func (f *fakeShipments) GetShipment(context.Context, string, string) (*entity.Shipment, error) {
	return &entity.Shipment{ID: 9}, nil
}

type fakeReporter struct {
	report dto.StockReport
}

func (f *fakeReporter) GenerateStockReport(_ context.Context, r dto.StockReport) ([]byte, error) {
	f.report = r
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Bodegas y productos
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouseUseCase_CreateRecortaYValida(t *testing.T) {
	gw := &fakeCatalog{}
	uc := usecase.NewWarehouseUseCase(gw)

	w, err := uc.Create(context.Background(), "tok", dto.WarehouseRequest{Name: "  Central ", Location: " Norte "})
	require.NoError(t, err)
	assert.Equal(t, "Central", w.Name)
	assert.Equal(t, "Norte", gw.warehouseIn.Location)

	_, err = uc.Create(context.Background(), "tok", dto.WarehouseRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWarehouseUseCase_ListAplicaPaginacionPorDefecto(t *testing.T) {
	gw := &fakeCatalog{}
	page, err := usecase.NewWarehouseUseCase(gw).List(context.Background(), "tok", dto.PageRequest{Page: -3, Size: 9999})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Number)
	assert.Equal(t, 500, page.Size)
	assert.Equal(t, "tok", gw.token)
}

func TestWarehouseUseCase_IDVacio(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&fakeCatalog{})
	assert.ErrorIs(t, uc.Delete(context.Background(), "tok", " "), domain.ErrInvalidInput)
	_, err := uc.GetByID(context.Background(), "tok", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_Validaciones(t *testing.T) {
	gw := &fakeCatalog{}
	uc := usecase.NewProductUseCase(gw)

	_, err := uc.Create(context.Background(), "tok", dto.ProductRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	long := make([]rune, 51)
	for i := range long {
		long[i] = 'u'
	}
	_, err = uc.Create(context.Background(), "tok", dto.ProductRequest{Name: "Tornillo", Unit: string(long)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p, err := uc.Update(context.Background(), "tok", "7", dto.ProductRequest{Name: " Tornillo ", Unit: "caja"})
	require.NoError(t, err)
	assert.Equal(t, "Tornillo", p.Name)
	assert.Equal(t, "caja", gw.productIn.Unit)

	require.NoError(t, uc.Delete(context.Background(), "tok", "7"))
	assert.Equal(t, "7", gw.deleted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUseCase_UpdateRoleEnviaFormatoBackend(t *testing.T) {
	cases := map[string]string{
		"ADMIN":            "ROLE_ADMIN",
		"storekeeper":      "ROLE_STOREKEEPER",
		"ROLE_STOREKEEPER": "ROLE_STOREKEEPER",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			gw := &fakeUsers{}
			u, err := usecase.NewUserUseCase(gw).UpdateRole(context.Background(), "tok", "2", in)
			require.NoError(t, err)
			assert.Equal(t, want, gw.role.Role)
			assert.Equal(t, want, u.Role)
		})
	}
}

func TestUserUseCase_UpdateRoleDesconocido(t *testing.T) {
	_, err := usecase.NewUserUseCase(&fakeUsers{}).UpdateRole(context.Background(), "tok", "2", "AUDITOR")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Operaciones y existencias
// ──────────────────────────────────────────────────────────────────────────────

func TestShipmentUseCase_ListNormalizaFiltros(t *testing.T) {
	gw := &fakeShipments{}
	uc := usecase.NewShipmentUseCase(gw)

	_, err := uc.List(context.Background(), "tok", dto.ShipmentFilter{TransactionType: " Transfer ", FromDate: "2024-01-31"})
	require.NoError(t, err)
	assert.Equal(t, "transfer", gw.filter.TransactionType)
	assert.Equal(t, 100, gw.filter.Size)

	_, err = uc.List(context.Background(), "tok", dto.ShipmentFilter{TransactionType: "robo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.List(context.Background(), "tok", dto.ShipmentFilter{ToDate: "31/01/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockUseCase_ReportRecorreTodasLasPaginas(t *testing.T) {
	full := make([]entity.StockSnapshot, 200)
	gw := &fakeCatalog{stockPages: [][]entity.StockSnapshot{full, {{ID: 1, Count: 4}}}}
	rep := &fakeReporter{}
	uc := usecase.NewStockUseCase(gw, rep)

	out, err := uc.Report(context.Background(), "tok", "alice_store", dto.StockFilter{ProductName: " torn "})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	assert.Len(t, gw.stockCalls, 2)
	assert.Len(t, rep.report.Rows, 201)
	assert.Equal(t, "torn", rep.report.Filter.ProductName)
	assert.Equal(t, "alice_store", rep.report.GeneratedBy)
	assert.WithinDuration(t, time.Now(), rep.report.GeneratedAt, time.Minute)
}

func TestStockUseCase_ReportSinGenerador(t *testing.T) {
	_, err := usecase.NewStockUseCase(&fakeCatalog{}, nil).Report(context.Background(), "tok", "x", dto.StockFilter{})
	assert.Error(t, err)
}
