package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// ShipmentUseCase listado y detalle de operaciones registradas.
type ShipmentUseCase struct {
	gateway ports.ShipmentGateway
}

// NewShipmentUseCase construye el caso de uso.
func NewShipmentUseCase(gateway ports.ShipmentGateway) *ShipmentUseCase {
	return &ShipmentUseCase{gateway: gateway}
}

// List lista operaciones con filtros de tipo, bodega y rango de fechas (YYYY-MM-DD).
func (uc *ShipmentUseCase) List(ctx context.Context, token string, f dto.ShipmentFilter) (*entity.Page[entity.Shipment], error) {
	f.DefaultPage()
	f.TransactionType = strings.ToLower(strings.TrimSpace(f.TransactionType))
	switch entity.MovementKind(f.TransactionType) {
	case "", entity.MovementIncoming, entity.MovementWriteOff, entity.MovementOutgoing, entity.MovementTransfer:
	default:
		return nil, domain.NewValidationError("transactionType", "tipo de operación desconocido")
	}
	for field, v := range map[string]string{"fromDate": f.FromDate, "toDate": f.ToDate} {
		if v == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, v); err != nil {
			return nil, domain.NewValidationError(field, "fecha inválida, use AAAA-MM-DD")
		}
	}
	return uc.gateway.ListShipments(ctx, token, f)
}

// GetByID obtiene una operación.
func (uc *ShipmentUseCase) GetByID(ctx context.Context, token, id string) (*entity.Shipment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "id es requerido")
	}
	return uc.gateway.GetShipment(ctx, token, id)
}
