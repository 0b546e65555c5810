package sales

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nisaworld/muebleria-api/internal/application/dto"
	"github.com/nisaworld/muebleria-api/internal/domain"
	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/repository"
)

// Record registra una venta de una línea: débito de inventario e inserción
// de la venta en una sola transacción.
func (uc *SalesUseCase) Record(ctx context.Context, userID int64, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	bulk := dto.BulkCreateSaleRequest{
		CustomerName:    in.CustomerName,
		CustomerAddress: in.CustomerAddress,
		CustomerPhone:   in.CustomerPhone,
		Items:           []dto.SaleLineRequest{in.SaleLineRequest},
	}
	created, err := uc.RecordBulk(ctx, userID, bulk)
	if err != nil {
		return nil, err
	}
	return &created[0], nil
}

// RecordBulk registra varias líneas para un mismo cliente. Todas comparten
// el número de factura y se confirman o fallan juntas: si una línea no tiene
// stock suficiente, ninguna se persiste y ningún inventario queda debitado.
func (uc *SalesUseCase) RecordBulk(ctx context.Context, userID int64, in dto.BulkCreateSaleRequest) ([]dto.SaleResponse, error) {
	if strings.TrimSpace(in.CustomerName) == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for i := range in.Items {
		if err := validateSaleLine(&in.Items[i]); err != nil {
			return nil, err
		}
	}

	var created []*entity.Sale
	err := uc.tx.Run(ctx, func(
		invRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
		seq repository.InvoiceSequence,
	) error {
		invoiceNo, err := seq.Next(ctx)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, line := range in.Items {
			// FOR UPDATE: serializa débitos concurrentes sobre el mismo ítem.
			item, err := invRepo.GetByIDForUpdate(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			if item.Quantity < line.Quantity {
				return &domain.InsufficientStockError{
					ProductID: item.ID,
					Available: item.Quantity,
					Requested: line.Quantity,
				}
			}
			sale := &entity.Sale{
				InvoiceNo:       invoiceNo,
				CustomerName:    strings.TrimSpace(in.CustomerName),
				CustomerAddress: strings.TrimSpace(in.CustomerAddress),
				CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
				ProductID:       item.ID,
				ProductName:     item.ProductName,
				CategoryName:    item.CategoryName,
				Quantity:        line.Quantity,
				CostPrice:       item.CostPrice,
				SalePrice:       line.SalePrice,
				PaymentType:     entity.PaymentType(line.PaymentType),
				AdvanceAmount:   line.AdvanceAmount,
				SoldBy:          userID,
				CreatedAt:       now,
			}
			if err := saleRepo.Create(ctx, sale); err != nil {
				return err
			}
			if err := invRepo.UpdateQuantity(ctx, item.ID, item.Quantity-line.Quantity); err != nil {
				return err
			}
			created = append(created, sale)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToSaleResponses(created), nil
}

// validateSaleLine valida una línea y normaliza el abono: en pago completo
// el abono siempre se fuerza a cero.
func validateSaleLine(line *dto.SaleLineRequest) error {
	if line.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if line.SalePrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	pt := entity.PaymentType(line.PaymentType)
	if !pt.Valid() {
		return domain.ErrInvalidInput
	}
	if pt == entity.PaymentFull {
		line.AdvanceAmount = decimal.Zero
		return nil
	}
	total := line.SalePrice.Mul(decimal.NewFromInt(line.Quantity))
	if line.AdvanceAmount.IsNegative() || line.AdvanceAmount.GreaterThan(total) {
		return domain.ErrInvalidInput
	}
	return nil
}
