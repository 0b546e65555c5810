// Package sales contiene los casos de uso del registro de ventas: alta
// transaccional con débito de inventario, listado con alcance, edición,
// borrado con restauración opcional y factura en PDF.
package sales

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nisaworld/muebleria-api/internal/application/dto"
	"github.com/nisaworld/muebleria-api/internal/domain"
	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/repository"
	"github.com/nisaworld/muebleria-api/internal/domain/scope"
)

// SalesUseCase casos de uso de ventas.
type SalesUseCase struct {
	saleRepo repository.SaleRepository
	tx       repository.TxRunner
	pdfGen   InvoicePDFGenerator
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(saleRepo repository.SaleRepository, tx repository.TxRunner, pdfGen InvoicePDFGenerator) *SalesUseCase {
	return &SalesUseCase{saleRepo: saleRepo, tx: tx, pdfGen: pdfGen}
}

// List devuelve las ventas visibles bajo el alcance de la sesión.
func (uc *SalesUseCase) List(ctx context.Context, role entity.Role, userID int64) ([]dto.SaleResponse, error) {
	pred := scope.For(role, userID, scope.ResourceSales)
	sales, err := uc.saleRepo.List(ctx, pred)
	if err != nil {
		return nil, err
	}
	return dto.ToSaleResponses(sales), nil
}

// Update edita una venta registrada. No toca inventario: cambiar cantidades
// pasa por borrar con restauración y volver a vender. Toda edición marca el
// flag edited.
func (uc *SalesUseCase) Update(ctx context.Context, role entity.Role, userID, saleID int64, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if !scope.For(role, userID, scope.ResourceSales).Allows(sale.SoldBy) {
		return nil, domain.ErrForbidden
	}
	if in.CustomerName != nil {
		name := strings.TrimSpace(*in.CustomerName)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		sale.CustomerName = name
	}
	if in.CustomerAddress != nil {
		sale.CustomerAddress = strings.TrimSpace(*in.CustomerAddress)
	}
	if in.CustomerPhone != nil {
		sale.CustomerPhone = strings.TrimSpace(*in.CustomerPhone)
	}
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		sale.SalePrice = *in.SalePrice
	}
	if in.PaymentType != nil {
		pt := entity.PaymentType(*in.PaymentType)
		if !pt.Valid() {
			return nil, domain.ErrInvalidInput
		}
		sale.PaymentType = pt
	}
	if in.AdvanceAmount != nil {
		sale.AdvanceAmount = *in.AdvanceAmount
	}
	// Reglas de pago sobre el estado resultante.
	if sale.PaymentType == entity.PaymentFull {
		sale.AdvanceAmount = decimal.Zero
	} else {
		total := sale.SalePrice.Mul(decimal.NewFromInt(sale.Quantity))
		if sale.AdvanceAmount.IsNegative() || sale.AdvanceAmount.GreaterThan(total) {
			return nil, domain.ErrInvalidInput
		}
	}
	sale.Edited = true
	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}
	resp := dto.ToSaleResponse(sale)
	return &resp, nil
}

// Delete elimina una venta. Con restoreInventory, devuelve la cantidad
// vendida al ítem de origen en la misma transacción que borra la venta.
func (uc *SalesUseCase) Delete(ctx context.Context, role entity.Role, userID, saleID int64, restoreInventory bool) error {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	if !scope.For(role, userID, scope.ResourceSales).Allows(sale.SoldBy) {
		return domain.ErrForbidden
	}
	return uc.tx.Run(ctx, func(
		invRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
		_ repository.InvoiceSequence,
	) error {
		if restoreInventory {
			item, err := invRepo.GetByIDForUpdate(ctx, sale.ProductID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			if err := invRepo.UpdateQuantity(ctx, item.ID, item.Quantity+sale.Quantity); err != nil {
				return err
			}
		}
		return saleRepo.Delete(ctx, sale.ID)
	})
}

// InvoicePDF genera la factura en PDF de todas las líneas visibles de un
// número de factura. Si el predicado no deja pasar ninguna línea responde
// not found: un staff no puede descubrir facturas ajenas.
func (uc *SalesUseCase) InvoicePDF(ctx context.Context, role entity.Role, userID int64, invoiceNo string) ([]byte, error) {
	invoiceNo = strings.TrimSpace(invoiceNo)
	if invoiceNo == "" {
		return nil, domain.ErrInvalidInput
	}
	pred := scope.For(role, userID, scope.ResourceSales)
	lines, err := uc.saleRepo.ListByInvoice(ctx, invoiceNo, pred)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrNotFound
	}
	return uc.pdfGen.Generate(invoiceNo, lines)
}
