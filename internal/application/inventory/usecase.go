// Package inventory contiene los casos de uso del libro de inventario:
// alta de productos (simple y masiva), listado con alcance y edición.
package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/nisaworld/muebleria-api/internal/application/dto"
	"github.com/nisaworld/muebleria-api/internal/domain"
	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/repository"
	"github.com/nisaworld/muebleria-api/internal/domain/scope"
)

// InventoryUseCase casos de uso del libro de inventario.
type InventoryUseCase struct {
	inventoryRepo repository.InventoryRepository
	categoryRepo  repository.CategoryRepository
	invoiceSeq    repository.InvoiceSequence
	tx            repository.TxRunner
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	inventoryRepo repository.InventoryRepository,
	categoryRepo repository.CategoryRepository,
	invoiceSeq repository.InvoiceSequence,
	tx repository.TxRunner,
) *InventoryUseCase {
	return &InventoryUseCase{
		inventoryRepo: inventoryRepo,
		categoryRepo:  categoryRepo,
		invoiceSeq:    invoiceSeq,
		tx:            tx,
	}
}

// Create da de alta un producto con su propio número de factura.
func (uc *InventoryUseCase) Create(ctx context.Context, userID int64, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	items, err := uc.createItems(ctx, userID, []dto.CreateInventoryItemRequest{in})
	if err != nil {
		return nil, err
	}
	resp := dto.ToInventoryItemResponse(items[0])
	return &resp, nil
}

// BulkCreate da de alta varios productos compartiendo un mismo número de
// factura (una compra al proveedor con varias líneas).
func (uc *InventoryUseCase) BulkCreate(ctx context.Context, userID int64, in dto.BulkCreateInventoryRequest) ([]dto.InventoryItemResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.createItems(ctx, userID, in.Items)
	if err != nil {
		return nil, err
	}
	return dto.ToInventoryItemResponses(items), nil
}

func (uc *InventoryUseCase) createItems(ctx context.Context, userID int64, reqs []dto.CreateInventoryItemRequest) ([]*entity.InventoryItem, error) {
	// Validar todas las líneas antes de tocar la secuencia o la DB.
	for i := range reqs {
		if err := uc.validateLine(ctx, &reqs[i]); err != nil {
			return nil, err
		}
	}
	invoiceNo, err := uc.invoiceSeq.Next(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]*entity.InventoryItem, 0, len(reqs))
	for _, in := range reqs {
		item := &entity.InventoryItem{
			InvoiceNo:   invoiceNo,
			ProductName: strings.TrimSpace(in.ProductName),
			CategoryID:  in.CategoryID,
			CostPrice:   in.CostPrice,
			Quantity:    in.Quantity,
			AddedBy:     userID,
			CreatedAt:   now,
		}
		if err := uc.inventoryRepo.Create(ctx, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (uc *InventoryUseCase) validateLine(ctx context.Context, in *dto.CreateInventoryItemRequest) error {
	if strings.TrimSpace(in.ProductName) == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.CostPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	// FK estricta: la categoría debe existir antes de persistir la línea.
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los productos visibles bajo el alcance de la sesión.
func (uc *InventoryUseCase) List(ctx context.Context, role entity.Role, userID int64) ([]dto.InventoryItemResponse, error) {
	pred := scope.For(role, userID, scope.ResourceInventory)
	items, err := uc.inventoryRepo.List(ctx, pred)
	if err != nil {
		return nil, err
	}
	return dto.ToInventoryItemResponses(items), nil
}

// Update edita un producto. Un staff solo puede editar sus propias altas;
// el admin cualquiera. Toda edición marca el flag edited.
//
// Corre dentro de una transacción con la fila bloqueada: una venta que
// debite entre la lectura y la escritura pisaría la cantidad (una edición
// de solo nombre resucitaría unidades ya vendidas).
func (uc *InventoryUseCase) Update(ctx context.Context, role entity.Role, userID, itemID int64, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	pred := scope.For(role, userID, scope.ResourceInventory)
	var updated *entity.InventoryItem
	err := uc.tx.Run(ctx, func(
		invRepo repository.InventoryRepository,
		_ repository.SaleRepository,
		_ repository.InvoiceSequence,
	) error {
		item, err := invRepo.GetByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if !pred.Allows(item.AddedBy) {
			return domain.ErrForbidden
		}
		if in.ProductName != nil {
			name := strings.TrimSpace(*in.ProductName)
			if name == "" {
				return domain.ErrInvalidInput
			}
			item.ProductName = name
		}
		if in.CategoryID != nil {
			category, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
			if err != nil {
				return err
			}
			if category == nil {
				return domain.ErrNotFound
			}
			item.CategoryID = *in.CategoryID
			item.CategoryName = category.Name
		}
		if in.CostPrice != nil {
			if in.CostPrice.IsNegative() {
				return domain.ErrInvalidInput
			}
			item.CostPrice = *in.CostPrice
		}
		if in.Quantity != nil {
			if *in.Quantity < 0 {
				return domain.ErrInvalidInput
			}
			item.Quantity = *in.Quantity
		}
		item.Edited = true
		if err := invRepo.Update(ctx, item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToInventoryItemResponse(updated)
	return &resp, nil
}
