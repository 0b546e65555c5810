package repository

import (
	"context"

	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/scope"
)

// InventoryRepository puerto de persistencia para ítems de inventario.
// Las implementaciones deben funcionar tanto sobre el pool como dentro de
// una transacción (ver postgres.TxRunner).
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error)
	// GetByIDForUpdate obtiene el ítem bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción: serializa los débitos
	// concurrentes sobre el mismo ítem.
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.InventoryItem, error)
	// UpdateQuantity escribe la nueva cantidad (el caller ya validó >= 0).
	UpdateQuantity(ctx context.Context, id int64, quantity int64) error
	Update(ctx context.Context, item *entity.InventoryItem) error
	List(ctx context.Context, p scope.Predicate) ([]*entity.InventoryItem, error)
}
