package repository

import (
	"context"

	"github.com/nisaworld/muebleria-api/internal/domain/entity"
)

// CategoryRepository puerto de persistencia para el lookup de categorías.
type CategoryRepository interface {
	// Create retorna domain.ErrDuplicate si el nombre ya existe.
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	// Delete retorna domain.ErrNotFound si no existe la fila.
	Delete(ctx context.Context, id int64) error
}
