package repository

import (
	"context"

	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/scope"
)

// ExpenseRepository puerto de persistencia para gastos de materia prima.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id int64) (*entity.Expense, error)
	List(ctx context.Context, p scope.Predicate) ([]*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	// Delete retorna domain.ErrNotFound si no existe la fila.
	Delete(ctx context.Context, id int64) error
}
