package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nisaworld/muebleria-api/internal/domain"
	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/repository"
	"github.com/nisaworld/muebleria-api/internal/domain/scope"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de gastos.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseSelect = `
	SELECT id, invoice_no, material_name, vendor_name, amount, payment_method,
	       advance_amount, used, added_by, edited, created_at
	FROM expenses`

// Create persiste un gasto y asigna su ID.
func (r *ExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (invoice_no, material_name, vendor_name, amount, payment_method,
		                      advance_amount, used, added_by, edited, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		expense.InvoiceNo, expense.MaterialName, expense.VendorName, expense.Amount,
		expense.PaymentMethod, expense.AdvanceAmount, expense.Used, expense.AddedBy,
		expense.Edited, expense.CreatedAt,
	).Scan(&expense.ID)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(ctx context.Context, id int64) (*entity.Expense, error) {
	var e entity.Expense
	err := r.q.QueryRow(ctx, expenseSelect+` WHERE id = $1`, id).Scan(
		&e.ID, &e.InvoiceNo, &e.MaterialName, &e.VendorName, &e.Amount, &e.PaymentMethod,
		&e.AdvanceAmount, &e.Used, &e.AddedBy, &e.Edited, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// List devuelve los gastos visibles bajo el predicado, más recientes primero.
func (r *ExpenseRepo) List(ctx context.Context, p scope.Predicate) ([]*entity.Expense, error) {
	query := expenseSelect + ` ORDER BY created_at DESC, id DESC`
	var args []any
	if owner, ok := p.Owner(); ok {
		query = expenseSelect + ` WHERE added_by = $1 ORDER BY created_at DESC, id DESC`
		args = append(args, owner)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(
			&e.ID, &e.InvoiceNo, &e.MaterialName, &e.VendorName, &e.Amount, &e.PaymentMethod,
			&e.AdvanceAmount, &e.Used, &e.AddedBy, &e.Edited, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, &e)
	}
	return expenses, rows.Err()
}

// Update actualiza los campos editables de un gasto.
func (r *ExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	query := `
		UPDATE expenses
		SET material_name = $2, vendor_name = $3, amount = $4, payment_method = $5,
		    advance_amount = $6, used = $7, edited = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		expense.ID, expense.MaterialName, expense.VendorName, expense.Amount,
		expense.PaymentMethod, expense.AdvanceAmount, expense.Used, expense.Edited,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un gasto por ID.
func (r *ExpenseRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
