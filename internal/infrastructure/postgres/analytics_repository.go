package postgres

import (
	"context"
	"fmt"

	"github.com/nisaworld/muebleria-api/internal/domain/repository"
	"github.com/nisaworld/muebleria-api/internal/domain/scope"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only de agregación. Todas las sumas se hacen
// en SQL; nunca se traen filas al proceso para sumar.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetSalesTotals agrega ventas, COGS y pendiente por cobrar bajo el predicado.
func (r *AnalyticsRepo) GetSalesTotals(ctx context.Context, p scope.Predicate) (*repository.SalesTotals, error) {
	query := `
		SELECT COALESCE(SUM(sale_price * quantity), 0),
		       COALESCE(SUM(cost_price * quantity), 0),
		       COALESCE(SUM(CASE WHEN payment_type = 'advance'
		                         THEN sale_price * quantity - advance_amount
		                         ELSE 0 END), 0),
		       COUNT(*)
		FROM sales`
	var args []any
	if owner, ok := p.Owner(); ok {
		query += ` WHERE sold_by = $1`
		args = append(args, owner)
	}
	var t repository.SalesTotals
	if err := r.q.QueryRow(ctx, query, args...).Scan(&t.Revenue, &t.COGS, &t.Pending, &t.Count); err != nil {
		return nil, fmt.Errorf("sales totals: %w", err)
	}
	return &t, nil
}

// GetExpenseTotals agrega gastos y pendiente por pagar bajo el predicado.
func (r *AnalyticsRepo) GetExpenseTotals(ctx context.Context, p scope.Predicate) (*repository.ExpenseTotals, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0),
		       COALESCE(SUM(CASE WHEN payment_method = 'advance'
		                         THEN amount - advance_amount
		                         ELSE 0 END), 0),
		       COUNT(*)
		FROM expenses`
	var args []any
	if owner, ok := p.Owner(); ok {
		query += ` WHERE added_by = $1`
		args = append(args, owner)
	}
	var t repository.ExpenseTotals
	if err := r.q.QueryRow(ctx, query, args...).Scan(&t.Total, &t.Pending, &t.Count); err != nil {
		return nil, fmt.Errorf("expense totals: %w", err)
	}
	return &t, nil
}

// GetInventoryTotals agrega valor y unidades de inventario bajo el predicado.
func (r *AnalyticsRepo) GetInventoryTotals(ctx context.Context, p scope.Predicate) (*repository.InventoryTotals, error) {
	query := `
		SELECT COALESCE(SUM(cost_price * quantity), 0),
		       COALESCE(SUM(quantity), 0),
		       COUNT(*)
		FROM inventory`
	var args []any
	if owner, ok := p.Owner(); ok {
		query += ` WHERE added_by = $1`
		args = append(args, owner)
	}
	var t repository.InventoryTotals
	if err := r.q.QueryRow(ctx, query, args...).Scan(&t.Value, &t.Units, &t.Items); err != nil {
		return nil, fmt.Errorf("inventory totals: %w", err)
	}
	return &t, nil
}

// GetMonthlyTotals agrega ventas y gastos por mes de un año. Devuelve solo
// los meses con movimiento; el caso de uso completa los faltantes con ceros.
func (r *AnalyticsRepo) GetMonthlyTotals(ctx context.Context, p scope.Predicate, year int) ([]*repository.MonthlyTotals, error) {
	byMonth := make(map[int]*repository.MonthlyTotals, 12)

	salesQuery := `
		SELECT EXTRACT(MONTH FROM created_at)::int,
		       COALESCE(SUM(sale_price * quantity), 0),
		       COALESCE(SUM(cost_price * quantity), 0),
		       COUNT(*)
		FROM sales
		WHERE EXTRACT(YEAR FROM created_at) = $1`
	args := []any{year}
	if owner, ok := p.Owner(); ok {
		salesQuery += ` AND sold_by = $2`
		args = append(args, owner)
	}
	salesQuery += ` GROUP BY 1`

	rows, err := r.q.Query(ctx, salesQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("monthly sales: %w", err)
	}
	for rows.Next() {
		var t repository.MonthlyTotals
		if err := rows.Scan(&t.Month, &t.Revenue, &t.COGS, &t.Sales); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan monthly sales: %w", err)
		}
		byMonth[t.Month] = &t
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	expenseQuery := `
		SELECT EXTRACT(MONTH FROM created_at)::int,
		       COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE EXTRACT(YEAR FROM created_at) = $1`
	args = []any{year}
	if owner, ok := p.Owner(); ok {
		expenseQuery += ` AND added_by = $2`
		args = append(args, owner)
	}
	expenseQuery += ` GROUP BY 1`

	rows, err = r.q.Query(ctx, expenseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("monthly expenses: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var month int
		var t repository.MonthlyTotals
		if err := rows.Scan(&month, &t.Expenses); err != nil {
			return nil, fmt.Errorf("scan monthly expenses: %w", err)
		}
		if existing, ok := byMonth[month]; ok {
			existing.Expenses = t.Expenses
		} else {
			t.Month = month
			byMonth[month] = &t
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]*repository.MonthlyTotals, 0, len(byMonth))
	for m := 1; m <= 12; m++ {
		if t, ok := byMonth[m]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}
