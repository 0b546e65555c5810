package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nisaworld/muebleria-api/internal/domain/scope"
)

// SalesTotals agregados de ventas bajo un predicado de visibilidad.
type SalesTotals struct {
	Revenue decimal.Decimal // Σ sale_price * quantity
	COGS    decimal.Decimal // Σ cost_price * quantity
	Pending decimal.Decimal // Σ (total - advance) en ventas con abono
	Count   int64
}

// ExpenseTotals agregados de gastos bajo un predicado de visibilidad.
type ExpenseTotals struct {
	Total   decimal.Decimal
	Pending decimal.Decimal
	Count   int64
}

// InventoryTotals agregados de inventario bajo un predicado de visibilidad.
type InventoryTotals struct {
	Value decimal.Decimal // Σ cost_price * quantity
	Units int64
	Items int64
}

// MonthlyTotals fila del reporte mensual de un año.
type MonthlyTotals struct {
	Month    int
	Revenue  decimal.Decimal
	COGS     decimal.Decimal
	Expenses decimal.Decimal
	Sales    int64
}

// AnalyticsRepository agrega en SQL: las sumas nunca se calculan trayendo
// filas al proceso. Todas las consultas aplican el mismo predicado que los
// listados para que el dashboard no muestre filas invisibles en las listas.
type AnalyticsRepository interface {
	GetSalesTotals(ctx context.Context, p scope.Predicate) (*SalesTotals, error)
	GetExpenseTotals(ctx context.Context, p scope.Predicate) (*ExpenseTotals, error)
	GetInventoryTotals(ctx context.Context, p scope.Predicate) (*InventoryTotals, error)
	GetMonthlyTotals(ctx context.Context, p scope.Predicate, year int) ([]*MonthlyTotals, error)
}
