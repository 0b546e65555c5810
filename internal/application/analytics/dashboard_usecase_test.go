package analytics_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nisaworld/muebleria-api/internal/application/analytics"
	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/repository"
	"github.com/nisaworld/muebleria-api/internal/domain/scope"
)

// fakeAnalyticsRepo devuelve totales fijos y registra el predicado con el
// que se le consulta.
type fakeAnalyticsRepo struct {
	sales     repository.SalesTotals
	expense   repository.ExpenseTotals
	inventory repository.InventoryTotals
	monthly   []*repository.MonthlyTotals

	lastSalesPred     scope.Predicate
	lastExpensePred   scope.Predicate
	lastInventoryPred scope.Predicate
}

func (r *fakeAnalyticsRepo) GetSalesTotals(_ context.Context, p scope.Predicate) (*repository.SalesTotals, error) {
	r.lastSalesPred = p
	t := r.sales
	return &t, nil
}

func (r *fakeAnalyticsRepo) GetExpenseTotals(_ context.Context, p scope.Predicate) (*repository.ExpenseTotals, error) {
	r.lastExpensePred = p
	t := r.expense
	return &t, nil
}

func (r *fakeAnalyticsRepo) GetInventoryTotals(_ context.Context, p scope.Predicate) (*repository.InventoryTotals, error) {
	r.lastInventoryPred = p
	t := r.inventory
	return &t, nil
}

func (r *fakeAnalyticsRepo) GetMonthlyTotals(_ context.Context, p scope.Predicate, _ int) ([]*repository.MonthlyTotals, error) {
	r.lastSalesPred = p
	return r.monthly, nil
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func seededRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{
		sales:     repository.SalesTotals{Revenue: dec(10000), COGS: dec(4000), Pending: dec(1500), Count: 12},
		expense:   repository.ExpenseTotals{Total: dec(2000), Pending: dec(500), Count: 4},
		inventory: repository.InventoryTotals{Value: dec(7000), Units: 35, Items: 9},
	}
}

func TestGetStats_AritmeticaDeGanancia(t *testing.T) {
	repo := seededRepo()
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetStats(context.Background(), entity.RoleAdmin, 1)
	require.NoError(t, err)

	assert.True(t, out.TotalSales.Equal(dec(10000)))
	assert.True(t, out.TotalCOGS.Equal(dec(4000)))
	assert.True(t, out.TotalExpenses.Equal(dec(2000)))
	// ganancia = ventas - COGS - gastos
	assert.True(t, out.TotalProfit.Equal(dec(4000)), "profit = 10000 - 4000 - 2000")
	// pendiente = por cobrar de ventas + por pagar de gastos
	assert.True(t, out.TotalPending.Equal(dec(2000)))
	assert.Equal(t, int64(12), out.SalesCount)
	assert.True(t, out.InventoryValue.Equal(dec(7000)))
	assert.Equal(t, int64(35), out.InventoryUnits)
}

// El tablero consulta con el mismo predicado que usan los listados.
func TestGetStats_PredicadoSegunRol(t *testing.T) {
	repo := seededRepo()
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetStats(context.Background(), entity.RoleStaff, 7)
	require.NoError(t, err)
	for _, p := range []scope.Predicate{repo.lastSalesPred, repo.lastExpensePred, repo.lastInventoryPred} {
		owner, filtered := p.Owner()
		assert.True(t, filtered, "staff debe consultar filtrado")
		assert.Equal(t, int64(7), owner)
	}

	_, err = uc.GetStats(context.Background(), entity.RoleAdmin, 7)
	require.NoError(t, err)
	for _, p := range []scope.Predicate{repo.lastSalesPred, repo.lastExpensePred, repo.lastInventoryPred} {
		_, filtered := p.Owner()
		assert.False(t, filtered, "admin consulta sin filtro")
	}
}

// Leer no modifica nada: dos llamadas seguidas devuelven lo mismo.
func TestGetStats_Idempotente(t *testing.T) {
	repo := seededRepo()
	uc := analytics.NewDashboardUseCase(repo)

	a, err := uc.GetStats(context.Background(), entity.RoleAdmin, 1)
	require.NoError(t, err)
	b, err := uc.GetStats(context.Background(), entity.RoleAdmin, 1)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGetMonthlyReport_CompletaMesesSinMovimiento(t *testing.T) {
	repo := seededRepo()
	repo.monthly = []*repository.MonthlyTotals{
		{Month: 3, Revenue: dec(5000), COGS: dec(2000), Expenses: dec(1000), Sales: 6},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetMonthlyReport(context.Background(), entity.RoleAdmin, 1, 2026)
	require.NoError(t, err)
	require.Len(t, out.Months, 12, "siempre doce filas")
	assert.Equal(t, 2026, out.Year)

	marzo := out.Months[2]
	assert.Equal(t, 3, marzo.Month)
	assert.Equal(t, "Marzo 2026", marzo.Label)
	assert.True(t, marzo.Profit.Equal(dec(2000)), "profit mensual = 5000 - 2000 - 1000")

	enero := out.Months[0]
	assert.Equal(t, "Enero 2026", enero.Label)
	assert.True(t, enero.Revenue.IsZero())
	assert.True(t, enero.Profit.IsZero())
	assert.Equal(t, int64(0), enero.Sales)
}

func TestGetMonthlyReport_AnoFueraDeRango(t *testing.T) {
	uc := analytics.NewDashboardUseCase(seededRepo())
	_, err := uc.GetMonthlyReport(context.Background(), entity.RoleAdmin, 1, 1850)
	assert.Error(t, err)
}
