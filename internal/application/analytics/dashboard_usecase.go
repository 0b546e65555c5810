// Package analytics contiene los casos de uso del tablero financiero y del
// reporte mensual.
package analytics

import (
	"context"
	"fmt"

	"github.com/nisaworld/muebleria-api/internal/application/dto"
	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/repository"
	"github.com/nisaworld/muebleria-api/internal/domain/scope"
)

// DashboardUseCase genera el resumen financiero bajo el alcance de la sesión.
//
// Fuente de datos: AnalyticsRepository (consultas read-only que agregan en
// SQL). Los agregados usan el mismo predicado que los listados, por lo que
// el tablero de un staff nunca incluye filas que sus listas no muestran.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetStats construye el DashboardStatsResponse para la sesión indicada.
//
// Tres llamadas en paralelo:
//  1. GetSalesTotals     → ventas, COGS, pendiente por cobrar
//  2. GetExpenseTotals   → gastos
//  3. GetInventoryTotals → valor y unidades en inventario
//
// Ganancia = ventas − COGS − gastos. Leer no modifica nada: dos llamadas
// seguidas sin escrituras intermedias devuelven lo mismo.
func (uc *DashboardUseCase) GetStats(ctx context.Context, role entity.Role, userID int64) (*dto.DashboardStatsResponse, error) {
	salesPred := scope.For(role, userID, scope.ResourceSales)
	expensePred := scope.For(role, userID, scope.ResourceExpenses)
	inventoryPred := scope.For(role, userID, scope.ResourceInventory)

	type salesResult struct {
		totals *repository.SalesTotals
		err    error
	}
	type expenseResult struct {
		totals *repository.ExpenseTotals
		err    error
	}
	type inventoryResult struct {
		totals *repository.InventoryTotals
		err    error
	}

	salesCh := make(chan salesResult, 1)
	expenseCh := make(chan expenseResult, 1)
	inventoryCh := make(chan inventoryResult, 1)

	go func() {
		totals, err := uc.analyticsRepo.GetSalesTotals(ctx, salesPred)
		salesCh <- salesResult{totals, err}
	}()
	go func() {
		totals, err := uc.analyticsRepo.GetExpenseTotals(ctx, expensePred)
		expenseCh <- expenseResult{totals, err}
	}()
	go func() {
		totals, err := uc.analyticsRepo.GetInventoryTotals(ctx, inventoryPred)
		inventoryCh <- inventoryResult{totals, err}
	}()

	sales := <-salesCh
	expense := <-expenseCh
	inventory := <-inventoryCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: totales de ventas: %w", sales.err)
	}
	if expense.err != nil {
		return nil, fmt.Errorf("dashboard: totales de gastos: %w", expense.err)
	}
	if inventory.err != nil {
		return nil, fmt.Errorf("dashboard: totales de inventario: %w", inventory.err)
	}

	profit := sales.totals.Revenue.Sub(sales.totals.COGS).Sub(expense.totals.Total)

	return &dto.DashboardStatsResponse{
		TotalSales:     sales.totals.Revenue.Round(2),
		TotalCOGS:      sales.totals.COGS.Round(2),
		TotalExpenses:  expense.totals.Total.Round(2),
		TotalProfit:    profit.Round(2),
		TotalPending:   sales.totals.Pending.Add(expense.totals.Pending).Round(2),
		SalesCount:     sales.totals.Count,
		ExpensesCount:  expense.totals.Count,
		InventoryValue: inventory.totals.Value.Round(2),
		InventoryUnits: inventory.totals.Units,
		InventoryItems: inventory.totals.Items,
	}, nil
}
