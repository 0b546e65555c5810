package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nisaworld/muebleria-api/internal/application/dto"
	"github.com/nisaworld/muebleria-api/internal/domain"
	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/scope"
)

// GetMonthlyReport arma el reporte de doce meses de un año, bajo el alcance
// de la sesión. Los meses sin movimiento salen con ceros, no se omiten.
func (uc *DashboardUseCase) GetMonthlyReport(ctx context.Context, role entity.Role, userID, year int64) (*dto.MonthlyReportResponse, error) {
	if year < 2000 || year > 2200 {
		return nil, domain.ErrInvalidInput
	}
	pred := scope.For(role, userID, scope.ResourceSales)
	rows, err := uc.analyticsRepo.GetMonthlyTotals(ctx, pred, int(year))
	if err != nil {
		return nil, fmt.Errorf("reporte mensual %d: %w", year, err)
	}

	byMonth := make(map[int]*dto.MonthlyReportRow, 12)
	for _, r := range rows {
		byMonth[r.Month] = &dto.MonthlyReportRow{
			Month:    r.Month,
			Revenue:  r.Revenue.Round(2),
			COGS:     r.COGS.Round(2),
			Expenses: r.Expenses.Round(2),
			Profit:   r.Revenue.Sub(r.COGS).Sub(r.Expenses).Round(2),
			Sales:    r.Sales,
		}
	}

	months := make([]dto.MonthlyReportRow, 0, 12)
	for m := 1; m <= 12; m++ {
		row := byMonth[m]
		if row == nil {
			row = &dto.MonthlyReportRow{
				Month:    m,
				Revenue:  decimal.Zero,
				COGS:     decimal.Zero,
				Expenses: decimal.Zero,
				Profit:   decimal.Zero,
			}
		}
		row.Label = monthLabel(m, int(year))
		months = append(months, *row)
	}
	return &dto.MonthlyReportResponse{Year: int(year), Months: months}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(month, year int) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[month-1], year)
}
