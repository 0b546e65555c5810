package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse agregados del tablero bajo el alcance de la sesión.
type DashboardStatsResponse struct {
	TotalSales     decimal.Decimal `json:"total_sales"`
	TotalCOGS      decimal.Decimal `json:"total_cogs"`
	TotalExpenses  decimal.Decimal `json:"total_expenses"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
	TotalPending   decimal.Decimal `json:"total_pending"`
	SalesCount     int64           `json:"sales_count"`
	ExpensesCount  int64           `json:"expenses_count"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	InventoryUnits int64           `json:"inventory_units"`
	InventoryItems int64           `json:"inventory_items"`
}

// MonthlyReportRow fila del reporte mensual.
type MonthlyReportRow struct {
	Month    int             `json:"month"`
	Label    string          `json:"label"`
	Revenue  decimal.Decimal `json:"revenue"`
	COGS     decimal.Decimal `json:"cogs"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
	Sales    int64           `json:"sales"`
}

// MonthlyReportResponse reporte de un año, doce filas en orden.
type MonthlyReportResponse struct {
	Year   int                `json:"year"`
	Months []MonthlyReportRow `json:"months"`
}
