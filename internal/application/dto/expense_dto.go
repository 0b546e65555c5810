package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nisaworld/muebleria-api/internal/domain/entity"
)

// CreateExpenseRequest alta de un gasto de materia prima.
type CreateExpenseRequest struct {
	MaterialName  string          `json:"material_name"`
	VendorName    string          `json:"vendor_name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	AdvanceAmount decimal.Decimal `json:"advance_amount"`
}

// BulkCreateExpenseRequest varios gastos compartiendo número de factura.
type BulkCreateExpenseRequest struct {
	Items []CreateExpenseRequest `json:"items"`
}

// UpdateExpenseRequest edición de un gasto existente.
type UpdateExpenseRequest struct {
	MaterialName  *string          `json:"material_name"`
	VendorName    *string          `json:"vendor_name"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod *string          `json:"payment_method"`
	AdvanceAmount *decimal.Decimal `json:"advance_amount"`
	Used          *bool            `json:"used"`
}

// ExpenseResponse gasto serializado.
type ExpenseResponse struct {
	ID            int64           `json:"id"`
	InvoiceNo     string          `json:"invoice_no"`
	MaterialName  string          `json:"material_name"`
	VendorName    string          `json:"vendor_name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	AdvanceAmount decimal.Decimal `json:"advance_amount"`
	Pending       decimal.Decimal `json:"pending"`
	Used          bool            `json:"used"`
	AddedBy       int64           `json:"added_by"`
	Edited        bool            `json:"edited"`
	CreatedAt     time.Time       `json:"created_at"`
}

func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	pending := decimal.Zero
	if e.PaymentMethod == entity.PaymentAdvance {
		pending = e.Amount.Sub(e.AdvanceAmount)
	}
	return ExpenseResponse{
		ID:            e.ID,
		InvoiceNo:     e.InvoiceNo,
		MaterialName:  e.MaterialName,
		VendorName:    e.VendorName,
		Amount:        e.Amount,
		PaymentMethod: string(e.PaymentMethod),
		AdvanceAmount: e.AdvanceAmount,
		Pending:       pending,
		Used:          e.Used,
		AddedBy:       e.AddedBy,
		Edited:        e.Edited,
		CreatedAt:     e.CreatedAt,
	}
}

func ToExpenseResponses(expenses []*entity.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, ToExpenseResponse(e))
	}
	return out
}
