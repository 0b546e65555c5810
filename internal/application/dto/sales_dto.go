package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nisaworld/muebleria-api/internal/domain/entity"
)

// SaleLineRequest una línea de venta: producto, cantidad y condiciones de pago.
type SaleLineRequest struct {
	ProductID     int64           `json:"product_id"`
	Quantity      int64           `json:"quantity"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PaymentType   string          `json:"payment_type"`
	AdvanceAmount decimal.Decimal `json:"advance_amount"`
}

// CreateSaleRequest venta de una sola línea.
type CreateSaleRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerAddress string `json:"customer_address"`
	CustomerPhone   string `json:"customer_phone"`
	SaleLineRequest
}

// BulkCreateSaleRequest varias líneas para un mismo cliente; comparten
// número de factura y se confirman o fallan juntas.
type BulkCreateSaleRequest struct {
	CustomerName    string            `json:"customer_name"`
	CustomerAddress string            `json:"customer_address"`
	CustomerPhone   string            `json:"customer_phone"`
	Items           []SaleLineRequest `json:"items"`
}

// UpdateSaleRequest edición de una venta registrada. No toca inventario.
type UpdateSaleRequest struct {
	CustomerName    *string          `json:"customer_name"`
	CustomerAddress *string          `json:"customer_address"`
	CustomerPhone   *string          `json:"customer_phone"`
	SalePrice       *decimal.Decimal `json:"sale_price"`
	PaymentType     *string          `json:"payment_type"`
	AdvanceAmount   *decimal.Decimal `json:"advance_amount"`
}

// SaleResponse venta serializada con los snapshots tomados al registrarla.
type SaleResponse struct {
	ID              int64           `json:"id"`
	InvoiceNo       string          `json:"invoice_no"`
	CustomerName    string          `json:"customer_name"`
	CustomerAddress string          `json:"customer_address"`
	CustomerPhone   string          `json:"customer_phone"`
	ProductID       int64           `json:"product_id"`
	ProductName     string          `json:"product_name"`
	CategoryName    string          `json:"category_name"`
	Quantity        int64           `json:"quantity"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	Total           decimal.Decimal `json:"total"`
	PaymentType     string          `json:"payment_type"`
	AdvanceAmount   decimal.Decimal `json:"advance_amount"`
	Pending         decimal.Decimal `json:"pending"`
	SoldBy          int64           `json:"sold_by"`
	Edited          bool            `json:"edited"`
	CreatedAt       time.Time       `json:"created_at"`
}

func ToSaleResponse(s *entity.Sale) SaleResponse {
	total := s.SalePrice.Mul(decimal.NewFromInt(s.Quantity))
	pending := decimal.Zero
	if s.PaymentType == entity.PaymentAdvance {
		pending = total.Sub(s.AdvanceAmount)
	}
	return SaleResponse{
		ID:              s.ID,
		InvoiceNo:       s.InvoiceNo,
		CustomerName:    s.CustomerName,
		CustomerAddress: s.CustomerAddress,
		CustomerPhone:   s.CustomerPhone,
		ProductID:       s.ProductID,
		ProductName:     s.ProductName,
		CategoryName:    s.CategoryName,
		Quantity:        s.Quantity,
		CostPrice:       s.CostPrice,
		SalePrice:       s.SalePrice,
		Total:           total,
		PaymentType:     string(s.PaymentType),
		AdvanceAmount:   s.AdvanceAmount,
		Pending:         pending,
		SoldBy:          s.SoldBy,
		Edited:          s.Edited,
		CreatedAt:       s.CreatedAt,
	}
}

func ToSaleResponses(sales []*entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, ToSaleResponse(s))
	}
	return out
}
