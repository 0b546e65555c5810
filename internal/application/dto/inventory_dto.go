package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nisaworld/muebleria-api/internal/domain/entity"
)

// CreateInventoryItemRequest alta de un producto en inventario.
type CreateInventoryItemRequest struct {
	ProductName string          `json:"product_name"`
	CategoryID  int64           `json:"category_id"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Quantity    int64           `json:"quantity"`
}

// BulkCreateInventoryRequest alta de varios productos compartiendo factura.
type BulkCreateInventoryRequest struct {
	Items []CreateInventoryItemRequest `json:"items"`
}

// UpdateInventoryItemRequest edición de un producto existente. Los campos
// nil se dejan como están.
type UpdateInventoryItemRequest struct {
	ProductName *string          `json:"product_name"`
	CategoryID  *int64           `json:"category_id"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	Quantity    *int64           `json:"quantity"`
}

// InventoryItemResponse producto serializado con su categoría resuelta.
type InventoryItemResponse struct {
	ID           int64           `json:"id"`
	InvoiceNo    string          `json:"invoice_no"`
	ProductName  string          `json:"product_name"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Quantity     int64           `json:"quantity"`
	AddedBy      int64           `json:"added_by"`
	Edited       bool            `json:"edited"`
	CreatedAt    time.Time       `json:"created_at"`
}

func ToInventoryItemResponse(it *entity.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:           it.ID,
		InvoiceNo:    it.InvoiceNo,
		ProductName:  it.ProductName,
		CategoryID:   it.CategoryID,
		CategoryName: it.CategoryName,
		CostPrice:    it.CostPrice,
		Quantity:     it.Quantity,
		AddedBy:      it.AddedBy,
		Edited:       it.Edited,
		CreatedAt:    it.CreatedAt,
	}
}

func ToInventoryItemResponses(items []*entity.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ToInventoryItemResponse(it))
	}
	return out
}
