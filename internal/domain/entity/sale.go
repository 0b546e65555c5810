package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType forma de pago de una venta o gasto. Enum cerrado.
type PaymentType string

const (
	PaymentFull    PaymentType = "full"    // pago completo
	PaymentAdvance PaymentType = "advance" // anticipo, saldo pendiente
)

// Valid reporta si la forma de pago es conocida.
func (p PaymentType) Valid() bool {
	switch p {
	case PaymentFull, PaymentAdvance:
		return true
	}
	return false
}

// Sale registra la venta de un producto del inventario.
// ProductName/CategoryName son snapshot al momento de la venta (sobreviven a
// ediciones del producto); ProductID queda como referencia de trazabilidad.
// Invariante: Quantity <= stock del producto al momento de la venta, validado
// atómicamente dentro de la transacción que descuenta el inventario.
type Sale struct {
	ID              int64
	InvoiceNo       string // "INV-000123", secuencia compartida
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	ProductID       int64
	ProductName     string
	CategoryName    string
	Quantity        int64
	CostPrice       decimal.Decimal // snapshot del costo del producto
	SalePrice       decimal.Decimal
	PaymentType     PaymentType
	AdvanceAmount   decimal.Decimal
	SoldBy          int64 // usuario propietario (campo de scope para staff)
	Edited          bool
	CreatedAt       time.Time
}
