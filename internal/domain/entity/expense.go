package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense compra de materia prima u otro gasto del negocio.
type Expense struct {
	ID            int64
	InvoiceNo     string
	MaterialName  string
	VendorName    string
	Amount        decimal.Decimal
	PaymentMethod PaymentType
	AdvanceAmount decimal.Decimal
	Used          bool  // materia prima ya consumida en producción
	AddedBy       int64 // usuario propietario (campo de scope para staff)
	Edited        bool
	CreatedAt     time.Time
}
