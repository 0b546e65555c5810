package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem producto o materia prima en inventario.
// Invariante: Quantity >= 0 siempre (también CHECK en la DB).
type InventoryItem struct {
	ID           int64
	InvoiceNo    string // factura de compra compartida por los ítems de un alta masiva
	ProductName  string
	CategoryID   int64
	CategoryName string // denormalizado por el repositorio (JOIN), no se persiste aquí
	CostPrice    decimal.Decimal
	Quantity     int64
	AddedBy      int64 // usuario propietario (campo de scope para staff)
	Edited       bool  // true tras cualquier actualización posterior a la creación
	CreatedAt    time.Time
}
