package repository

import "context"

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Todo lo que fn escribe se confirma o se
// revierte junto; combinado con GetByIDForUpdate serializa las escrituras
// concurrentes sobre una misma fila de inventario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo InventoryRepository,
		saleRepo SaleRepository,
		seq InvoiceSequence,
	) error) error
}
