package repository

import (
	"context"

	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/scope"
)

// SaleRepository puerto de persistencia para ventas.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	List(ctx context.Context, p scope.Predicate) ([]*entity.Sale, error)
	// ListByInvoice devuelve las ventas de una factura en orden de creación,
	// respetando el predicado de visibilidad.
	ListByInvoice(ctx context.Context, invoiceNo string, p scope.Predicate) ([]*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id int64) error
}

// InvoiceSequence genera números de factura "INV-%06d" desde una secuencia
// compartida de la DB (nextval), nunca derivados del conteo de filas.
type InvoiceSequence interface {
	Next(ctx context.Context) (string, error)
}
