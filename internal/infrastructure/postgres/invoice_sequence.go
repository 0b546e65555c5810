package postgres

import (
	"context"
	"fmt"

	"github.com/nisaworld/muebleria-api/internal/domain/repository"
)

var _ repository.InvoiceSequence = (*InvoiceSeq)(nil)

// InvoiceSeq genera números de factura desde la secuencia invoice_seq de la
// DB. nextval nunca repite valores, ni siquiera entre transacciones que
// luego hacen rollback, por lo que dos facturas jamás comparten número.
type InvoiceSeq struct {
	q Querier
}

// NewInvoiceSequence construye el generador. Pasar pool o tx (Querier).
func NewInvoiceSequence(q Querier) *InvoiceSeq {
	return &InvoiceSeq{q: q}
}

// Next devuelve el siguiente número con formato INV-000042.
func (s *InvoiceSeq) Next(ctx context.Context) (string, error) {
	var n int64
	if err := s.q.QueryRow(ctx, `SELECT nextval('invoice_seq')`).Scan(&n); err != nil {
		return "", fmt.Errorf("nextval invoice_seq: %w", err)
	}
	return fmt.Sprintf("INV-%06d", n), nil
}
