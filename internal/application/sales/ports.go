package sales

import (
	"github.com/nisaworld/muebleria-api/internal/domain/entity"
)

// InvoicePDFGenerator renderiza la factura de una venta (una o varias líneas
// del mismo invoice_no) como PDF.
type InvoicePDFGenerator interface {
	Generate(invoiceNo string, lines []*entity.Sale) ([]byte, error)
}
