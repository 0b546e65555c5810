package pdf_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/infrastructure/pdf"
)

func saleLine(product string, qty int64, price int64, pt entity.PaymentType, advance int64) *entity.Sale {
	return &entity.Sale{
		InvoiceNo:     "INV-000042",
		CustomerName:  "Carlos Mejía",
		CustomerPhone: "3001234567",
		ProductName:   product,
		CategoryName:  "Sillas",
		Quantity:      qty,
		SalePrice:     decimal.NewFromInt(price),
		PaymentType:   pt,
		AdvanceAmount: decimal.NewFromInt(advance),
		CreatedAt:     time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}
}

// Factura con líneas de pago completo y con abono: debe renderizar sin error.
func TestGenerate_FacturaMixta(t *testing.T) {
	gen := pdf.NewMarotoInvoiceGenerator("Muebles Nisa")
	lines := []*entity.Sale{
		saleLine("Silla de roble", 2, 250000, entity.PaymentFull, 0),
		saleLine("Mesa de centro", 1, 800000, entity.PaymentAdvance, 300000),
	}

	bytes, err := gen.Generate("INV-000042", lines)
	require.NoError(t, err)
	assert.NotEmpty(t, bytes)
	assert.Equal(t, "%PDF", string(bytes[:4]), "debe producir un documento PDF válido")
}

func TestGenerate_SinLineas_RetornaError(t *testing.T) {
	gen := pdf.NewMarotoInvoiceGenerator("Muebles Nisa")
	_, err := gen.Generate("INV-000001", nil)
	assert.Error(t, err)
}
