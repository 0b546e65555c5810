package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nisaworld/muebleria-api/internal/domain"
	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/repository"
	"github.com/nisaworld/muebleria-api/internal/domain/scope"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL
// (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleSelect = `
	SELECT id, invoice_no, customer_name, customer_address, customer_phone,
	       product_id, product_name, category_name, quantity, cost_price,
	       sale_price, payment_type, advance_amount, sold_by, edited, created_at
	FROM sales`

// Create persiste una venta y asigna su ID.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (invoice_no, customer_name, customer_address, customer_phone,
		                   product_id, product_name, category_name, quantity, cost_price,
		                   sale_price, payment_type, advance_amount, sold_by, edited, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		sale.InvoiceNo, sale.CustomerName, sale.CustomerAddress, sale.CustomerPhone,
		sale.ProductID, sale.ProductName, sale.CategoryName, sale.Quantity, sale.CostPrice,
		sale.SalePrice, sale.PaymentType, sale.AdvanceAmount, sale.SoldBy, sale.Edited, sale.CreatedAt,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx, saleSelect+` WHERE id = $1`, id).Scan(
		&s.ID, &s.InvoiceNo, &s.CustomerName, &s.CustomerAddress, &s.CustomerPhone,
		&s.ProductID, &s.ProductName, &s.CategoryName, &s.Quantity, &s.CostPrice,
		&s.SalePrice, &s.PaymentType, &s.AdvanceAmount, &s.SoldBy, &s.Edited, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List devuelve las ventas visibles bajo el predicado, más recientes primero.
func (r *SaleRepo) List(ctx context.Context, p scope.Predicate) ([]*entity.Sale, error) {
	query := saleSelect + ` ORDER BY created_at DESC, id DESC`
	var args []any
	if owner, ok := p.Owner(); ok {
		query = saleSelect + ` WHERE sold_by = $1 ORDER BY created_at DESC, id DESC`
		args = append(args, owner)
	}
	return r.list(ctx, query, args...)
}

// ListByInvoice devuelve las líneas de una factura en orden de creación.
func (r *SaleRepo) ListByInvoice(ctx context.Context, invoiceNo string, p scope.Predicate) ([]*entity.Sale, error) {
	query := saleSelect + ` WHERE invoice_no = $1 ORDER BY id`
	args := []any{invoiceNo}
	if owner, ok := p.Owner(); ok {
		query = saleSelect + ` WHERE invoice_no = $1 AND sold_by = $2 ORDER BY id`
		args = append(args, owner)
	}
	return r.list(ctx, query, args...)
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.InvoiceNo, &s.CustomerName, &s.CustomerAddress, &s.CustomerPhone,
			&s.ProductID, &s.ProductName, &s.CategoryName, &s.Quantity, &s.CostPrice,
			&s.SalePrice, &s.PaymentType, &s.AdvanceAmount, &s.SoldBy, &s.Edited, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
	}
	return sales, rows.Err()
}

// Update actualiza los campos editables de una venta.
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	query := `
		UPDATE sales
		SET customer_name = $2, customer_address = $3, customer_phone = $4,
		    sale_price = $5, payment_type = $6, advance_amount = $7, edited = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		sale.ID, sale.CustomerName, sale.CustomerAddress, sale.CustomerPhone,
		sale.SalePrice, sale.PaymentType, sale.AdvanceAmount, sale.Edited,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
