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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre
// PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventorySelect = `
	SELECT i.id, i.invoice_no, i.product_name, i.category_id, c.name,
	       i.cost_price, i.quantity, i.added_by, i.edited, i.created_at
	FROM inventory i
	JOIN categories c ON c.id = i.category_id`

// Create persiste un ítem nuevo y asigna su ID.
func (r *InventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory (invoice_no, product_name, category_id, cost_price, quantity, added_by, edited, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		item.InvoiceNo, item.ProductName, item.CategoryID, item.CostPrice,
		item.Quantity, item.AddedBy, item.Edited, item.CreatedAt,
	).Scan(&item.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // categoría inexistente
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	// Resolver el nombre de categoría para la respuesta.
	if item.CategoryName == "" {
		_ = r.q.QueryRow(ctx, `SELECT name FROM categories WHERE id = $1`, item.CategoryID).
			Scan(&item.CategoryName)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	return r.getOne(ctx, inventorySelect+` WHERE i.id = $1`, id)
}

// GetByIDForUpdate obtiene un ítem bloqueando su fila. Solo dentro de una tx.
func (r *InventoryRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	// FOR UPDATE OF i: el lock es sobre la fila de inventario, no la categoría.
	return r.getOne(ctx, inventorySelect+` WHERE i.id = $1 FOR UPDATE OF i`, id)
}

func (r *InventoryRepo) getOne(ctx context.Context, query string, id int64) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := r.q.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.InvoiceNo, &it.ProductName, &it.CategoryID, &it.CategoryName,
		&it.CostPrice, &it.Quantity, &it.AddedBy, &it.Edited, &it.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// UpdateQuantity escribe la nueva cantidad de un ítem.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, id int64, quantity int64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE inventory SET quantity = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Update actualiza los campos editables de un ítem.
func (r *InventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		UPDATE inventory
		SET product_name = $2, category_id = $3, cost_price = $4, quantity = $5, edited = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		item.ID, item.ProductName, item.CategoryID, item.CostPrice, item.Quantity, item.Edited,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los ítems visibles bajo el predicado, más recientes primero.
func (r *InventoryRepo) List(ctx context.Context, p scope.Predicate) ([]*entity.InventoryItem, error) {
	query := inventorySelect + ` ORDER BY i.created_at DESC, i.id DESC`
	var args []any
	if owner, ok := p.Owner(); ok {
		query = inventorySelect + ` WHERE i.added_by = $1 ORDER BY i.created_at DESC, i.id DESC`
		args = append(args, owner)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var items []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.InvoiceNo, &it.ProductName, &it.CategoryID, &it.CategoryName,
			&it.CostPrice, &it.Quantity, &it.AddedBy, &it.Edited, &it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
