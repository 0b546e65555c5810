package inventory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nisaworld/muebleria-api/internal/application/dto"
	"github.com/nisaworld/muebleria-api/internal/application/inventory"
	"github.com/nisaworld/muebleria-api/internal/domain"
	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/repository"
	"github.com/nisaworld/muebleria-api/internal/domain/scope"
)

// fakeInvRepo repositorio de inventario en memoria.
type fakeInvRepo struct {
	items  map[int64]*entity.InventoryItem
	nextID int64
}

func newFakeInvRepo() *fakeInvRepo {
	return &fakeInvRepo{items: make(map[int64]*entity.InventoryItem)}
}

func (r *fakeInvRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	r.nextID++
	item.ID = r.nextID
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeInvRepo) GetByID(_ context.Context, id int64) (*entity.InventoryItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeInvRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeInvRepo) UpdateQuantity(_ context.Context, id int64, quantity int64) error {
	it, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Quantity = quantity
	return nil
}

func (r *fakeInvRepo) Update(_ context.Context, item *entity.InventoryItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeInvRepo) List(_ context.Context, p scope.Predicate) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range r.items {
		if p.Allows(it.AddedBy) {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeCategoryRepo catálogo en memoria.
type fakeCategoryRepo struct {
	categories map[int64]*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

type fakeSeq struct{ n int64 }

func (s *fakeSeq) Next(_ context.Context) (string, error) {
	s.n++
	return fmt.Sprintf("INV-%06d", s.n), nil
}

// fakeTxRunner entrega el mismo repo dentro de la "transacción". before
// emula otra transacción que confirma justo antes de que esta tome el lock
// de la fila.
type fakeTxRunner struct {
	inv    *fakeInvRepo
	before func()
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	invRepo repository.InventoryRepository,
	saleRepo repository.SaleRepository,
	seq repository.InvoiceSequence,
) error) error {
	if r.before != nil {
		r.before()
		r.before = nil
	}
	return fn(r.inv, nil, nil)
}

func newUC() (*inventory.InventoryUseCase, *fakeInvRepo, *fakeTxRunner) {
	invRepo := newFakeInvRepo()
	catRepo := &fakeCategoryRepo{categories: map[int64]*entity.Category{
		1: {ID: 1, Name: "Sillas"},
		2: {ID: 2, Name: "Mesas"},
	}}
	tx := &fakeTxRunner{inv: invRepo}
	return inventory.NewInventoryUseCase(invRepo, catRepo, &fakeSeq{}, tx), invRepo, tx
}

func itemReq(name string, categoryID, qty int64) dto.CreateInventoryItemRequest {
	return dto.CreateInventoryItemRequest{
		ProductName: name,
		CategoryID:  categoryID,
		CostPrice:   decimal.NewFromInt(100),
		Quantity:    qty,
	}
}

func TestCreate_CategoriaInexistenteRechazada(t *testing.T) {
	uc, repo, _ := newUC()

	_, err := uc.Create(context.Background(), 10, itemReq("Silla de roble", 99, 5))
	assert.ErrorIs(t, err, domain.ErrNotFound, "la categoría debe existir antes de persistir")
	assert.Empty(t, repo.items)
}

func TestCreate_AsignaFacturaYPropietario(t *testing.T) {
	uc, _, _ := newUC()

	out, err := uc.Create(context.Background(), 10, itemReq("Silla de roble", 1, 5))
	require.NoError(t, err)
	assert.Equal(t, "INV-000001", out.InvoiceNo)
	assert.Equal(t, int64(10), out.AddedBy)
	assert.False(t, out.Edited)
}

func TestBulkCreate_ValidaTodoAntesDePersistir(t *testing.T) {
	uc, repo, _ := newUC()

	// La segunda línea tiene categoría inexistente: ni la primera se persiste.
	_, err := uc.BulkCreate(context.Background(), 10, dto.BulkCreateInventoryRequest{
		Items: []dto.CreateInventoryItemRequest{
			itemReq("Silla de roble", 1, 5),
			itemReq("Mesa fantasma", 99, 2),
		},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.items)

	out, err := uc.BulkCreate(context.Background(), 10, dto.BulkCreateInventoryRequest{
		Items: []dto.CreateInventoryItemRequest{
			itemReq("Silla de roble", 1, 5),
			itemReq("Mesa de comedor", 2, 2),
		},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, out[0].InvoiceNo, out[1].InvoiceNo, "una compra comparte invoice_no")
}

func TestList_AlcancePorRol(t *testing.T) {
	uc, _, _ := newUC()

	_, err := uc.Create(context.Background(), 10, itemReq("Silla de roble", 1, 5))
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), 20, itemReq("Mesa de comedor", 2, 2))
	require.NoError(t, err)

	propios, err := uc.List(context.Background(), entity.RoleStaff, 10)
	require.NoError(t, err)
	require.Len(t, propios, 1)
	assert.Equal(t, int64(10), propios[0].AddedBy)

	todos, err := uc.List(context.Background(), entity.RoleAdmin, 1)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestUpdate_MarcaEditadoYValidaCategoria(t *testing.T) {
	uc, _, _ := newUC()

	out, err := uc.Create(context.Background(), 10, itemReq("Silla de roble", 1, 5))
	require.NoError(t, err)

	mala := int64(99)
	_, err = uc.Update(context.Background(), entity.RoleStaff, 10, out.ID, dto.UpdateInventoryItemRequest{
		CategoryID: &mala,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	buena := int64(2)
	updated, err := uc.Update(context.Background(), entity.RoleStaff, 10, out.ID, dto.UpdateInventoryItemRequest{
		CategoryID: &buena,
	})
	require.NoError(t, err)
	assert.True(t, updated.Edited)
	assert.Equal(t, "Mesas", updated.CategoryName)

	// Otro staff no puede editar el ítem.
	_, err = uc.Update(context.Background(), entity.RoleStaff, 20, out.ID, dto.UpdateInventoryItemRequest{
		CategoryID: &buena,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Una edición que no toca quantity no debe pisar un débito concurrente: la
// lectura ocurre bajo el lock de la fila, después de que la venta confirmó.
func TestUpdate_NoPisaUnDebitoConcurrente(t *testing.T) {
	uc, repo, tx := newUC()

	out, err := uc.Create(context.Background(), 10, itemReq("Silla de roble", 1, 5))
	require.NoError(t, err)

	// Una venta debita 5 → 2 justo antes de que la edición tome el lock.
	tx.before = func() {
		require.NoError(t, repo.UpdateQuantity(context.Background(), out.ID, 2))
	}

	nuevoNombre := "Silla de roble barnizada"
	updated, err := uc.Update(context.Background(), entity.RoleStaff, 10, out.ID, dto.UpdateInventoryItemRequest{
		ProductName: &nuevoNombre,
	})
	require.NoError(t, err)

	assert.Equal(t, nuevoNombre, updated.ProductName)
	assert.Equal(t, int64(2), updated.Quantity, "la edición de nombre no debe resucitar unidades vendidas")
	assert.Equal(t, int64(2), repo.items[out.ID].Quantity)
}
