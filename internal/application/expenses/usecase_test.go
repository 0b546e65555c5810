package expenses_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nisaworld/muebleria-api/internal/application/dto"
	"github.com/nisaworld/muebleria-api/internal/application/expenses"
	"github.com/nisaworld/muebleria-api/internal/domain"
	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/scope"
)

// fakeExpenseRepo repositorio de gastos en memoria.
type fakeExpenseRepo struct {
	expenses map[int64]*entity.Expense
	nextID   int64
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[int64]*entity.Expense)}
}

func (r *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	r.nextID++
	expense.ID = r.nextID
	cp := *expense
	r.expenses[expense.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) GetByID(_ context.Context, id int64) (*entity.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeExpenseRepo) List(_ context.Context, p scope.Predicate) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range r.expenses {
		if p.Allows(e.AddedBy) {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, expense *entity.Expense) error {
	if _, ok := r.expenses[expense.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *expense
	r.expenses[expense.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.expenses[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.expenses, id)
	return nil
}

// fakeSeq secuencia de facturas en memoria.
type fakeSeq struct{ n int64 }

func (s *fakeSeq) Next(_ context.Context) (string, error) {
	s.n++
	return fmt.Sprintf("INV-%06d", s.n), nil
}

func expenseReq(material string, amount int64) dto.CreateExpenseRequest {
	return dto.CreateExpenseRequest{
		MaterialName:  material,
		VendorName:    "Maderas del Sur",
		Amount:        decimal.NewFromInt(amount),
		PaymentMethod: "full",
	}
}

func TestCreate_AsignaFacturaYPropietario(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := expenses.NewExpenseUseCase(repo, &fakeSeq{})

	out, err := uc.Create(context.Background(), 10, expenseReq("Tablones de pino", 800))
	require.NoError(t, err)
	assert.Equal(t, "INV-000001", out.InvoiceNo)
	assert.Equal(t, int64(10), out.AddedBy)
	assert.False(t, out.Edited)
}

func TestBulkCreate_CompartenFactura(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := expenses.NewExpenseUseCase(repo, &fakeSeq{})

	out, err := uc.BulkCreate(context.Background(), 10, dto.BulkCreateExpenseRequest{
		Items: []dto.CreateExpenseRequest{
			expenseReq("Tablones de pino", 800),
			expenseReq("Barniz", 120),
		},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, out[0].InvoiceNo, out[1].InvoiceNo)
}

func TestCreate_AbonoSoloConPagoParcial(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := expenses.NewExpenseUseCase(repo, &fakeSeq{})

	in := expenseReq("Tablones de pino", 800)
	in.PaymentMethod = "advance"
	in.AdvanceAmount = decimal.NewFromInt(900) // mayor al monto
	_, err := uc.Create(context.Background(), 10, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.AdvanceAmount = decimal.NewFromInt(300)
	out, err := uc.Create(context.Background(), 10, in)
	require.NoError(t, err)
	assert.True(t, out.Pending.Equal(decimal.NewFromInt(500)), "pendiente = monto - abono")
}

// Cada staff ve solo sus gastos; el admin ve los de todos.
func TestList_AislamientoEntreStaff(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := expenses.NewExpenseUseCase(repo, &fakeSeq{})

	staffA, staffB := int64(10), int64(20)
	_, err := uc.Create(context.Background(), staffA, expenseReq("Tablones de pino", 800))
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), staffB, expenseReq("Bisagras", 60))
	require.NoError(t, err)

	deA, err := uc.List(context.Background(), entity.RoleStaff, staffA)
	require.NoError(t, err)
	require.Len(t, deA, 1)
	assert.Equal(t, staffA, deA[0].AddedBy)

	deB, err := uc.List(context.Background(), entity.RoleStaff, staffB)
	require.NoError(t, err)
	require.Len(t, deB, 1)
	assert.Equal(t, staffB, deB[0].AddedBy)

	todos, err := uc.List(context.Background(), entity.RoleAdmin, int64(1))
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestUpdate_MarcaEditadoYRespetaAlcance(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := expenses.NewExpenseUseCase(repo, &fakeSeq{})

	out, err := uc.Create(context.Background(), 10, expenseReq("Tablones de pino", 800))
	require.NoError(t, err)

	nuevoMonto := decimal.NewFromInt(850)
	updated, err := uc.Update(context.Background(), entity.RoleStaff, 10, out.ID, dto.UpdateExpenseRequest{
		Amount: &nuevoMonto,
	})
	require.NoError(t, err)
	assert.True(t, updated.Edited, "toda edición marca el flag edited")
	assert.True(t, updated.Amount.Equal(nuevoMonto))

	// Otro staff no puede editar el gasto.
	_, err = uc.Update(context.Background(), entity.RoleStaff, 20, out.ID, dto.UpdateExpenseRequest{
		Amount: &nuevoMonto,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDelete_RespetaAlcance(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := expenses.NewExpenseUseCase(repo, &fakeSeq{})

	out, err := uc.Create(context.Background(), 10, expenseReq("Tablones de pino", 800))
	require.NoError(t, err)

	// Otro staff no puede borrar el gasto; el dueño sí.
	err = uc.Delete(context.Background(), entity.RoleStaff, 20, out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	require.Len(t, repo.expenses, 1)

	err = uc.Delete(context.Background(), entity.RoleStaff, 10, out.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.expenses)

	// Borrar un gasto inexistente responde not found.
	err = uc.Delete(context.Background(), entity.RoleAdmin, 1, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
