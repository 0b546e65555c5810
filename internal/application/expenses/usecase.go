// Package expenses contiene los casos de uso de gastos de materia prima.
package expenses

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nisaworld/muebleria-api/internal/application/dto"
	"github.com/nisaworld/muebleria-api/internal/domain"
	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/repository"
	"github.com/nisaworld/muebleria-api/internal/domain/scope"
)

// ExpenseUseCase casos de uso de gastos.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
	invoiceSeq  repository.InvoiceSequence
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(expenseRepo repository.ExpenseRepository, invoiceSeq repository.InvoiceSequence) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo, invoiceSeq: invoiceSeq}
}

// Create registra un gasto con su propio número de factura.
func (uc *ExpenseUseCase) Create(ctx context.Context, userID int64, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	created, err := uc.createExpenses(ctx, userID, []dto.CreateExpenseRequest{in})
	if err != nil {
		return nil, err
	}
	resp := dto.ToExpenseResponse(created[0])
	return &resp, nil
}

// BulkCreate registra varios gastos compartiendo número de factura.
func (uc *ExpenseUseCase) BulkCreate(ctx context.Context, userID int64, in dto.BulkCreateExpenseRequest) ([]dto.ExpenseResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	created, err := uc.createExpenses(ctx, userID, in.Items)
	if err != nil {
		return nil, err
	}
	return dto.ToExpenseResponses(created), nil
}

func (uc *ExpenseUseCase) createExpenses(ctx context.Context, userID int64, reqs []dto.CreateExpenseRequest) ([]*entity.Expense, error) {
	for i := range reqs {
		if err := validateExpenseLine(&reqs[i]); err != nil {
			return nil, err
		}
	}
	invoiceNo, err := uc.invoiceSeq.Next(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	expenses := make([]*entity.Expense, 0, len(reqs))
	for _, in := range reqs {
		expense := &entity.Expense{
			InvoiceNo:     invoiceNo,
			MaterialName:  strings.TrimSpace(in.MaterialName),
			VendorName:    strings.TrimSpace(in.VendorName),
			Amount:        in.Amount,
			PaymentMethod: entity.PaymentType(in.PaymentMethod),
			AdvanceAmount: in.AdvanceAmount,
			AddedBy:       userID,
			CreatedAt:     now,
		}
		if err := uc.expenseRepo.Create(ctx, expense); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

func validateExpenseLine(in *dto.CreateExpenseRequest) error {
	if strings.TrimSpace(in.MaterialName) == "" {
		return domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() {
		return domain.ErrInvalidInput
	}
	pm := entity.PaymentType(in.PaymentMethod)
	if !pm.Valid() {
		return domain.ErrInvalidInput
	}
	if pm == entity.PaymentFull {
		in.AdvanceAmount = decimal.Zero
		return nil
	}
	if in.AdvanceAmount.IsNegative() || in.AdvanceAmount.GreaterThan(in.Amount) {
		return domain.ErrInvalidInput
	}
	return nil
}

// List devuelve los gastos visibles bajo el alcance de la sesión.
func (uc *ExpenseUseCase) List(ctx context.Context, role entity.Role, userID int64) ([]dto.ExpenseResponse, error) {
	pred := scope.For(role, userID, scope.ResourceExpenses)
	expenses, err := uc.expenseRepo.List(ctx, pred)
	if err != nil {
		return nil, err
	}
	return dto.ToExpenseResponses(expenses), nil
}

// Update edita un gasto. Un staff solo los propios; el admin cualquiera.
// Toda edición marca el flag edited.
func (uc *ExpenseUseCase) Update(ctx context.Context, role entity.Role, userID, expenseID int64, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	if !scope.For(role, userID, scope.ResourceExpenses).Allows(expense.AddedBy) {
		return nil, domain.ErrForbidden
	}
	if in.MaterialName != nil {
		name := strings.TrimSpace(*in.MaterialName)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		expense.MaterialName = name
	}
	if in.VendorName != nil {
		expense.VendorName = strings.TrimSpace(*in.VendorName)
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		expense.Amount = *in.Amount
	}
	if in.PaymentMethod != nil {
		pm := entity.PaymentType(*in.PaymentMethod)
		if !pm.Valid() {
			return nil, domain.ErrInvalidInput
		}
		expense.PaymentMethod = pm
	}
	if in.AdvanceAmount != nil {
		expense.AdvanceAmount = *in.AdvanceAmount
	}
	if in.Used != nil {
		expense.Used = *in.Used
	}
	if expense.PaymentMethod == entity.PaymentFull {
		expense.AdvanceAmount = decimal.Zero
	} else if expense.AdvanceAmount.IsNegative() || expense.AdvanceAmount.GreaterThan(expense.Amount) {
		return nil, domain.ErrInvalidInput
	}
	expense.Edited = true
	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	resp := dto.ToExpenseResponse(expense)
	return &resp, nil
}

// Delete elimina un gasto. Un staff solo los propios; el admin cualquiera.
func (uc *ExpenseUseCase) Delete(ctx context.Context, role entity.Role, userID, expenseID int64) error {
	expense, err := uc.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	if !scope.For(role, userID, scope.ResourceExpenses).Allows(expense.AddedBy) {
		return domain.ErrForbidden
	}
	return uc.expenseRepo.Delete(ctx, expenseID)
}
