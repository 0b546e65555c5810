// Package categories contiene los casos de uso del catálogo de categorías.
package categories

import (
	"context"
	"strings"
	"time"

	"github.com/nisaworld/muebleria-api/internal/application/dto"
	"github.com/nisaworld/muebleria-api/internal/domain"
	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/repository"
)

// CategoryUseCase casos de uso del catálogo de categorías.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// Create da de alta una categoría. Retorna domain.ErrDuplicate si el nombre
// ya existe.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{Name: name, CreatedAt: time.Now()}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

// List devuelve todas las categorías. El catálogo es compartido: no se
// aplica alcance por rol.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToCategoryResponses(categories), nil
}

// Get obtiene una categoría por id.
func (uc *CategoryUseCase) Get(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

// Delete elimina una categoría por id.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	return uc.categoryRepo.Delete(ctx, id)
}
