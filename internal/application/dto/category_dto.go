package dto

import (
	"time"

	"github.com/nisaworld/muebleria-api/internal/domain/entity"
)

// CreateCategoryRequest alta de categoría (solo admin).
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse categoría serializada.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func ToCategoryResponses(categories []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryResponse(c))
	}
	return out
}
