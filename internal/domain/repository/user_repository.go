package repository

import (
	"context"

	"github.com/nisaworld/muebleria-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario y asigna su ID. Retorna
	// domain.ErrEmailAlreadyExists si el email ya existe.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByEmailAndRole busca por email restringiendo al rol dado (login admin).
	GetByEmailAndRole(ctx context.Context, email string, role entity.Role) (*entity.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	List(ctx context.Context) ([]*entity.User, error)
}
