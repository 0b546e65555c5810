// Package auth contiene los casos de uso de autenticación y gestión de
// usuarios: login por rol, alta de staff, alta por admin y cambio de clave.
package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nisaworld/muebleria-api/internal/application/dto"
	"github.com/nisaworld/muebleria-api/internal/domain"
	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/repository"
	"github.com/nisaworld/muebleria-api/pkg/jwt"
)

const minPasswordLen = 8

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// AdminLogin autentica contra el endpoint de admin. Un staff con credenciales
// válidas recibe el mismo error que una credencial incorrecta: el endpoint no
// revela si el email existe ni con qué rol.
func (uc *AuthUseCase) AdminLogin(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	return uc.login(ctx, in, entity.RoleAdmin)
}

// StaffLogin autentica contra el endpoint de staff.
func (uc *AuthUseCase) StaffLogin(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	return uc.login(ctx, in, entity.RoleStaff)
}

func (uc *AuthUseCase) login(ctx context.Context, in dto.LoginRequest, role entity.Role) (*dto.LoginResponse, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.userRepo.GetByEmailAndRole(ctx, email, role)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Comparación dummy para igualar el tiempo de respuesta cuando el
		// email no existe.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$7EqJtq98hPqEX7fNZaFWoO"), []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.ToUserResponse(user),
	}, nil
}

// StaffSignup alta por autoservicio: siempre crea con rol staff, el rol no
// viene del request. Hashea la contraseña con bcrypt antes de persistir.
func (uc *AuthUseCase) StaffSignup(ctx context.Context, in dto.SignupRequest) (*dto.UserResponse, error) {
	return uc.createUser(ctx, in.Name, in.Email, in.Password, entity.RoleStaff)
}

// CreateUser alta de usuario con rol explícito. Solo un admin puede invocarla.
func (uc *AuthUseCase) CreateUser(ctx context.Context, requesterRole entity.Role, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if requesterRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	role := entity.Role(in.Role)
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return uc.createUser(ctx, in.Name, in.Email, in.Password, role)
}

func (uc *AuthUseCase) createUser(ctx context.Context, name, email, password string, role entity.Role) (*dto.UserResponse, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidInput
	}
	if len(password) < minPasswordLen {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// ChangePassword verifica la contraseña actual y persiste el hash de la nueva.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID int64, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < minPasswordLen {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(ctx, userID, string(hash))
}

// Me devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// ListUsers lista todos los usuarios (solo admin, validado en el router).
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponses(users), nil
}

// GetUser obtiene un usuario por id.
func (uc *AuthUseCase) GetUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
