package entity

import "time"

// Role es el rol de un usuario. Enum cerrado: toda decisión de acceso
// se toma contra estas constantes, nunca contra enteros crudos.
type Role string

// Roles válidos para User.
const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Valid reporta si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff:
		return true
	}
	return false
}

// User representa un usuario del sistema (administrador o personal).
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca texto plano después de persistir
	Role         Role
	CreatedAt    time.Time
}
