package entity

import "time"

// Category categoría de productos: tabla lookup administrada por admin,
// referenciada por FK desde inventario (no por nombre libre).
type Category struct {
	ID        int64
	Name      string // único
	CreatedAt time.Time
}
