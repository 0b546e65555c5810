// Package scope implementa la resolución de visibilidad de filas por rol.
//
// Regla: admin ve todas las filas; staff solo las filas cuyo campo propietario
// (added_by / sold_by) coincide con su user id. El predicado es puro (sin
// efectos) y se aplica de forma idéntica en todo listado, lectura y agregado:
// el dashboard y los listados nunca pueden divergir en el conjunto visible
// para una misma sesión.
package scope

import "github.com/nisaworld/muebleria-api/internal/domain/entity"

// Resource tipo de recurso sobre el que se resuelve la visibilidad.
type Resource string

const (
	ResourceInventory Resource = "inventory"
	ResourceSales     Resource = "sales"
	ResourceExpenses  Resource = "expenses"
)

// Predicate filtro de visibilidad de filas derivado de la sesión.
// El valor cero no es válido; construir siempre con All u OwnedBy.
type Predicate struct {
	all     bool
	ownerID int64
}

// All predicado sin filtro: toda fila es visible.
func All() Predicate { return Predicate{all: true} }

// OwnedBy predicado que solo deja pasar filas del propietario dado.
func OwnedBy(userID int64) Predicate { return Predicate{ownerID: userID} }

// Owner devuelve el propietario exigido y ok=false si el predicado no filtra.
func (p Predicate) Owner() (int64, bool) {
	if p.all {
		return 0, false
	}
	return p.ownerID, true
}

// Allows reporta si una fila con el propietario dado es visible bajo el predicado.
func (p Predicate) Allows(ownerID int64) bool {
	return p.all || p.ownerID == ownerID
}

// For resuelve el predicado de visibilidad para una sesión y un recurso.
// Hoy todos los recursos comparten la misma regla; el parámetro mantiene el
// contrato por-recurso para cuando alguno la necesite distinta.
func For(role entity.Role, userID int64, _ Resource) Predicate {
	if role == entity.RoleAdmin {
		return All()
	}
	return OwnedBy(userID)
}
