package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	"github.com/nisaworld/muebleria-api/internal/domain/scope"
)

func TestFor_AdminVeTodo(t *testing.T) {
	for _, res := range []scope.Resource{scope.ResourceInventory, scope.ResourceSales, scope.ResourceExpenses} {
		p := scope.For(entity.RoleAdmin, 7, res)
		_, filtered := p.Owner()
		assert.False(t, filtered, "admin no debe tener filtro en %s", res)
		assert.True(t, p.Allows(1))
		assert.True(t, p.Allows(999))
	}
}

func TestFor_StaffSoloLoPropio(t *testing.T) {
	for _, res := range []scope.Resource{scope.ResourceInventory, scope.ResourceSales, scope.ResourceExpenses} {
		p := scope.For(entity.RoleStaff, 7, res)
		owner, filtered := p.Owner()
		assert.True(t, filtered, "staff debe tener filtro en %s", res)
		assert.Equal(t, int64(7), owner)
		assert.True(t, p.Allows(7))
		assert.False(t, p.Allows(8), "staff no debe ver filas de otro usuario")
	}
}

// El resolutor es puro: la misma entrada produce siempre el mismo predicado.
func TestFor_Deterministico(t *testing.T) {
	a := scope.For(entity.RoleStaff, 3, scope.ResourceSales)
	b := scope.For(entity.RoleStaff, 3, scope.ResourceSales)
	assert.Equal(t, a, b)
}
