package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nisaworld/muebleria-api/internal/application/categories"
	"github.com/nisaworld/muebleria-api/internal/application/dto"
	"github.com/nisaworld/muebleria-api/internal/domain/entity"
	apphttp "github.com/nisaworld/muebleria-api/internal/interfaces/http"
	"github.com/nisaworld/muebleria-api/pkg/logger"
)

// brokenCategoryRepo simula un fallo de infraestructura: todas las
// operaciones devuelven un error con detalle interno del driver.
type brokenCategoryRepo struct{}

var errDriver = errors.New(`list categories: ERROR: relation "categories" does not exist (SQLSTATE 42P01)`)

func (r *brokenCategoryRepo) Create(_ context.Context, _ *entity.Category) error {
	return errDriver
}

func (r *brokenCategoryRepo) GetByID(_ context.Context, _ int64) (*entity.Category, error) {
	return nil, errDriver
}

func (r *brokenCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	return nil, errDriver
}

func (r *brokenCategoryRepo) Delete(_ context.Context, _ int64) error {
	return errDriver
}

// Un fallo de infraestructura responde 500 con un cuerpo genérico: el
// detalle del driver (SQL, tablas, SQLSTATE) nunca llega al cliente.
func TestHandler_ErrorInterno_NoFiltraDetalleDelDriver(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	handler := apphttp.NewCategoryHandler(categories.NewCategoryUseCase(&brokenCategoryRepo{}), log)

	app := fiber.New()
	app.Get("/categories", handler.List)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno del servidor", body.Message)
	assert.NotContains(t, body.Message, "SQLSTATE", "el detalle del driver no debe llegar al cliente")
	assert.NotContains(t, body.Message, "categories", "el esquema de la BD no debe llegar al cliente")
}
