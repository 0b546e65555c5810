package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/nisaworld/muebleria-api/internal/application/dto"
	"github.com/nisaworld/muebleria-api/internal/application/sales"
	"github.com/nisaworld/muebleria-api/internal/domain"
	"github.com/nisaworld/muebleria-api/pkg/logger"
)

// SalesHandler maneja las peticiones HTTP del registro de ventas.
type SalesHandler struct {
	uc  *sales.SalesUseCase
	log *logger.Logger
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.SalesUseCase, log *logger.Logger) *SalesHandler {
	return &SalesHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar venta (débito de inventario atómico)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Record(c.Context(), GetUserID(c), in)
	if err != nil {
		return salesError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// BulkCreate godoc
// @Summary      Registrar varias líneas de venta en una factura
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkCreateSaleRequest  true  "Líneas de la venta"
// @Success      201   {array}   dto.SaleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/bulk [post]
func (h *SalesHandler) BulkCreate(c *fiber.Ctx) error {
	var in dto.BulkCreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordBulk(c.Context(), GetUserID(c), in)
	if err != nil {
		return salesError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas (alcance según rol)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetRole(c), GetUserID(c))
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar venta registrada (no toca inventario)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID de la venta"
// @Param        body  body  dto.UpdateSaleRequest true  "Campos a editar"
// @Success      200   {object}  dto.SaleResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [put]
func (h *SalesHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetRole(c), GetUserID(c), id, in)
	if err != nil {
		return salesError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar venta, con restauración opcional de inventario
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id                 path   int   true   "ID de la venta"
// @Param        restore_inventory  query  bool  false  "Devolver la cantidad al inventario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SalesHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	restore := c.QueryBool("restore_inventory", false)
	if err := h.uc.Delete(c.Context(), GetRole(c), GetUserID(c), id, restore); err != nil {
		return salesError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "venta eliminada"})
}

// InvoicePDF godoc
// @Summary      Descargar la factura de una venta en PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        invoice_no  path  string  true  "Número de factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/invoice/{invoice_no}/pdf [get]
func (h *SalesHandler) InvoicePDF(c *fiber.Ctx) error {
	invoiceNo := c.Params("invoice_no")
	pdfBytes, err := h.uc.InvoicePDF(c.Context(), GetRole(c), GetUserID(c), invoiceNo)
	if err != nil {
		return salesError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, invoiceNo))
	return c.Send(pdfBytes)
}

// salesError mapea los sentinelas del dominio a respuestas HTTP.
func salesError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: fmt.Sprintf("stock insuficiente para el producto %d: disponible %d, solicitado %d", stockErr.ProductID, stockErr.Available, stockErr.Requested),
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no puedes operar sobre ventas de otro usuario"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos: revisa customer_name, quantity, sale_price y payment_type"})
	}
	return internalError(c, log, err)
}
