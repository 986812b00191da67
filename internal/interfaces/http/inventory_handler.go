package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vetstock/vetstock-api/internal/application/dto"
	"github.com/vetstock/vetstock-api/internal/application/inventory"
	"github.com/vetstock/vetstock-api/internal/domain"
	"github.com/vetstock/vetstock-api/internal/domain/entity"
	"github.com/vetstock/vetstock-api/pkg/validator"
)

// InventoryHandler maneja las peticiones HTTP de stock por práctica (protegido).
type InventoryHandler struct {
	reconcile *inventory.ReconcileUseCase
	query     *inventory.StockQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(reconcile *inventory.ReconcileUseCase, query *inventory.StockQueryUseCase) *InventoryHandler {
	return &InventoryHandler{reconcile: reconcile, query: query}
}

// Add godoc
// @Summary      Entrada de stock (lote de líneas)
// @Description  Concilia cada línea en orden: crea el registro del lote si no
//               existe o suma la cantidad si existe. Las líneas fallidas no
//               abortan a las demás; cada una reporta su resultado.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockBatchRequest  true  "practiceId y lista de productos"
// @Success      200   {object}  dto.StockBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/add [post]
func (h *InventoryHandler) Add(c *fiber.Ctx) error {
	return h.processBatch(c, inventory.DirectionIncrease)
}

// Remove godoc
// @Summary      Salida de stock (lote de líneas)
// @Description  Resta la cantidad de cada línea; si el registro queda en cero
//               o menos se elimina. Consumir un lote nunca recibido falla con
//               STOCK_NOT_FOUND en esa línea.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockBatchRequest  true  "practiceId y lista de productos"
// @Success      200   {object}  dto.StockBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/remove [post]
func (h *InventoryHandler) Remove(c *fiber.Ctx) error {
	return h.processBatch(c, inventory.DirectionDecrease)
}

func (h *InventoryHandler) processBatch(c *fiber.Ctx, direction inventory.Direction) error {
	clientID := GetClientID(c)
	userID := GetUserID(c)
	if clientID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.StockBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := validator.ValidateStruct(in); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "campo '" + details[0].FailedField + "' falló la regla '" + details[0].Tag + "'",
		})
	}
	out, err := h.reconcile.ProcessBatchFromRequest(c.Context(), clientID, userID, direction, in)
	if err != nil {
		return batchError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Stock actual de una práctica
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        practiceId  query  string  true  "ID de la práctica"
// @Success      200  {object}  dto.StockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	practiceID := c.Query("practiceId")
	if practiceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "practiceId es requerido"})
	}
	records, err := h.query.List(c.Context(), GetClientID(c), practiceID)
	if err != nil {
		return batchError(c, err)
	}
	return c.JSON(toStockListResponse(records))
}

// GetProduct godoc
// @Summary      Stock de un producto y lote exactos en una práctica
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        practiceId     query  string  true  "ID de la práctica"
// @Param        productNumber  query  string  true  "Número de producto"
// @Param        batchNumber    query  string  true  "Número de lote"
// @Success      200  {object}  dto.StockRecordResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/product [get]
func (h *InventoryHandler) GetProduct(c *fiber.Ctx) error {
	practiceID := c.Query("practiceId")
	productNumber := c.Query("productNumber")
	batchNumber := c.Query("batchNumber")
	if practiceID == "" || productNumber == "" || batchNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "practiceId, productNumber y batchNumber son requeridos"})
	}
	record, err := h.query.GetByProductAndBatch(c.Context(), GetClientID(c), practiceID, productNumber, batchNumber)
	if err != nil {
		return batchError(c, err)
	}
	return c.JSON(fiber.Map{"stock": toStockRecordResponse(record)})
}

// batchError mapea errores de dominio del motor a respuestas HTTP.
func batchError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrStockNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STOCK_NOT_FOUND", Message: "registro de stock no encontrado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "práctica no encontrada"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toStockListResponse(records []*entity.StockWithProduct) dto.StockListResponse {
	out := dto.StockListResponse{Inventory: make([]dto.StockRecordResponse, 0, len(records))}
	for _, r := range records {
		out.Inventory = append(out.Inventory, toStockRecordResponse(r))
	}
	return out
}

func toStockRecordResponse(r *entity.StockWithProduct) dto.StockRecordResponse {
	return dto.StockRecordResponse{
		ID:            r.ID,
		PracticeID:    r.PracticeID,
		ProductID:     r.ProductID,
		ProductNumber: r.ProductNumber,
		PrimaryName:   r.PrimaryName,
		SecondaryName: r.SecondaryName,
		NoBarcode:     r.NoBarcode,
		BatchNumber:   r.BatchNumber,
		Quantity:      r.Quantity,
		ExpiryDate:    r.ExpiryDate,
		UpdatedAt:     r.UpdatedAt,
	}
}
