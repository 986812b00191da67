package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vetstock/vetstock-api/internal/application/dto"
	"github.com/vetstock/vetstock-api/internal/application/usecase"
	"github.com/vetstock/vetstock-api/internal/domain"
)

// PracticeHandler consultas de prácticas (solo lectura).
type PracticeHandler struct {
	uc *usecase.PracticeUseCase
}

// NewPracticeHandler construye el handler.
func NewPracticeHandler(uc *usecase.PracticeUseCase) *PracticeHandler {
	return &PracticeHandler{uc: uc}
}

// List godoc
// @Summary      Prácticas de un cliente
// @Tags         practices
// @Security     Bearer
// @Produce      json
// @Param        clientId  query  string  true  "ID del cliente"
// @Success      200  {object}  dto.PracticeListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/practices [get]
func (h *PracticeHandler) List(c *fiber.Ctx) error {
	clientID := c.Query("clientId")
	if clientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "clientId es requerido"})
	}
	practices, err := h.uc.ListByClient(c.Context(), GetClientID(c), clientID)
	if err != nil {
		return practiceError(c, err)
	}
	return c.JSON(dto.PracticeListResponse{Message: "prácticas obtenidas", Practices: practices})
}

// Get godoc
// @Summary      Una práctica por ID
// @Tags         practices
// @Security     Bearer
// @Produce      json
// @Param        practiceId  query  string  true  "ID de la práctica"
// @Success      200  {object}  dto.PracticeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/practice [get]
func (h *PracticeHandler) Get(c *fiber.Ctx) error {
	practiceID := c.Query("practiceId")
	if practiceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "practiceId es requerido"})
	}
	practice, err := h.uc.GetByID(c.Context(), GetClientID(c), practiceID)
	if err != nil {
		return practiceError(c, err)
	}
	return c.JSON(fiber.Map{"practice": practice})
}

func practiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "práctica no encontrada"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
