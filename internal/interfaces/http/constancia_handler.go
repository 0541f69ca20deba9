package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/vecindo/registro-api/internal/application/dto"
	"github.com/vecindo/registro-api/internal/application/registro"
	"github.com/vecindo/registro-api/internal/domain"
)

// ConstanciaHandler descarga de la constancia de registro en PDF.
type ConstanciaHandler struct {
	uc *registro.ConstanciaUseCase
}

// NewConstanciaHandler construye el handler de la constancia.
func NewConstanciaHandler(uc *registro.ConstanciaUseCase) *ConstanciaHandler {
	return &ConstanciaHandler{uc: uc}
}

// Descargar godoc
// @Summary      Descarga la constancia de registro (PDF)
// @Tags         registro
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/registro/constancia [get]
func (h *ConstanciaHandler) Descargar(c *fiber.Ctx) error {
	pdf, err := h.uc.Generate(c.Context(), GetAccountID(c))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		}
		if errors.Is(err, domain.ErrRegistroIncompleto) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REGISTRO_INCOMPLETO", Message: "completa el registro para descargar la constancia"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="constancia-registro.pdf"`)
	return c.Send(pdf)
}
