package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vecindo/registro-api/internal/application/dto"
	"github.com/vecindo/registro-api/internal/domain/repository"
)

// DivisionHandler expone el catálogo DPA para la selección dependiente
// provincia → cantón → parroquia del paso de dirección.
type DivisionHandler struct {
	repo repository.DivisionRepository
}

// NewDivisionHandler construye el handler del catálogo de divisiones.
func NewDivisionHandler(repo repository.DivisionRepository) *DivisionHandler {
	return &DivisionHandler{repo: repo}
}

// Provincias godoc
// @Summary      Lista de provincias
// @Tags         divisiones
// @Produce      json
// @Success      200  {array}  dto.ProvinciaResponse
// @Router       /api/divisiones/provincias [get]
func (h *DivisionHandler) Provincias(c *fiber.Ctx) error {
	provincias, err := h.repo.ListProvincias()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ProvinciaResponse, 0, len(provincias))
	for _, p := range provincias {
		out = append(out, dto.ProvinciaResponse{ID: p.ID, Nombre: p.Nombre})
	}
	return c.JSON(out)
}

// Cantones godoc
// @Summary      Cantones de una provincia
// @Tags         divisiones
// @Produce      json
// @Param        id  path  string  true  "ID de provincia (código DPA)"
// @Success      200  {array}  dto.CantonResponse
// @Router       /api/divisiones/provincias/{id}/cantones [get]
func (h *DivisionHandler) Cantones(c *fiber.Ctx) error {
	cantones, err := h.repo.ListCantones(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.CantonResponse, 0, len(cantones))
	for _, ca := range cantones {
		out = append(out, dto.CantonResponse{ID: ca.ID, ProvinciaID: ca.ProvinciaID, Nombre: ca.Nombre})
	}
	return c.JSON(out)
}

// Parroquias godoc
// @Summary      Parroquias de un cantón
// @Tags         divisiones
// @Produce      json
// @Param        id  path  string  true  "ID de cantón (código DPA)"
// @Success      200  {array}  dto.ParroquiaResponse
// @Router       /api/divisiones/cantones/{id}/parroquias [get]
func (h *DivisionHandler) Parroquias(c *fiber.Ctx) error {
	parroquias, err := h.repo.ListParroquias(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ParroquiaResponse, 0, len(parroquias))
	for _, p := range parroquias {
		out = append(out, dto.ParroquiaResponse{ID: p.ID, CantonID: p.CantonID, Nombre: p.Nombre})
	}
	return c.JSON(out)
}
