package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/vecindo/registro-api/internal/application/dto"
	"github.com/vecindo/registro-api/internal/application/flow"
)

// GeoHandler expone el proveedor de geocodificación al mapa del paso de
// dirección: búsqueda de texto libre y reverse de coordenadas.
type GeoHandler struct {
	geocoder flow.Geocoder
}

// NewGeoHandler construye el handler de geocodificación.
func NewGeoHandler(geocoder flow.Geocoder) *GeoHandler {
	return &GeoHandler{geocoder: geocoder}
}

// Search godoc
// @Summary      Búsqueda de direcciones por texto libre
// @Tags         geo
// @Produce      json
// @Param        q  query  string  true  "texto de búsqueda"
// @Success      200  {array}  dto.GeoResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/geo/search [get]
func (h *GeoHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetro q requerido"})
	}
	results, err := h.geocoder.Search(c.Context(), q)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "GEO_UNAVAILABLE", Message: "el geocoder no respondió"})
	}
	out := make([]dto.GeoResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, dto.GeoResultResponse{
			DisplayName: r.DisplayName,
			Lat:         r.Lat.String(),
			Lng:         r.Lng.String(),
		})
	}
	return c.JSON(out)
}

// Reverse godoc
// @Summary      Deriva calles/ciudad/sector de coordenadas
// @Tags         geo
// @Produce      json
// @Param        lat  query  string  true  "latitud"
// @Param        lng  query  string  true  "longitud"
// @Success      200  {object}  dto.GeoReverseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/geo/reverse [get]
func (h *GeoHandler) Reverse(c *fiber.Ctx) error {
	lat, err := decimal.NewFromString(c.Query("lat"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lat inválida"})
	}
	lng, err := decimal.NewFromString(c.Query("lng"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lng inválida"})
	}
	fields, err := h.geocoder.Reverse(c.Context(), lat, lng)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "GEO_UNAVAILABLE", Message: "el geocoder no respondió"})
	}
	return c.JSON(dto.GeoReverseResponse{Calles: fields.Calles, Ciudad: fields.Ciudad, Sector: fields.Sector})
}
