package dto

// GeoResultResponse resultado de búsqueda de dirección.
type GeoResultResponse struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lng         string `json:"lng"`
}

// GeoReverseResponse campos de dirección derivados de coordenadas.
type GeoReverseResponse struct {
	Calles string `json:"calles"`
	Ciudad string `json:"ciudad"`
	Sector string `json:"sector"`
}
