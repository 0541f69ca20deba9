package dto

// ProvinciaResponse ítem del catálogo de provincias.
type ProvinciaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// CantonResponse ítem del catálogo de cantones de una provincia.
type CantonResponse struct {
	ID          string `json:"id"`
	ProvinciaID string `json:"provincia_id"`
	Nombre      string `json:"nombre"`
}

// ParroquiaResponse ítem del catálogo de parroquias de un cantón.
type ParroquiaResponse struct {
	ID       string `json:"id"`
	CantonID string `json:"canton_id"`
	Nombre   string `json:"nombre"`
}
