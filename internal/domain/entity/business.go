package entity

import "time"

// Categorías de negocio (deben coincidir con el CHECK de la tabla businesses).
const (
	CategoriaComercio     = "comercio"
	CategoriaServicios    = "servicios"
	CategoriaAlimentos    = "alimentos"
	CategoriaProfesional  = "profesional"
	CategoriaManufactura  = "manufactura"
)

// Business representa el perfil de negocio de una cuenta con rol business.
// RUC queda vacío hasta la etapa de verificación.
type Business struct {
	ID        string
	AccountID string
	Nombre    string
	Categoria string
	RUC       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
