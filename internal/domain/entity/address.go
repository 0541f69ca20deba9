package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Address dirección principal de la cuenta. Lat/Lng se almacenan como NUMERIC
// para evitar pérdida de precisión en el round-trip con la DB.
type Address struct {
	ID          string
	AccountID   string
	Calles      string
	Ciudad      string
	Sector      string
	ProvinciaID string
	CantonID    string
	ParroquiaID string
	Parroquia   string // nombre legible; la FK es ParroquiaID
	Lat         decimal.Decimal
	Lng         decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasCoordinates indica si la dirección tiene coordenadas utilizables.
func (a *Address) HasCoordinates() bool {
	return !a.Lat.IsZero() || !a.Lng.IsZero()
}

// Estados de sucursal.
const (
	BranchDraft  = "draft"
	BranchActive = "active"
)

// Tipos de sucursal.
const (
	BranchTipoLocal     = "local"
	BranchTipoDomicilio = "domicilio"
)

// Horario franja de atención de un día de la semana. Dia usa time.Weekday.
type Horario struct {
	Dia   time.Weekday
	Desde string // "10:00"
	Hasta string // "18:00"
}

// Branch sucursal única del negocio, asociada a la dirección de la cuenta.
type Branch struct {
	ID        string
	AccountID string
	Tipo      string // ver constantes BranchTipo*
	Status    string // ver constantes Branch*
	Horarios  []Horario
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultHorarios devuelve la plantilla de horario por defecto:
// lunes a viernes de 10:00 a 18:00.
func DefaultHorarios() []Horario {
	dias := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	out := make([]Horario, 0, len(dias))
	for _, d := range dias {
		out = append(out, Horario{Dia: d, Desde: "10:00", Hasta: "18:00"})
	}
	return out
}
