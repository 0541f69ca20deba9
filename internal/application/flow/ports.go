package flow

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vecindo/registro-api/internal/domain/entity"
)

// SnapshotSource obtiene el snapshot autoritativo de la cuenta. Cada llamada
// es un reemplazo completo, nunca un merge.
type SnapshotSource interface {
	Fetch(accountID string) (*entity.Snapshot, error)
}

// CheckResult resultado del check externo de completitud de registro.
// OK indica que la llamada llegó al backend; Valid que el registro está
// completo. Message explica el faltante cuando Valid es false.
type CheckResult struct {
	OK      bool
	Valid   bool
	Message string
}

// OnboardingStatus resultado fresco del check de estado de la cuenta,
// consultado justo antes de aprobar la verificación.
type OnboardingStatus struct {
	OK             bool
	Provider       string
	Providers      []string
	EmailConfirmed bool
}

// RegistrationChecker checks fuera de banda. Son cajas negras para el motor:
// solo sus salidas booleanas y mensajes participan en el branching.
type RegistrationChecker interface {
	ValidateRegistration(ctx context.Context, accountID string) (*CheckResult, error)
	OnboardingCheck(ctx context.Context, accountID string) (*OnboardingStatus, error)
}

// CodeValidator valida un código de registro de negocio contra el backend.
// Se consulta únicamente durante la selección del rol business.
type CodeValidator interface {
	ValidateCode(ctx context.Context, code string) error
}

// GeoResult resultado de búsqueda de dirección del proveedor de geocodificación.
type GeoResult struct {
	DisplayName string
	Lat         decimal.Decimal
	Lng         decimal.Decimal
}

// GeoFields campos de dirección derivados de coordenadas (reverse).
type GeoFields struct {
	Calles string
	Ciudad string
	Sector string
}

// Geocoder puerto del proveedor de geocodificación. Solo lo consume el flujo
// del paso de dirección; sus internals no son parte del núcleo.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]GeoResult, error)
	Reverse(ctx context.Context, lat, lng decimal.Decimal) (*GeoFields, error)
}
