package flow

import (
	"github.com/shopspring/decimal"

	"github.com/vecindo/registro-api/internal/domain/entity"
	"github.com/vecindo/registro-api/pkg/cedula"
)

// Resolve calcula el paso único del asistente para un snapshot. Es una
// función total y determinista: nunca falla, el mismo snapshot produce
// siempre el mismo paso, y un snapshot parcial o irreconocible cae en el
// primer requisito sin cumplir.
//
// Mientras AccessGranted es false rige la ruta de registro, en orden estricto
// de prioridad: sesión → rol → perfil → datos de negocio → dirección →
// Pending. Solo con AccessGranted true se evalúa la ruta de verificación.
func Resolve(snap *entity.Snapshot) Step {
	if snap == nil || snap.AccountID == "" {
		return StepEmailLogin
	}
	if !snap.AccessGranted {
		return resolveRegistration(snap)
	}
	return resolveVerification(snap)
}

func resolveRegistration(snap *entity.Snapshot) Step {
	if snap.Role != entity.RoleClient && snap.Role != entity.RoleBusiness {
		return StepRoleSelect
	}
	if !profileComplete(snap.User) {
		return StepUserProfile
	}
	if snap.Role == entity.RoleBusiness && !businessComplete(snap.Business) {
		return StepBusinessData
	}
	if !addressComplete(snap) {
		return StepUserAddress
	}
	// Registro mecánicamente completo; el acceso debería concederse en el
	// próximo refresh.
	return StepPending
}

func resolveVerification(snap *entity.Snapshot) Step {
	switch snap.User.VerificationStatus {
	case entity.VerificationVerified, entity.VerificationSkipped:
		return StepNone
	case entity.VerificationInProgress:
		if snap.Role == entity.RoleBusiness && !businessVerifyComplete(snap) {
			return StepBusinessVerify
		}
		if emailOnlySignIn(snap.User) && !snap.User.EmailConfirmed {
			return StepVerifyEmail
		}
		return StepAccountVerifyMethod
	default:
		return StepAccountVerifyPrompt
	}
}

func profileComplete(u entity.SnapshotUser) bool {
	if u.Nombre == "" || u.Apellido == "" || u.Genero == "" {
		return false
	}
	return u.FechaNacimiento != nil && !u.FechaNacimiento.IsZero()
}

func businessComplete(b *entity.SnapshotBusiness) bool {
	return b != nil && b.Nombre != "" && b.Categoria != ""
}

func addressComplete(snap *entity.Snapshot) bool {
	a := snap.Address
	if a == nil {
		return false
	}
	if snap.Role == entity.RoleClient && a.Skipped {
		return true
	}
	if a.Calles == "" || a.Sector == "" || a.ProvinciaID == "" || a.CantonID == "" {
		return false
	}
	if !validCoordinates(a.Lat, a.Lng) {
		return false
	}
	if snap.Role == entity.RoleBusiness {
		return snap.Branch != nil && len(snap.Branch.Horarios) > 0
	}
	return true
}

func businessVerifyComplete(snap *entity.Snapshot) bool {
	if snap.Business == nil {
		return false
	}
	if cedula.ValidarRUC(snap.Business.RUC) != nil {
		return false
	}
	return snap.User.Telefono != ""
}

// emailOnlySignIn reporta si el único método de inicio de sesión de la cuenta
// es email+password.
func emailOnlySignIn(u entity.SnapshotUser) bool {
	if u.Provider != entity.ProviderEmail && u.Provider != "" {
		return false
	}
	for _, p := range u.Providers {
		if p != entity.ProviderEmail {
			return false
		}
	}
	return true
}

var (
	latMax = decimal.NewFromInt(90)
	lngMax = decimal.NewFromInt(180)
)

func validCoordinates(lat, lng decimal.Decimal) bool {
	if lat.IsZero() && lng.IsZero() {
		return false
	}
	if lat.Abs().GreaterThan(latMax) {
		return false
	}
	return !lng.Abs().GreaterThan(lngMax)
}
