package entity

import "time"

// Roles válidos para Account. RoleUnset significa que el usuario aún no eligió.
const (
	RoleUnset    = ""
	RoleClient   = "client"
	RoleBusiness = "business"
)

// Estados de cuenta.
const (
	StatusPending  = "pending" // inicial para business (espera validación)
	StatusActive   = "active"  // inicial para client
	StatusInactive = "inactive"
)

// Estados del proceso de verificación opcional de cuenta.
const (
	VerificationUnset      = ""
	VerificationInProgress = "in_progress"
	VerificationVerified   = "verified"
	VerificationSkipped    = "skipped"
)

// Proveedores de inicio de sesión.
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
	ProviderApple  = "apple"
)

// Account representa la cuenta que avanza por el asistente de registro.
// FechaNacimiento es nil mientras el perfil no se haya completado.
type Account struct {
	ID                 string
	Email              string
	PasswordHash       string // bcrypt hash; vacío para cuentas de proveedor externo
	EmailConfirmed     bool
	Provider           string   // proveedor principal de inicio de sesión
	Providers          []string // todos los proveedores vinculados
	VerificationStatus string   // ver constantes Verification*
	Telefono           string
	Nombre             string
	Apellido           string
	Genero             string
	FechaNacimiento    *time.Time
	Role               string // ver constantes Role*
	Status             string // ver constantes Status*
	AddressSkipped     bool   // el cliente omitió la dirección detallada
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasPassword indica si la cuenta puede iniciar sesión con email+password.
func (a *Account) HasPassword() bool {
	return a.PasswordHash != ""
}
