package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Códigos de razón de bloqueo de acceso (GatingReasons). El motor solo los
// consume para decidir si dispara una revalidación automática.
const (
	GatingRegistroIncompleto = "registro_incompleto"
	GatingPendienteRevision  = "pendiente_revision"
)

// Snapshot es la proyección de solo lectura del estado de la cuenta en un
// instante. Es inmutable una vez producido: cualquier mutación requiere un
// nuevo fetch (o un Clone para el parche optimista del motor).
type Snapshot struct {
	AccountID     string
	Role          string // RoleUnset | RoleClient | RoleBusiness
	AccessGranted bool
	GatingReasons []string
	User          SnapshotUser
	Business      *SnapshotBusiness // solo para role=business
	Address       *SnapshotAddress
	Branch        *SnapshotBranch
	FetchedAt     time.Time
}

// SnapshotUser proyección de los campos de la cuenta que lee el resolver.
type SnapshotUser struct {
	HasPassword        bool
	EmailConfirmed     bool
	VerificationStatus string
	Provider           string
	Providers          []string
	Telefono           string
	Nombre             string
	Apellido           string
	Genero             string
	FechaNacimiento    *time.Time
	Email              string
}

// SnapshotBusiness proyección del perfil de negocio.
type SnapshotBusiness struct {
	Nombre    string
	Categoria string
	RUC       string
}

// SnapshotAddress proyección de la dirección.
type SnapshotAddress struct {
	Calles      string
	Ciudad      string
	Sector      string
	ProvinciaID string
	CantonID    string
	ParroquiaID string
	Parroquia   string
	Lat         decimal.Decimal
	Lng         decimal.Decimal
	Skipped     bool
}

// SnapshotBranch proyección de la sucursal del negocio.
type SnapshotBranch struct {
	Tipo     string
	Status   string
	Horarios []Horario
}

// Clone devuelve una copia profunda. El motor la usa para reflejar de forma
// optimista un paso recién completado mientras llega el refresh autoritativo.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.GatingReasons = append([]string(nil), s.GatingReasons...)
	out.User.Providers = append([]string(nil), s.User.Providers...)
	if s.User.FechaNacimiento != nil {
		f := *s.User.FechaNacimiento
		out.User.FechaNacimiento = &f
	}
	if s.Business != nil {
		b := *s.Business
		out.Business = &b
	}
	if s.Address != nil {
		a := *s.Address
		out.Address = &a
	}
	if s.Branch != nil {
		br := *s.Branch
		br.Horarios = append([]Horario(nil), s.Branch.Horarios...)
		out.Branch = &br
	}
	return &out
}
