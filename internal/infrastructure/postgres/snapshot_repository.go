package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vecindo/registro-api/internal/application/flow"
	"github.com/vecindo/registro-api/internal/domain/entity"
)

var _ flow.SnapshotSource = (*SnapshotRepo)(nil)

// SnapshotRepo produce la proyección de solo lectura del estado de la cuenta
// que consume el resolver: cuenta + acceso + negocio + dirección + sucursal,
// compuesta en un solo Fetch. El snapshot es un reemplazo completo; nunca se
// mezcla con uno anterior.
type SnapshotRepo struct {
	pool       *pgxpool.Pool
	businesses *BusinessRepo
	addresses  *AddressRepo
}

// NewSnapshotRepository construye la fuente de snapshots.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{
		pool:       pool,
		businesses: NewBusinessRepository(pool),
		addresses:  NewAddressRepository(pool),
	}
}

// Fetch compone el snapshot vigente de la cuenta. Devuelve (nil, nil) si la
// cuenta no existe.
func (r *SnapshotRepo) Fetch(accountID string) (*entity.Snapshot, error) {
	query := `
		SELECT id, email, password_hash, email_confirmed, provider, providers,
			verification_status, telefono, nombre, apellido, genero, fecha_nacimiento,
			role, address_skipped, access_granted, gating_reasons
		FROM accounts WHERE id = $1`

	var (
		passwordHash   string
		addressSkipped bool
		snap           entity.Snapshot
	)
	err := r.pool.QueryRow(context.Background(), query, accountID).Scan(
		&snap.AccountID, &snap.User.Email, &passwordHash, &snap.User.EmailConfirmed,
		&snap.User.Provider, &snap.User.Providers,
		&snap.User.VerificationStatus, &snap.User.Telefono,
		&snap.User.Nombre, &snap.User.Apellido, &snap.User.Genero, &snap.User.FechaNacimiento,
		&snap.Role, &addressSkipped, &snap.AccessGranted, &snap.GatingReasons,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	snap.User.HasPassword = passwordHash != ""
	snap.FetchedAt = time.Now()

	if snap.Role == entity.RoleBusiness {
		b, err := r.businesses.GetByAccount(accountID)
		if err != nil {
			return nil, err
		}
		if b != nil {
			snap.Business = &entity.SnapshotBusiness{Nombre: b.Nombre, Categoria: b.Categoria, RUC: b.RUC}
		}
		br, err := r.addresses.GetBranchByAccount(accountID)
		if err != nil {
			return nil, err
		}
		if br != nil {
			snap.Branch = &entity.SnapshotBranch{Tipo: br.Tipo, Status: br.Status, Horarios: br.Horarios}
		}
	}

	a, err := r.addresses.GetByAccount(accountID)
	if err != nil {
		return nil, err
	}
	switch {
	case a != nil:
		snap.Address = &entity.SnapshotAddress{
			Calles: a.Calles, Ciudad: a.Ciudad, Sector: a.Sector,
			ProvinciaID: a.ProvinciaID, CantonID: a.CantonID,
			ParroquiaID: a.ParroquiaID, Parroquia: a.Parroquia,
			Lat: a.Lat, Lng: a.Lng,
			Skipped: addressSkipped,
		}
	case addressSkipped:
		snap.Address = &entity.SnapshotAddress{Skipped: true}
	}

	return &snap, nil
}
