package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vecindo/registro-api/internal/domain/entity"
	"github.com/vecindo/registro-api/internal/domain/repository"
)

var _ repository.AddressRepository = (*AddressRepo)(nil)

// AddressRepo implementación del puerto AddressRepository sobre PostgreSQL.
// Persiste la dirección principal y la sucursal del negocio; ambas tablas
// tienen unicidad por account_id.
type AddressRepo struct {
	pool *pgxpool.Pool
}

// NewAddressRepository construye el adaptador de persistencia para direcciones.
func NewAddressRepository(pool *pgxpool.Pool) *AddressRepo {
	return &AddressRepo{pool: pool}
}

// UpsertAddress inserta o actualiza la dirección principal de la cuenta.
func (r *AddressRepo) UpsertAddress(a *entity.Address) error {
	query := `
		INSERT INTO addresses (id, account_id, calles, ciudad, sector,
			provincia_id, canton_id, parroquia_id, parroquia, lat, lng,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (account_id) DO UPDATE SET
			calles = EXCLUDED.calles,
			ciudad = EXCLUDED.ciudad,
			sector = EXCLUDED.sector,
			provincia_id = EXCLUDED.provincia_id,
			canton_id = EXCLUDED.canton_id,
			parroquia_id = EXCLUDED.parroquia_id,
			parroquia = EXCLUDED.parroquia,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.AccountID, a.Calles, a.Ciudad, a.Sector,
		a.ProvinciaID, a.CantonID, a.ParroquiaID, a.Parroquia, a.Lat, a.Lng,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert address: %w", err)
	}
	return nil
}

// GetByAccount obtiene la dirección principal de una cuenta.
func (r *AddressRepo) GetByAccount(accountID string) (*entity.Address, error) {
	query := `
		SELECT id, account_id, calles, ciudad, sector, provincia_id, canton_id,
			parroquia_id, parroquia, lat, lng, created_at, updated_at
		FROM addresses WHERE account_id = $1`
	var a entity.Address
	err := r.pool.QueryRow(context.Background(), query, accountID).Scan(
		&a.ID, &a.AccountID, &a.Calles, &a.Ciudad, &a.Sector, &a.ProvinciaID, &a.CantonID,
		&a.ParroquiaID, &a.Parroquia, &a.Lat, &a.Lng, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address by account: %w", err)
	}
	return &a, nil
}

// UpsertBranch inserta o actualiza la sucursal única del negocio. Los
// horarios se guardan como JSONB.
func (r *AddressRepo) UpsertBranch(b *entity.Branch) error {
	horarios, err := json.Marshal(b.Horarios)
	if err != nil {
		return fmt.Errorf("marshal horarios: %w", err)
	}
	query := `
		INSERT INTO branches (id, account_id, tipo, status, horarios, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (account_id) DO UPDATE SET
			tipo = EXCLUDED.tipo,
			status = EXCLUDED.status,
			horarios = EXCLUDED.horarios,
			updated_at = EXCLUDED.updated_at`
	_, err = r.pool.Exec(context.Background(), query,
		b.ID, b.AccountID, b.Tipo, b.Status, horarios, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert branch: %w", err)
	}
	return nil
}

// GetBranchByAccount obtiene la sucursal del negocio de una cuenta.
func (r *AddressRepo) GetBranchByAccount(accountID string) (*entity.Branch, error) {
	query := `
		SELECT id, account_id, tipo, status, horarios, created_at, updated_at
		FROM branches WHERE account_id = $1`
	var b entity.Branch
	var horarios []byte
	err := r.pool.QueryRow(context.Background(), query, accountID).Scan(
		&b.ID, &b.AccountID, &b.Tipo, &b.Status, &horarios, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch by account: %w", err)
	}
	if len(horarios) > 0 {
		if err := json.Unmarshal(horarios, &b.Horarios); err != nil {
			return nil, fmt.Errorf("unmarshal horarios: %w", err)
		}
	}
	return &b, nil
}
