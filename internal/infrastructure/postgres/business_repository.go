package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vecindo/registro-api/internal/domain"
	"github.com/vecindo/registro-api/internal/domain/entity"
	"github.com/vecindo/registro-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación del puerto BusinessRepository sobre PostgreSQL.
type BusinessRepo struct {
	pool *pgxpool.Pool
}

// NewBusinessRepository construye el adaptador de persistencia para negocios.
func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepo {
	return &BusinessRepo{pool: pool}
}

// Upsert inserta o actualiza el perfil del negocio. La unicidad por
// account_id la garantiza la constraint de la tabla: reenviar el mismo paso
// jamás duplica filas.
func (r *BusinessRepo) Upsert(b *entity.Business) error {
	query := `
		INSERT INTO businesses (id, account_id, nombre, categoria, ruc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (account_id) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			categoria = EXCLUDED.categoria,
			updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		b.ID, b.AccountID, b.Nombre, b.Categoria, b.RUC, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert business: %w", err)
	}
	return nil
}

// GetByAccount obtiene el negocio de una cuenta.
func (r *BusinessRepo) GetByAccount(accountID string) (*entity.Business, error) {
	query := `
		SELECT id, account_id, nombre, categoria, ruc, created_at, updated_at
		FROM businesses WHERE account_id = $1`
	var b entity.Business
	err := r.pool.QueryRow(context.Background(), query, accountID).Scan(
		&b.ID, &b.AccountID, &b.Nombre, &b.Categoria, &b.RUC, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business by account: %w", err)
	}
	return &b, nil
}

// SetRUC actualiza solo el RUC del negocio.
func (r *BusinessRepo) SetRUC(accountID, ruc string) error {
	query := `UPDATE businesses SET ruc = $2, updated_at = now() WHERE account_id = $1`
	tag, err := r.pool.Exec(context.Background(), query, accountID, ruc)
	if err != nil {
		return fmt.Errorf("set ruc: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
