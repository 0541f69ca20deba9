package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vecindo/registro-api/internal/domain/entity"
	"github.com/vecindo/registro-api/internal/domain/repository"
)

var _ repository.DivisionRepository = (*DivisionRepo)(nil)

// DivisionRepo catálogo DPA (provincia/cantón/parroquia) sobre PostgreSQL.
// Es un catálogo paramétrico: solo lecturas ordenadas por nombre; la carga
// la hace el comando de seed.
type DivisionRepo struct {
	pool *pgxpool.Pool
}

// NewDivisionRepository construye el adaptador del catálogo de divisiones.
func NewDivisionRepository(pool *pgxpool.Pool) *DivisionRepo {
	return &DivisionRepo{pool: pool}
}

// ListProvincias lista todas las provincias.
func (r *DivisionRepo) ListProvincias() ([]*entity.Provincia, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, nombre FROM provincias ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list provincias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Provincia
	for rows.Next() {
		var p entity.Provincia
		if err := rows.Scan(&p.ID, &p.Nombre); err != nil {
			return nil, fmt.Errorf("scan provincia: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListCantones lista los cantones de una provincia.
func (r *DivisionRepo) ListCantones(provinciaID string) ([]*entity.Canton, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, provincia_id, nombre FROM cantones WHERE provincia_id = $1 ORDER BY nombre`,
		provinciaID)
	if err != nil {
		return nil, fmt.Errorf("list cantones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Canton
	for rows.Next() {
		var c entity.Canton
		if err := rows.Scan(&c.ID, &c.ProvinciaID, &c.Nombre); err != nil {
			return nil, fmt.Errorf("scan canton: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListParroquias lista las parroquias de un cantón.
func (r *DivisionRepo) ListParroquias(cantonID string) ([]*entity.Parroquia, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, canton_id, nombre FROM parroquias WHERE canton_id = $1 ORDER BY nombre`,
		cantonID)
	if err != nil {
		return nil, fmt.Errorf("list parroquias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Parroquia
	for rows.Next() {
		var p entity.Parroquia
		if err := rows.Scan(&p.ID, &p.CantonID, &p.Nombre); err != nil {
			return nil, fmt.Errorf("scan parroquia: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
