package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vecindo/registro-api/internal/domain/entity"
)

// DivisionSeeder carga el catálogo DPA completo dentro de una transacción:
// o entra todo el catálogo o no entra nada. Los upserts por ID hacen la
// carga re-ejecutable cuando el INEC publica una actualización.
type DivisionSeeder struct {
	pool *pgxpool.Pool
}

// NewDivisionSeeder construye el cargador del catálogo.
func NewDivisionSeeder(pool *pgxpool.Pool) *DivisionSeeder {
	return &DivisionSeeder{pool: pool}
}

// Seed inserta o actualiza provincias, cantones y parroquias en ese orden
// (las FKs exigen primero los padres).
func (s *DivisionSeeder) Seed(ctx context.Context, provincias []*entity.Provincia, cantones []*entity.Canton, parroquias []*entity.Parroquia) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, p := range provincias {
		batch.Queue(`
			INSERT INTO provincias (id, nombre) VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE SET nombre = EXCLUDED.nombre`,
			p.ID, p.Nombre)
	}
	for _, c := range cantones {
		batch.Queue(`
			INSERT INTO cantones (id, provincia_id, nombre) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET provincia_id = EXCLUDED.provincia_id, nombre = EXCLUDED.nombre`,
			c.ID, c.ProvinciaID, c.Nombre)
	}
	for _, p := range parroquias {
		batch.Queue(`
			INSERT INTO parroquias (id, canton_id, nombre) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET canton_id = EXCLUDED.canton_id, nombre = EXCLUDED.nombre`,
			p.ID, p.CantonID, p.Nombre)
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("seed divisiones (lote %d): %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("cerrar batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
