package repository

import "github.com/vecindo/registro-api/internal/domain/entity"

// BusinessRepository define el puerto de persistencia para Business.
// Upsert tiene semántica update-si-existe-sino-insert, con unicidad por
// account_id; la idempotencia la garantiza la constraint de la tabla.
type BusinessRepository interface {
	Upsert(business *entity.Business) error
	GetByAccount(accountID string) (*entity.Business, error)
	// SetRUC actualiza solo el RUC (etapa de verificación de negocio).
	SetRUC(accountID, ruc string) error
}
