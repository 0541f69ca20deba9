package repository

import "github.com/vecindo/registro-api/internal/domain/entity"

// AddressRepository define el puerto de persistencia para Address y Branch.
// Ambos upserts son por account_id: una cuenta tiene a lo sumo una dirección
// principal y una sucursal.
type AddressRepository interface {
	UpsertAddress(address *entity.Address) error
	GetByAccount(accountID string) (*entity.Address, error)
	UpsertBranch(branch *entity.Branch) error
	GetBranchByAccount(accountID string) (*entity.Branch, error)
}
