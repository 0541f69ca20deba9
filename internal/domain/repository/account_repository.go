package repository

import "github.com/vecindo/registro-api/internal/domain/entity"

// AccountRepository define el puerto de persistencia para Account (DIP).
// La implementación vive en infrastructure.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	GetByEmail(email string) (*entity.Account, error)
	// UpdateProfile actualiza los campos de perfil del titular (upsert lógico:
	// la fila de cuenta siempre existe, solo se actualizan columnas).
	UpdateProfile(account *entity.Account) error
	// UpdateRole persiste el rol elegido y el estado inicial de la cuenta.
	UpdateRole(id, role, status string) error
	// UpdateVerificationStatus escribe el estado del proceso de verificación.
	UpdateVerificationStatus(id, status string) error
	// SetAddressSkipped marca que el cliente omitió la dirección detallada.
	SetAddressSkipped(id string, skipped bool) error
	// SetTelefono actualiza solo el teléfono (etapa de verificación de negocio).
	SetTelefono(id, telefono string) error
}
