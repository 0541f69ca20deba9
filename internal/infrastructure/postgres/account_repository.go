package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vecindo/registro-api/internal/domain"
	"github.com/vecindo/registro-api/internal/domain/entity"
	"github.com/vecindo/registro-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

const accountColumns = `id, email, password_hash, email_confirmed, provider, providers,
	verification_status, telefono, nombre, apellido, genero, fecha_nacimiento,
	role, status, address_skipped, created_at, updated_at`

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create persiste una nueva cuenta.
func (r *AccountRepo) Create(a *entity.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.Email, a.PasswordHash, a.EmailConfirmed, a.Provider, a.Providers,
		a.VerificationStatus, a.Telefono, a.Nombre, a.Apellido, a.Genero, a.FechaNacimiento,
		a.Role, a.Status, a.AddressSkipped, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	return r.findOne(`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

// GetByEmail obtiene una cuenta por email.
func (r *AccountRepo) GetByEmail(email string) (*entity.Account, error) {
	return r.findOne(`SELECT `+accountColumns+` FROM accounts WHERE email = $1 LIMIT 1`, email)
}

func (r *AccountRepo) findOne(query string, arg any) (*entity.Account, error) {
	var a entity.Account
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.EmailConfirmed, &a.Provider, &a.Providers,
		&a.VerificationStatus, &a.Telefono, &a.Nombre, &a.Apellido, &a.Genero, &a.FechaNacimiento,
		&a.Role, &a.Status, &a.AddressSkipped, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// UpdateProfile actualiza los campos de perfil del titular.
func (r *AccountRepo) UpdateProfile(a *entity.Account) error {
	query := `
		UPDATE accounts SET nombre = $2, apellido = $3, genero = $4,
			fecha_nacimiento = $5, telefono = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.Nombre, a.Apellido, a.Genero, a.FechaNacimiento, a.Telefono, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update account profile: %w", err)
	}
	return nil
}

// UpdateRole persiste el rol elegido y el estado inicial de la cuenta.
func (r *AccountRepo) UpdateRole(id, role, status string) error {
	query := `UPDATE accounts SET role = $2, status = $3, updated_at = now() WHERE id = $1`
	if _, err := r.pool.Exec(context.Background(), query, id, role, status); err != nil {
		return fmt.Errorf("update account role: %w", err)
	}
	return nil
}

// UpdateVerificationStatus escribe el estado del proceso de verificación.
func (r *AccountRepo) UpdateVerificationStatus(id, status string) error {
	query := `UPDATE accounts SET verification_status = $2, updated_at = now() WHERE id = $1`
	if _, err := r.pool.Exec(context.Background(), query, id, status); err != nil {
		return fmt.Errorf("update verification status: %w", err)
	}
	return nil
}

// SetAddressSkipped marca que el cliente omitió la dirección detallada.
func (r *AccountRepo) SetAddressSkipped(id string, skipped bool) error {
	query := `UPDATE accounts SET address_skipped = $2, updated_at = now() WHERE id = $1`
	if _, err := r.pool.Exec(context.Background(), query, id, skipped); err != nil {
		return fmt.Errorf("set address skipped: %w", err)
	}
	return nil
}

// SetTelefono actualiza solo el teléfono.
func (r *AccountRepo) SetTelefono(id, telefono string) error {
	query := `UPDATE accounts SET telefono = $2, updated_at = now() WHERE id = $1`
	if _, err := r.pool.Exec(context.Background(), query, id, telefono); err != nil {
		return fmt.Errorf("set telefono: %w", err)
	}
	return nil
}
