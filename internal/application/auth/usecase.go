// Package auth implementa los casos de uso de autenticación: alta con
// email+password (paso EmailRegister del asistente) y login (EmailLogin).
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vecindo/registro-api/internal/application/dto"
	"github.com/vecindo/registro-api/internal/domain"
	"github.com/vecindo/registro-api/internal/domain/entity"
	"github.com/vecindo/registro-api/internal/domain/repository"
	"github.com/vecindo/registro-api/internal/domain/validation"
	"github.com/vecindo/registro-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	accountRepo repository.AccountRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accountRepo repository.AccountRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{accountRepo: accountRepo, jwtCfg: jwtCfg}
}

// Register crea la cuenta: valida email y password, hashea con bcrypt y
// persiste con rol sin elegir, de modo que el primer resolve caiga en
// RoleSelect. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AccountResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := validation.ValidarEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidarPassword(in.Password, in.PasswordConfirmacion); err != nil {
		return nil, err
	}
	existing, err := uc.accountRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	account := &entity.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Provider:     entity.ProviderEmail,
		Providers:    []string{entity.ProviderEmail},
		Role:         entity.RoleUnset,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Login verifica email/password, genera JWT y retorna token + cuenta.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	account, err := uc.accountRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	if !account.HasPassword() {
		// cuenta creada vía proveedor externo: no tiene password local
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if account.Status == entity.StatusInactive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, account.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Account: *toAccountResponse(account),
	}, nil
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:                 a.ID,
		Email:              a.Email,
		EmailConfirmed:     a.EmailConfirmed,
		Role:               a.Role,
		Status:             a.Status,
		VerificationStatus: a.VerificationStatus,
		Nombre:             a.Nombre,
		Apellido:           a.Apellido,
		FechaNacimiento:    a.FechaNacimiento,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
