package dto

import "time"

// RegisterRequest entrada para el alta con email+password (paso EmailRegister).
type RegisterRequest struct {
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmacion string `json:"password_confirmacion" validate:"required"`
}

// LoginRequest entrada para login (paso EmailLogin).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountResponse salida de una cuenta (sin password).
type AccountResponse struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	EmailConfirmed     bool       `json:"email_confirmed"`
	Role               string     `json:"role"`
	Status             string     `json:"status"`
	VerificationStatus string     `json:"verification_status"`
	Nombre             string     `json:"nombre,omitempty"`
	Apellido           string     `json:"apellido,omitempty"`
	FechaNacimiento    *time.Time `json:"fecha_nacimiento,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// LoginResponse token + cuenta.
type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}
