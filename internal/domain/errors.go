package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrAccountNotFound    = errors.New("cuenta no encontrada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrEdadInsuficiente   = errors.New("no cumple la edad mínima requerida")
	ErrCodigoInvalido     = errors.New("código de registro inválido")
	ErrEmailNoConfirmado  = errors.New("el email aún no ha sido confirmado")
	ErrRegistroIncompleto = errors.New("el registro aún está incompleto")
)
