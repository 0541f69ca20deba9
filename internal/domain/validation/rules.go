// Package validation agrupa las reglas de campo del asistente de registro.
// Todas las funciones son puras y síncronas: sin I/O, sin estado.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/vecindo/registro-api/internal/domain"
	"github.com/vecindo/registro-api/internal/domain/entity"
)

// Edades mínimas por rol.
const (
	EdadMinimaCliente  = 16
	EdadMinimaNegocio  = 18
	TelefonoMinDigitos = 9
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	// Código de registro: prefijo fijo más dos grupos alfanuméricos de 4,
	// separados por guiones. Se excluyen los caracteres visualmente ambiguos
	// (0/O, 1/I/L) para evitar errores de transcripción.
	codigoRe = regexp.MustCompile(`^VEC-[A-HJ-KM-NP-Z2-9]{4}-[A-HJ-KM-NP-Z2-9]{4}$`)
	digitRe  = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[^A-Za-z0-9\s]`)
	horaRe   = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// ValidarEmail valida la forma del email.
func ValidarEmail(email string) error {
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		return fmt.Errorf("%w: email con formato inválido", domain.ErrInvalidInput)
	}
	return nil
}

// ValidarPassword aplica la política de contraseñas: mínimo 8 caracteres,
// al menos un dígito y un símbolo, y coincidencia con la confirmación.
func ValidarPassword(password, confirmacion string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}
	if !digitRe.MatchString(password) {
		return fmt.Errorf("%w: la contraseña debe incluir al menos un número", domain.ErrInvalidInput)
	}
	if !symbolRe.MatchString(password) {
		return fmt.Errorf("%w: la contraseña debe incluir al menos un símbolo", domain.ErrInvalidInput)
	}
	if password != confirmacion {
		return fmt.Errorf("%w: las contraseñas no coinciden", domain.ErrInvalidInput)
	}
	return nil
}

// NormalizarTelefono elimina separadores comunes y valida la cantidad mínima
// de dígitos. Devuelve el número normalizado (solo dígitos, con + inicial si
// venía en formato internacional).
func NormalizarTelefono(telefono string) (string, error) {
	t := strings.TrimSpace(telefono)
	internacional := strings.HasPrefix(t, "+")
	var b strings.Builder
	for _, r := range t {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) < TelefonoMinDigitos {
		return "", fmt.Errorf("%w: el teléfono debe tener al menos %d dígitos", domain.ErrInvalidInput, TelefonoMinDigitos)
	}
	if internacional {
		return "+" + digits, nil
	}
	return digits, nil
}

// Edad calcula la edad en años cumplidos entre fechaNacimiento y hoy con
// aritmética de calendario: el año se cumple en el aniversario exacto, no a
// los 365 días.
func Edad(fechaNacimiento, hoy time.Time) int {
	edad := hoy.Year() - fechaNacimiento.Year()
	aniversario := time.Date(hoy.Year(), fechaNacimiento.Month(), fechaNacimiento.Day(), 0, 0, 0, 0, hoy.Location())
	if hoy.Before(aniversario) {
		edad--
	}
	return edad
}

// EdadMinima devuelve la edad mínima requerida para el rol.
func EdadMinima(role string) int {
	if role == entity.RoleBusiness {
		return EdadMinimaNegocio
	}
	return EdadMinimaCliente
}

// ValidarFechaNacimiento valida la fecha y la edad mínima del rol respecto a hoy.
func ValidarFechaNacimiento(fecha time.Time, role string, hoy time.Time) error {
	if fecha.IsZero() {
		return fmt.Errorf("%w: fecha de nacimiento requerida", domain.ErrInvalidInput)
	}
	if fecha.After(hoy) {
		return fmt.Errorf("%w: la fecha de nacimiento no puede ser futura", domain.ErrInvalidInput)
	}
	minima := EdadMinima(role)
	if Edad(fecha, hoy) < minima {
		return fmt.Errorf("%w: se requieren al menos %d años", domain.ErrEdadInsuficiente, minima)
	}
	return nil
}

// ValidarCodigoRegistro valida la forma del código de registro de negocio
// (VEC-XXXX-XXXX). La vigencia del código la confirma el validador externo.
func ValidarCodigoRegistro(codigo string) error {
	if !codigoRe.MatchString(strings.ToUpper(strings.TrimSpace(codigo))) {
		return fmt.Errorf("%w: formato esperado VEC-XXXX-XXXX", domain.ErrCodigoInvalido)
	}
	return nil
}

// ValidarHorarios exige al menos una franja y que cada franja tenga horas
// HH:MM válidas con inicio anterior al fin.
func ValidarHorarios(horarios []entity.Horario) error {
	if len(horarios) == 0 {
		return fmt.Errorf("%w: el negocio requiere al menos una franja de horario", domain.ErrInvalidInput)
	}
	for _, h := range horarios {
		if !horaRe.MatchString(h.Desde) || !horaRe.MatchString(h.Hasta) {
			return fmt.Errorf("%w: horario con formato inválido (%s-%s)", domain.ErrInvalidInput, h.Desde, h.Hasta)
		}
		if h.Desde >= h.Hasta {
			return fmt.Errorf("%w: la hora de apertura debe ser anterior al cierre", domain.ErrInvalidInput)
		}
	}
	return nil
}
