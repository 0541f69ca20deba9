package flow

import "github.com/vecindo/registro-api/internal/application/dto"

// FormState es el registro único de los valores tipeados por el usuario en
// cada paso. Lo posee el motor: se conserva a través de re-resoluciones y
// errores transitorios para no perder lo escrito, y solo se limpia al cambiar
// de rol o al cancelar explícitamente.
type FormState struct {
	Rol       dto.RolRequest
	Perfil    dto.PerfilRequest
	Negocio   dto.NegocioRequest
	Direccion dto.DireccionRequest
	VerifRUC  dto.VerificacionNegocioRequest
}

// Reset limpia todos los campos.
func (f *FormState) Reset() {
	*f = FormState{}
}
