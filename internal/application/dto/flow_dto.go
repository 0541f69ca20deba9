package dto

// EstadoResponse estado observable de la sesión del asistente.
type EstadoResponse struct {
	Step          string `json:"step"`
	Loading       bool   `json:"loading"`
	Error         string `json:"error,omitempty"`
	Info          string `json:"info,omitempty"`
	AccessGranted bool   `json:"access_granted"`
	Role          string `json:"role"`
}

// RolRequest entrada del paso RoleSelect. Codigo solo se exige para business.
type RolRequest struct {
	Role   string `json:"role" validate:"required,oneof=client business"`
	Codigo string `json:"codigo" validate:"omitempty"`
}

// PerfilRequest entrada del paso UserProfile. FechaNacimiento en formato 2006-01-02.
type PerfilRequest struct {
	Nombre          string `json:"nombre" validate:"required,min=1,max=120"`
	Apellido        string `json:"apellido" validate:"required,min=1,max=120"`
	Genero          string `json:"genero" validate:"required"`
	FechaNacimiento string `json:"fecha_nacimiento" validate:"required"`
	Telefono        string `json:"telefono" validate:"omitempty"`
}

// NegocioRequest entrada del paso BusinessData.
type NegocioRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Categoria string `json:"categoria" validate:"required"`
}

// HorarioDTO franja de horario de la sucursal. Dia: 0=domingo ... 6=sábado.
type HorarioDTO struct {
	Dia   int    `json:"dia" validate:"min=0,max=6"`
	Desde string `json:"desde" validate:"required"`
	Hasta string `json:"hasta" validate:"required"`
}

// DireccionRequest entrada del paso UserAddress. Para client, Omitir=true
// salta la dirección detallada; para business se ignora.
type DireccionRequest struct {
	Calles      string       `json:"calles"`
	Ciudad      string       `json:"ciudad"`
	Sector      string       `json:"sector"`
	ProvinciaID string       `json:"provincia_id"`
	CantonID    string       `json:"canton_id"`
	ParroquiaID string       `json:"parroquia_id"`
	Parroquia   string       `json:"parroquia"`
	Lat         string       `json:"lat"`
	Lng         string       `json:"lng"`
	Omitir      bool         `json:"omitir"`
	BranchTipo  string       `json:"branch_tipo"`
	Horarios    []HorarioDTO `json:"horarios"`
}

// VerificacionNegocioRequest entrada del paso BusinessVerify.
type VerificacionNegocioRequest struct {
	RUC      string `json:"ruc" validate:"required"`
	Telefono string `json:"telefono" validate:"required"`
}
