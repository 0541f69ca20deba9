package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vecindo/registro-api/internal/application/dto"
	"github.com/vecindo/registro-api/internal/application/flow"
	flowdom "github.com/vecindo/registro-api/internal/domain/flow"
)

// FlowHandler expone el asistente de registro. Cada envío valida, persiste y
// re-resuelve el paso; la respuesta es siempre el estado refrescado de la
// sesión, con el error del paso (si lo hubo) adentro. El cliente no decide
// navegación: pinta el paso que el estado trae.
type FlowHandler struct{}

// NewFlowHandler construye el handler del asistente.
func NewFlowHandler() *FlowHandler {
	return &FlowHandler{}
}

func estado(e *flow.Engine) dto.EstadoResponse {
	st := e.State()
	return dto.EstadoResponse{
		Step:          string(st.Step),
		Loading:       st.Loading,
		Error:         st.ErrorMsg,
		Info:          st.InfoMsg,
		AccessGranted: st.AccessGranted,
		Role:          st.Role,
	}
}

// Estado godoc
// @Summary      Estado del asistente (refresca snapshot y re-resuelve el paso)
// @Tags         registro
// @Produce      json
// @Success      200  {object}  dto.EstadoResponse
// @Router       /api/registro/estado [get]
func (h *FlowHandler) Estado(c *fiber.Ctx) error {
	e := GetSession(c)
	_ = e.Refresh(c.Context()) // el error de fetch ya queda en el estado
	return c.JSON(estado(e))
}

// Navegar godoc
// @Summary      Navegación explícita entre pasos informativos
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  object{step=string}  true  "paso destino"
// @Success      200   {object}  dto.EstadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/registro/navegar [post]
func (h *FlowHandler) Navegar(c *fiber.Ctx) error {
	var in struct {
		Step string `json:"step"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	e := GetSession(c)
	if !e.NavigateTo(flowdom.Step(in.Step)) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STEP", Message: "solo se navega entre pasos informativos"})
	}
	return c.JSON(estado(e))
}

// Cancelar godoc
// @Summary      Cancela la edición en curso: limpia formulario y error
// @Tags         registro
// @Produce      json
// @Success      200  {object}  dto.EstadoResponse
// @Router       /api/registro/cancelar [post]
func (h *FlowHandler) Cancelar(c *fiber.Ctx) error {
	e := GetSession(c)
	e.Cancel()
	return c.JSON(estado(e))
}

// Rol godoc
// @Summary      Paso RoleSelect: elegir rol client o business
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RolRequest  true  "role y, para business, codigo"
// @Success      200   {object}  dto.EstadoResponse
// @Router       /api/registro/rol [post]
func (h *FlowHandler) Rol(c *fiber.Ctx) error {
	var in dto.RolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	e := GetSession(c)
	e.SubmitRole(c.Context(), in)
	return c.JSON(estado(e))
}

// Perfil godoc
// @Summary      Paso UserProfile: datos del titular
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PerfilRequest  true  "perfil del titular"
// @Success      200   {object}  dto.EstadoResponse
// @Router       /api/registro/perfil [post]
func (h *FlowHandler) Perfil(c *fiber.Ctx) error {
	var in dto.PerfilRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	e := GetSession(c)
	e.SubmitProfile(c.Context(), in)
	return c.JSON(estado(e))
}

// Negocio godoc
// @Summary      Paso BusinessData: perfil del negocio
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NegocioRequest  true  "nombre y categoría"
// @Success      200   {object}  dto.EstadoResponse
// @Router       /api/registro/negocio [post]
func (h *FlowHandler) Negocio(c *fiber.Ctx) error {
	var in dto.NegocioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	e := GetSession(c)
	e.SubmitBusinessData(c.Context(), in)
	return c.JSON(estado(e))
}

// Direccion godoc
// @Summary      Paso UserAddress: dirección (y sucursal para business)
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DireccionRequest  true  "dirección; omitir=true la salta (solo client)"
// @Success      200   {object}  dto.EstadoResponse
// @Router       /api/registro/direccion [post]
func (h *FlowHandler) Direccion(c *fiber.Ctx) error {
	var in dto.DireccionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	e := GetSession(c)
	e.SubmitAddress(c.Context(), in)
	return c.JSON(estado(e))
}

// IniciarVerificacion godoc
// @Summary      Inicia la verificación opcional de cuenta
// @Tags         registro
// @Produce      json
// @Success      200  {object}  dto.EstadoResponse
// @Router       /api/registro/verificacion/iniciar [post]
func (h *FlowHandler) IniciarVerificacion(c *fiber.Ctx) error {
	e := GetSession(c)
	e.StartVerification(c.Context())
	return c.JSON(estado(e))
}

// OmitirVerificacion godoc
// @Summary      Omite la verificación opcional de cuenta
// @Tags         registro
// @Produce      json
// @Success      200  {object}  dto.EstadoResponse
// @Router       /api/registro/verificacion/omitir [post]
func (h *FlowHandler) OmitirVerificacion(c *fiber.Ctx) error {
	e := GetSession(c)
	e.SkipVerification(c.Context())
	return c.JSON(estado(e))
}

// VerificacionNegocio godoc
// @Summary      Paso BusinessVerify: RUC y teléfono del negocio
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerificacionNegocioRequest  true  "ruc y telefono"
// @Success      200   {object}  dto.EstadoResponse
// @Router       /api/registro/verificacion-negocio [post]
func (h *FlowHandler) VerificacionNegocio(c *fiber.Ctx) error {
	var in dto.VerificacionNegocioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	e := GetSession(c)
	e.SubmitBusinessVerify(c.Context(), in)
	return c.JSON(estado(e))
}

// FinalizarVerificacion godoc
// @Summary      Aprueba la verificación (check fresco de email/proveedor)
// @Tags         registro
// @Produce      json
// @Success      200  {object}  dto.EstadoResponse
// @Router       /api/registro/verificacion/finalizar [post]
func (h *FlowHandler) FinalizarVerificacion(c *fiber.Ctx) error {
	e := GetSession(c)
	e.FinalizeVerification(c.Context())
	return c.JSON(estado(e))
}
