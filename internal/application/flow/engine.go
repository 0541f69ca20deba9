// Package flow implementa el motor del asistente de registro: posee la
// sesión del wizard (paso actual, formulario, flags de carga y error),
// ejecuta el envío de cada paso contra los adaptadores de persistencia y
// re-resuelve el paso con cada snapshot nuevo.
package flow

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vecindo/registro-api/internal/application/dto"
	"github.com/vecindo/registro-api/internal/domain/entity"
	flowdom "github.com/vecindo/registro-api/internal/domain/flow"
	"github.com/vecindo/registro-api/internal/domain/repository"
	"github.com/vecindo/registro-api/internal/domain/validation"
	"github.com/vecindo/registro-api/pkg/cedula"
	"github.com/vecindo/registro-api/pkg/logger"
)

// mensaje genérico cuando el adaptador falla sin mensaje propio.
const errAdaptador = "no se pudo guardar, intenta de nuevo"

// Deps dependencias del motor.
type Deps struct {
	Accounts   repository.AccountRepository
	Businesses repository.BusinessRepository
	Addresses  repository.AddressRepository
	Snapshots  SnapshotSource
	Checker    RegistrationChecker
	Codes      CodeValidator
	Log        *logger.Logger
	Now        func() time.Time // nil = time.Now
}

// State estado observable de la sesión en un instante.
type State struct {
	Step          flowdom.Step
	Loading       bool
	ErrorMsg      string
	InfoMsg       string
	AccessGranted bool
	Role          string
}

// Engine sesión del asistente para una cuenta. Los envíos se validan en
// local, persisten vía los puertos, refrescan el snapshot y re-resuelven el
// paso. Loading actúa como lock suave: la UI no debe reenviar mientras esté
// activo, pero el motor no serializa por la fuerza; un refresh cuyo token de
// generación quedó obsoleto se descarta sin tocar el estado.
type Engine struct {
	mu        sync.Mutex
	accountID string
	snapshot  *entity.Snapshot
	step      flowdom.Step
	form      FormState
	loading   bool
	errMsg    string
	infoMsg   string
	gen       uint64
	closed    bool

	deps Deps
	now  func() time.Time
}

// NewEngine construye la sesión del asistente para una cuenta.
func NewEngine(accountID string, deps Deps) *Engine {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	return &Engine{
		accountID: accountID,
		step:      flowdom.StepWelcome,
		deps:      deps,
		now:       now,
	}
}

// State devuelve una copia del estado observable.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	st := State{
		Step:     e.step,
		Loading:  e.loading,
		ErrorMsg: e.errMsg,
		InfoMsg:  e.infoMsg,
	}
	if e.snapshot != nil {
		st.AccessGranted = e.snapshot.AccessGranted
		st.Role = e.snapshot.Role
	}
	return st
}

// Form devuelve una copia del formulario.
func (e *Engine) Form() FormState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form
}

// Close marca la sesión como descartada: los refreshes en vuelo ya no
// escriben estado.
func (e *Engine) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
}

// NavigateTo permite la navegación explícita entre pasos informativos
// (ej. Welcome ↔ EmailLogin) sin pasar por el resolver.
func (e *Engine) NavigateTo(step flowdom.Step) bool {
	if !step.Informational() {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.step.Informational() || e.step == flowdom.StepNone {
		e.step = step
		return true
	}
	return false
}

// Cancel limpia el formulario y el error (cancelación explícita del usuario).
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.form.Reset()
	e.errMsg = ""
	e.infoMsg = ""
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh y resolución
// ──────────────────────────────────────────────────────────────────────────────

// Refresh trae el snapshot autoritativo (reemplazo completo) y re-resuelve el
// paso. Si el snapshot llega sin acceso pero con el registro mecánicamente
// completo, dispara una revalidación automática y vuelve a traer una vez.
func (e *Engine) Refresh(ctx context.Context) error {
	gen := e.begin()
	snap, err := e.deps.Snapshots.Fetch(e.accountID)
	if err != nil {
		e.fail(gen, errAdaptador)
		return err
	}
	e.apply(gen, snap)

	if e.shouldRevalidate(snap) {
		if res, err := e.deps.Checker.ValidateRegistration(ctx, e.accountID); err == nil && res.OK && res.Valid {
			if snap2, err := e.deps.Snapshots.Fetch(e.accountID); err == nil {
				e.apply(gen, snap2)
			}
		}
	}

	e.settle(gen)
	return nil
}

// shouldRevalidate decide si corre el pase automático de revalidación: solo
// cuando el resolver ya llegó a Pending y el backend aún reporta el registro
// como razón de bloqueo.
func (e *Engine) shouldRevalidate(snap *entity.Snapshot) bool {
	if snap == nil || snap.AccessGranted {
		return false
	}
	if flowdom.Resolve(snap) != flowdom.StepPending {
		return false
	}
	for _, r := range snap.GatingReasons {
		if r == entity.GatingRegistroIncompleto {
			return true
		}
	}
	return false
}

// begin abre una operación: enciende loading, limpia el error y devuelve el
// token de generación que protege contra respuestas obsoletas.
func (e *Engine) begin() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loading = true
	e.errMsg = ""
	e.gen++
	return e.gen
}

// apply escribe el snapshot y re-resuelve, solo si el token sigue vigente y
// la sesión no fue descartada.
func (e *Engine) apply(gen uint64, snap *entity.Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || gen != e.gen {
		return // respuesta obsoleta: la descarta sin tocar estado
	}
	e.snapshot = snap
	e.resolveLocked()
}

// resolveLocked re-ejecuta el resolver sobre el snapshot actual. StepNone
// conserva el paso vigente (estados verified/skipped).
func (e *Engine) resolveLocked() {
	resolved := flowdom.Resolve(e.snapshot)
	if resolved != flowdom.StepNone {
		e.step = resolved
	} else if e.step == flowdom.StepNone {
		e.step = flowdom.StepWelcome
	}
}

func (e *Engine) settle(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if gen == e.gen {
		e.loading = false
	}
}

// fail cierra la operación con un mensaje de error; el paso no cambia.
func (e *Engine) fail(gen uint64, msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || gen != e.gen {
		return
	}
	e.errMsg = msg
	e.loading = false
}

// localError registra un error de validación local: nunca llega a la red y
// el paso no cambia.
func (e *Engine) localError(err error) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errMsg = err.Error()
	return false
}

// refreshAfterPersist refresca tras una persistencia exitosa. Un fallo del
// fetch aquí no revierte el envío: deja el error visible y conserva el paso.
func (e *Engine) refreshAfterPersist(gen uint64) bool {
	snap, err := e.deps.Snapshots.Fetch(e.accountID)
	if err != nil {
		e.deps.Log.Warn().Err(err).Str("account_id", e.accountID).Msg("refresh tras persistir")
		e.settle(gen)
		return true
	}
	e.apply(gen, snap)
	e.settle(gen)
	return true
}

// ──────────────────────────────────────────────────────────────────────────────
// Paso RoleSelect
// ──────────────────────────────────────────────────────────────────────────────

// SubmitRole persiste el rol elegido y el estado inicial de la cuenta:
// pending para business, active para client. Para business exige la
// validación previa del código de registro contra el backend. Elegir rol
// limpia el formulario (cambio de rol).
func (e *Engine) SubmitRole(ctx context.Context, in dto.RolRequest) bool {
	e.mu.Lock()
	e.form.Rol = in
	e.mu.Unlock()

	if in.Role != entity.RoleClient && in.Role != entity.RoleBusiness {
		return e.localError(errCampos("rol inválido: debe ser client o business"))
	}

	status := entity.StatusActive
	if in.Role == entity.RoleBusiness {
		status = entity.StatusPending
		if err := validation.ValidarCodigoRegistro(in.Codigo); err != nil {
			return e.localError(err)
		}
	}

	gen := e.begin()

	if in.Role == entity.RoleBusiness {
		if err := e.deps.Codes.ValidateCode(ctx, in.Codigo); err != nil {
			e.fail(gen, err.Error())
			return false
		}
	}

	if err := e.deps.Accounts.UpdateRole(e.accountID, in.Role, status); err != nil {
		e.fail(gen, errAdaptador)
		return false
	}

	e.mu.Lock()
	e.form.Reset()
	e.mu.Unlock()
	return e.refreshAfterPersist(gen)
}

// ──────────────────────────────────────────────────────────────────────────────
// Paso UserProfile
// ──────────────────────────────────────────────────────────────────────────────

// SubmitProfile valida y persiste el perfil del titular. La edad mínima
// depende del rol del snapshot vigente: 16 para client, 18 para business,
// con aritmética de calendario.
func (e *Engine) SubmitProfile(ctx context.Context, in dto.PerfilRequest) bool {
	e.mu.Lock()
	e.form.Perfil = in
	role := entity.RoleClient
	if e.snapshot != nil && e.snapshot.Role != entity.RoleUnset {
		role = e.snapshot.Role
	}
	e.mu.Unlock()

	if in.Nombre == "" || in.Apellido == "" || in.Genero == "" {
		return e.localError(errCampos("nombre, apellido y género son requeridos"))
	}
	fecha, err := time.Parse("2006-01-02", in.FechaNacimiento)
	if err != nil {
		return e.localError(errCampos("fecha de nacimiento inválida (formato 2006-01-02)"))
	}
	if err := validation.ValidarFechaNacimiento(fecha, role, e.now()); err != nil {
		return e.localError(err)
	}
	telefono := ""
	if in.Telefono != "" {
		telefono, err = validation.NormalizarTelefono(in.Telefono)
		if err != nil {
			return e.localError(err)
		}
	}

	gen := e.begin()

	cuenta, err := e.deps.Accounts.GetByID(e.accountID)
	if err != nil || cuenta == nil {
		e.fail(gen, errAdaptador)
		return false
	}
	cuenta.Nombre = in.Nombre
	cuenta.Apellido = in.Apellido
	cuenta.Genero = in.Genero
	cuenta.FechaNacimiento = &fecha
	if telefono != "" {
		cuenta.Telefono = telefono
	}
	cuenta.UpdatedAt = e.now()
	if err := e.deps.Accounts.UpdateProfile(cuenta); err != nil {
		e.fail(gen, errAdaptador)
		return false
	}
	return e.refreshAfterPersist(gen)
}

// ──────────────────────────────────────────────────────────────────────────────
// Paso BusinessData
// ──────────────────────────────────────────────────────────────────────────────

// SubmitBusinessData valida y hace upsert del perfil de negocio.
func (e *Engine) SubmitBusinessData(ctx context.Context, in dto.NegocioRequest) bool {
	e.mu.Lock()
	e.form.Negocio = in
	e.mu.Unlock()

	if in.Nombre == "" || in.Categoria == "" {
		return e.localError(errCampos("nombre y categoría del negocio son requeridos"))
	}

	gen := e.begin()

	now := e.now()
	b := &entity.Business{
		ID:        uuid.New().String(),
		AccountID: e.accountID,
		Nombre:    in.Nombre,
		Categoria: in.Categoria,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := e.deps.Businesses.Upsert(b); err != nil {
		e.fail(gen, errAdaptador)
		return false
	}
	return e.refreshAfterPersist(gen)
}

// ──────────────────────────────────────────────────────────────────────────────
// Paso UserAddress (el handler más con estado del asistente)
// ──────────────────────────────────────────────────────────────────────────────

// SubmitAddress bifurca por rol. Client con Omitir solo marca el flag de
// dirección omitida. Business además hace upsert de la sucursal única (estado
// draft, horario por defecto si no llega ninguno) y luego ejecuta el check
// externo de completitud: si este reporta incompleto, el error local se
// llena con su mensaje pero el snapshot igual se refresca (soft-fail: la
// persistencia funcionó, la completitud no).
func (e *Engine) SubmitAddress(ctx context.Context, in dto.DireccionRequest) bool {
	e.mu.Lock()
	e.form.Direccion = in
	role := entity.RoleClient
	if e.snapshot != nil && e.snapshot.Role != entity.RoleUnset {
		role = e.snapshot.Role
	}
	e.mu.Unlock()

	if role == entity.RoleClient && in.Omitir {
		gen := e.begin()
		if err := e.deps.Accounts.SetAddressSkipped(e.accountID, true); err != nil {
			e.fail(gen, errAdaptador)
			return false
		}
		return e.refreshAfterPersist(gen)
	}

	if in.Calles == "" || in.Sector == "" || in.ProvinciaID == "" || in.CantonID == "" {
		return e.localError(errCampos("calles, sector, provincia y cantón son requeridos"))
	}
	lat, err := decimal.NewFromString(in.Lat)
	if err != nil {
		return e.localError(errCampos("latitud inválida"))
	}
	lng, err := decimal.NewFromString(in.Lng)
	if err != nil {
		return e.localError(errCampos("longitud inválida"))
	}
	if lat.IsZero() && lng.IsZero() {
		return e.localError(errCampos("selecciona la ubicación en el mapa"))
	}

	horarios := horariosFromDTO(in.Horarios)
	if role == entity.RoleBusiness && len(horarios) > 0 {
		if err := validation.ValidarHorarios(horarios); err != nil {
			return e.localError(err)
		}
	}

	gen := e.begin()

	now := e.now()
	addr := &entity.Address{
		ID:          uuid.New().String(),
		AccountID:   e.accountID,
		Calles:      in.Calles,
		Ciudad:      in.Ciudad,
		Sector:      in.Sector,
		ProvinciaID: in.ProvinciaID,
		CantonID:    in.CantonID,
		ParroquiaID: in.ParroquiaID,
		Parroquia:   in.Parroquia,
		Lat:         lat,
		Lng:         lng,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := e.deps.Addresses.UpsertAddress(addr); err != nil {
		e.fail(gen, errAdaptador)
		return false
	}

	if role == entity.RoleBusiness {
		if len(horarios) == 0 {
			horarios = entity.DefaultHorarios()
		}
		tipo := in.BranchTipo
		if tipo == "" {
			tipo = entity.BranchTipoLocal
		}
		branch := &entity.Branch{
			ID:        uuid.New().String(),
			AccountID: e.accountID,
			Tipo:      tipo,
			Status:    entity.BranchDraft,
			Horarios:  horarios,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := e.deps.Addresses.UpsertBranch(branch); err != nil {
			e.fail(gen, errAdaptador)
			return false
		}

		// Check de completitud: soft-fail deliberado. El mensaje queda
		// visible pero el refresh corre igual, así el resolver mantiene la
		// navegación veraz.
		res, err := e.deps.Checker.ValidateRegistration(ctx, e.accountID)
		switch {
		case err != nil:
			e.setSoftError(gen, errAdaptador)
		case !res.OK || !res.Valid:
			msg := res.Message
			if msg == "" {
				msg = "el registro aún está incompleto"
			}
			e.setSoftError(gen, msg)
		}
	}

	return e.refreshAfterPersist(gen)
}

// setSoftError deja el mensaje sin apagar loading: el refresh que sigue
// completa la operación.
func (e *Engine) setSoftError(gen uint64, msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || gen != e.gen {
		return
	}
	e.errMsg = msg
}

func horariosFromDTO(in []dto.HorarioDTO) []entity.Horario {
	if len(in) == 0 {
		return nil
	}
	out := make([]entity.Horario, 0, len(in))
	for _, h := range in {
		out = append(out, entity.Horario{Dia: time.Weekday(h.Dia), Desde: h.Desde, Hasta: h.Hasta})
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Verificación
// ──────────────────────────────────────────────────────────────────────────────

// StartVerification marca la verificación como en curso y re-resuelve de
// inmediato con un parche optimista del snapshot, sin esperar el round trip
// del refresh, para que la UI avance sin pausa visible.
func (e *Engine) StartVerification(ctx context.Context) bool {
	gen := e.begin()
	if err := e.deps.Accounts.UpdateVerificationStatus(e.accountID, entity.VerificationInProgress); err != nil {
		e.fail(gen, errAdaptador)
		return false
	}

	e.mu.Lock()
	if !e.closed && gen == e.gen && e.snapshot != nil {
		patched := e.snapshot.Clone()
		patched.User.VerificationStatus = entity.VerificationInProgress
		e.snapshot = patched
		e.resolveLocked()
	}
	e.mu.Unlock()

	return e.refreshAfterPersist(gen)
}

// SkipVerification marca la verificación como omitida y refresca.
func (e *Engine) SkipVerification(ctx context.Context) bool {
	gen := e.begin()
	if err := e.deps.Accounts.UpdateVerificationStatus(e.accountID, entity.VerificationSkipped); err != nil {
		e.fail(gen, errAdaptador)
		return false
	}
	return e.refreshAfterPersist(gen)
}

// SubmitBusinessVerify valida RUC (checksum de cédula + sufijo 001) y
// teléfono, y persiste ambos.
func (e *Engine) SubmitBusinessVerify(ctx context.Context, in dto.VerificacionNegocioRequest) bool {
	e.mu.Lock()
	e.form.VerifRUC = in
	e.mu.Unlock()

	if err := cedula.ValidarRUC(in.RUC); err != nil {
		return e.localError(err)
	}
	telefono, err := validation.NormalizarTelefono(in.Telefono)
	if err != nil {
		return e.localError(err)
	}

	gen := e.begin()
	if err := e.deps.Businesses.SetRUC(e.accountID, in.RUC); err != nil {
		e.fail(gen, errAdaptador)
		return false
	}
	if err := e.deps.Accounts.SetTelefono(e.accountID, telefono); err != nil {
		e.fail(gen, errAdaptador)
		return false
	}
	return e.refreshAfterPersist(gen)
}

// FinalizeVerification aprueba la verificación. Consulta el estado fresco de
// la cuenta (nunca del cache) y rechaza si el único método de inicio de
// sesión es email y el email sigue sin confirmar en ese instante exacto: un
// flag de confirmación viejo en el snapshot no deja pasar la verificación.
func (e *Engine) FinalizeVerification(ctx context.Context) bool {
	gen := e.begin()

	status, err := e.deps.Checker.OnboardingCheck(ctx, e.accountID)
	if err != nil || !status.OK {
		e.fail(gen, errAdaptador)
		return false
	}
	if soloEmail(status) && !status.EmailConfirmed {
		// Soft-fail: el mensaje explica el check fallido y el refresh
		// mantiene la navegación veraz.
		e.setSoftError(gen, "confirma tu email para completar la verificación")
		e.refreshAfterPersist(gen)
		return false
	}

	if err := e.deps.Accounts.UpdateVerificationStatus(e.accountID, entity.VerificationVerified); err != nil {
		e.fail(gen, errAdaptador)
		return false
	}

	// verified es terminal: el resolver deja de forzar pasos, así que el
	// motor fija la pantalla de cierre explícitamente.
	e.mu.Lock()
	if !e.closed && gen == e.gen {
		e.step = flowdom.StepAccountVerifyReady
	}
	e.mu.Unlock()

	return e.refreshAfterPersist(gen)
}

func soloEmail(s *OnboardingStatus) bool {
	if s.Provider != entity.ProviderEmail && s.Provider != "" {
		return false
	}
	for _, p := range s.Providers {
		if p != entity.ProviderEmail {
			return false
		}
	}
	return true
}

// errCampos construye un error de validación local con mensaje fijo.
type errCampos string

func (e errCampos) Error() string { return string(e) }
