package flow_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecindo/registro-api/internal/application/dto"
	"github.com/vecindo/registro-api/internal/application/flow"
	"github.com/vecindo/registro-api/internal/domain/entity"
	flowdom "github.com/vecindo/registro-api/internal/domain/flow"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un solo store que implementa los puertos de persistencia
// y la fuente de snapshots, con semántica de upsert por account_id.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu      sync.Mutex
	account *entity.Account

	businesses map[string]*entity.Business
	addresses  map[string]*entity.Address
	branches   map[string]*entity.Branch

	accessGranted bool
	gating        []string

	failUpdate  error      // fuerza fallo de persistencia
	fetchGate   chan struct{} // si no es nil, Fetch bloquea hasta recibir
	fetchCalls  int
}

func newFakeStore(acc *entity.Account) *fakeStore {
	return &fakeStore{
		account:    acc,
		businesses: make(map[string]*entity.Business),
		addresses:  make(map[string]*entity.Address),
		branches:   make(map[string]*entity.Branch),
	}
}

// AccountRepository

func (s *fakeStore) Create(a *entity.Account) error { s.account = a; return nil }

func (s *fakeStore) GetByID(id string) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil || s.account.ID != id {
		return nil, nil
	}
	cp := *s.account
	return &cp, nil
}

func (s *fakeStore) GetByEmail(string) (*entity.Account, error) { return nil, nil }

func (s *fakeStore) UpdateProfile(a *entity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failUpdate != nil {
		return s.failUpdate
	}
	cp := *a
	s.account = &cp
	return nil
}

func (s *fakeStore) UpdateRole(id, role, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failUpdate != nil {
		return s.failUpdate
	}
	s.account.Role = role
	s.account.Status = status
	return nil
}

func (s *fakeStore) UpdateVerificationStatus(id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account.VerificationStatus = status
	return nil
}

func (s *fakeStore) SetAddressSkipped(id string, skipped bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account.AddressSkipped = skipped
	return nil
}

func (s *fakeStore) SetTelefono(id, telefono string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account.Telefono = telefono
	return nil
}

// BusinessRepository

func (s *fakeStore) Upsert(b *entity.Business) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failUpdate != nil {
		return s.failUpdate
	}
	if prev, ok := s.businesses[b.AccountID]; ok {
		prev.Nombre, prev.Categoria = b.Nombre, b.Categoria
		return nil
	}
	cp := *b
	s.businesses[b.AccountID] = &cp
	return nil
}

func (s *fakeStore) GetByAccount(accountID string) (*entity.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.businesses[accountID], nil
}

func (s *fakeStore) SetRUC(accountID, ruc string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.businesses[accountID]; ok {
		b.RUC = ruc
		return nil
	}
	return errors.New("negocio no existe")
}

// AddressRepository: upsert por account_id, jamás duplica filas.

func (s *fakeStore) UpsertAddress(a *entity.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failUpdate != nil {
		return s.failUpdate
	}
	if prev, ok := s.addresses[a.AccountID]; ok {
		id := prev.ID
		cp := *a
		cp.ID = id // update de la fila existente, conserva el ID
		s.addresses[a.AccountID] = &cp
		return nil
	}
	cp := *a
	s.addresses[a.AccountID] = &cp
	return nil
}

// fakeAddressRepo envuelve al store para poder exponer el GetByAccount de
// direcciones sin chocar con el de negocios.
type fakeAddressRepo struct{ *fakeStore }

func (r fakeAddressRepo) GetByAccount(accountID string) (*entity.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addresses[accountID], nil
}

func (s *fakeStore) UpsertBranch(b *entity.Branch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.branches[b.AccountID]; ok {
		cp := *b
		cp.ID = prev.ID
		s.branches[b.AccountID] = &cp
		return nil
	}
	cp := *b
	s.branches[b.AccountID] = &cp
	return nil
}

func (s *fakeStore) GetBranchByAccount(accountID string) (*entity.Branch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.branches[accountID], nil
}

// SnapshotSource: compone el snapshot desde las filas vigentes.

func (s *fakeStore) Fetch(accountID string) (*entity.Snapshot, error) {
	if s.fetchGate != nil {
		<-s.fetchGate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchCalls++
	if s.account == nil || s.account.ID != accountID {
		return nil, nil
	}
	a := s.account
	snap := &entity.Snapshot{
		AccountID:     a.ID,
		Role:          a.Role,
		AccessGranted: s.accessGranted,
		GatingReasons: append([]string(nil), s.gating...),
		User: entity.SnapshotUser{
			HasPassword:        a.HasPassword(),
			EmailConfirmed:     a.EmailConfirmed,
			VerificationStatus: a.VerificationStatus,
			Provider:           a.Provider,
			Providers:          append([]string(nil), a.Providers...),
			Telefono:           a.Telefono,
			Nombre:             a.Nombre,
			Apellido:           a.Apellido,
			Genero:             a.Genero,
			FechaNacimiento:    a.FechaNacimiento,
			Email:              a.Email,
		},
		FetchedAt: time.Now(),
	}
	if b, ok := s.businesses[a.ID]; ok {
		snap.Business = &entity.SnapshotBusiness{Nombre: b.Nombre, Categoria: b.Categoria, RUC: b.RUC}
	}
	if ad, ok := s.addresses[a.ID]; ok {
		snap.Address = &entity.SnapshotAddress{
			Calles: ad.Calles, Ciudad: ad.Ciudad, Sector: ad.Sector,
			ProvinciaID: ad.ProvinciaID, CantonID: ad.CantonID,
			ParroquiaID: ad.ParroquiaID, Parroquia: ad.Parroquia,
			Lat: ad.Lat, Lng: ad.Lng,
			Skipped: a.AddressSkipped,
		}
	} else if a.AddressSkipped {
		snap.Address = &entity.SnapshotAddress{Skipped: true}
	}
	if br, ok := s.branches[a.ID]; ok {
		snap.Branch = &entity.SnapshotBranch{
			Tipo: br.Tipo, Status: br.Status,
			Horarios: append([]entity.Horario(nil), br.Horarios...),
		}
	}
	return snap, nil
}

// Checker y validador de códigos.

type fakeChecker struct {
	mu          sync.Mutex
	validate    *flow.CheckResult
	validateErr error
	onboarding  *flow.OnboardingStatus
	// efecto lateral sobre el store al validar (ej: conceder acceso)
	onValidate func()
	calls      int
}

func (c *fakeChecker) ValidateRegistration(context.Context, string) (*flow.CheckResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.onValidate != nil {
		c.onValidate()
	}
	if c.validateErr != nil {
		return nil, c.validateErr
	}
	if c.validate == nil {
		return &flow.CheckResult{OK: true, Valid: true}, nil
	}
	return c.validate, nil
}

func (c *fakeChecker) OnboardingCheck(context.Context, string) (*flow.OnboardingStatus, error) {
	if c.onboarding == nil {
		return &flow.OnboardingStatus{OK: true, Provider: entity.ProviderEmail, Providers: []string{entity.ProviderEmail}, EmailConfirmed: true}, nil
	}
	return c.onboarding, nil
}

type fakeCodes struct{ err error }

func (c *fakeCodes) ValidateCode(context.Context, string) error { return c.err }

// ──────────────────────────────────────────────────────────────────────────────
// Armado
// ──────────────────────────────────────────────────────────────────────────────

// hoy fijo para que el age gate sea reproducible.
var hoy = time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

func cuentaNueva() *entity.Account {
	return &entity.Account{
		ID:           "acc-1",
		Email:        "ana@example.com",
		PasswordHash: "$2a$10$hash",
		Provider:     entity.ProviderEmail,
		Providers:    []string{entity.ProviderEmail},
		Status:       entity.StatusActive,
	}
}

func armar(t *testing.T, acc *entity.Account) (*flow.Engine, *fakeStore, *fakeChecker) {
	t.Helper()
	store := newFakeStore(acc)
	checker := &fakeChecker{validate: &flow.CheckResult{OK: true, Valid: false}}
	eng := flow.NewEngine(acc.ID, flow.Deps{
		Accounts:   store,
		Businesses: store,
		Addresses:  fakeAddressRepo{store},
		Snapshots:  store,
		Checker:    checker,
		Codes:      &fakeCodes{},
		Now:        func() time.Time { return hoy },
	})
	return eng, store, checker
}

func direccionValida() dto.DireccionRequest {
	return dto.DireccionRequest{
		Calles:      "Av. Amazonas y Colón",
		Ciudad:      "Quito",
		Sector:      "La Mariscal",
		ProvinciaID: "17",
		CantonID:    "1701",
		ParroquiaID: "170150",
		Lat:         "-0.1962",
		Lng:         "-78.4897",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario end-to-end del cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestEngine_EscenarioCliente(t *testing.T) {
	ctx := context.Background()
	eng, _, _ := armar(t, cuentaNueva())

	require.NoError(t, eng.Refresh(ctx))
	assert.Equal(t, flowdom.StepRoleSelect, eng.State().Step)

	// Elegir rol client → el snapshot refrescado lleva a UserProfile.
	require.True(t, eng.SubmitRole(ctx, dto.RolRequest{Role: entity.RoleClient}))
	assert.Equal(t, flowdom.StepUserProfile, eng.State().Step)

	// Perfil con fecha de nacimiento 20 años atrás → UserAddress.
	require.True(t, eng.SubmitProfile(ctx, dto.PerfilRequest{
		Nombre: "Ana", Apellido: "Mora", Genero: "F",
		FechaNacimiento: "2006-08-30",
	}))
	assert.Equal(t, flowdom.StepUserAddress, eng.State().Step)

	// Dirección con coordenadas válidas → Pending: el cliente no necesita
	// verificación para llegar al acceso base.
	require.True(t, eng.SubmitAddress(ctx, direccionValida()))
	st := eng.State()
	assert.Equal(t, flowdom.StepPending, st.Step)
	assert.False(t, st.Loading)
	assert.Empty(t, st.ErrorMsg)
}

// ──────────────────────────────────────────────────────────────────────────────
// Age gate
// ──────────────────────────────────────────────────────────────────────────────

func TestEngine_AgeGate(t *testing.T) {
	ctx := context.Background()
	acc := cuentaNueva()
	acc.Role = entity.RoleClient
	eng, store, _ := armar(t, acc)
	require.NoError(t, eng.Refresh(ctx))

	// 15 años → rechazo local con error de edad; el paso no cambia y no hay
	// llamada de red.
	fetchesAntes := store.fetchCalls
	ok := eng.SubmitProfile(ctx, dto.PerfilRequest{
		Nombre: "Ana", Apellido: "Mora", Genero: "F",
		FechaNacimiento: "2011-01-10",
	})
	assert.False(t, ok)
	st := eng.State()
	assert.Equal(t, flowdom.StepUserProfile, st.Step)
	assert.Contains(t, st.ErrorMsg, "16")
	assert.Equal(t, fetchesAntes, store.fetchCalls, "una validación local no debe tocar adaptadores")

	// 16 años cumplidos exactamente hoy → aceptado.
	require.True(t, eng.SubmitProfile(ctx, dto.PerfilRequest{
		Nombre: "Ana", Apellido: "Mora", Genero: "F",
		FechaNacimiento: "2010-08-30",
	}))
	assert.Equal(t, flowdom.StepUserAddress, eng.State().Step)
}

func TestEngine_AgeGateBusiness(t *testing.T) {
	ctx := context.Background()
	acc := cuentaNueva()
	acc.Role = entity.RoleBusiness
	eng, _, _ := armar(t, acc)
	require.NoError(t, eng.Refresh(ctx))

	// 17 años: suficiente para client, no para business.
	ok := eng.SubmitProfile(ctx, dto.PerfilRequest{
		Nombre: "Ana", Apellido: "Mora", Genero: "F",
		FechaNacimiento: "2009-01-10",
	})
	assert.False(t, ok)
	assert.Contains(t, eng.State().ErrorMsg, "18")
}

// ──────────────────────────────────────────────────────────────────────────────
// Upsert idempotente
// ──────────────────────────────────────────────────────────────────────────────

func TestEngine_DireccionUpsertIdempotente(t *testing.T) {
	ctx := context.Background()
	acc := cuentaNueva()
	acc.Role = entity.RoleClient
	acc.Nombre, acc.Apellido, acc.Genero = "Ana", "Mora", "F"
	f := hoy.AddDate(-20, 0, 0)
	acc.FechaNacimiento = &f
	eng, store, _ := armar(t, acc)
	require.NoError(t, eng.Refresh(ctx))

	require.True(t, eng.SubmitAddress(ctx, direccionValida()))
	require.Len(t, store.addresses, 1)
	primeraID := store.addresses[acc.ID].ID

	// Segundo envío idéntico: actualiza, no duplica.
	require.True(t, eng.SubmitAddress(ctx, direccionValida()))
	require.Len(t, store.addresses, 1)
	assert.Equal(t, primeraID, store.addresses[acc.ID].ID, "la segunda llamada actualiza la misma fila")
}

// ──────────────────────────────────────────────────────────────────────────────
// Soft-fail del paso de dirección (business)
// ──────────────────────────────────────────────────────────────────────────────

func businessListoParaDireccion() *entity.Account {
	acc := cuentaNueva()
	acc.Role = entity.RoleBusiness
	acc.Status = entity.StatusPending
	acc.Nombre, acc.Apellido, acc.Genero = "Ana", "Mora", "F"
	f := time.Date(2000, time.May, 2, 0, 0, 0, 0, time.UTC)
	acc.FechaNacimiento = &f
	return acc
}

func TestEngine_DireccionBusinessSoftFail(t *testing.T) {
	ctx := context.Background()
	acc := businessListoParaDireccion()
	eng, store, checker := armar(t, acc)
	store.businesses[acc.ID] = &entity.Business{
		ID: "biz-1", AccountID: acc.ID,
		Nombre: "Panadería La Espiga", Categoria: entity.CategoriaAlimentos,
	}
	checker.validate = &flow.CheckResult{OK: true, Valid: false, Message: "faltan documentos del negocio"}
	require.NoError(t, eng.Refresh(ctx))
	require.Equal(t, flowdom.StepUserAddress, eng.State().Step)

	// Persistencia exitosa + check incompleto: el error queda visible pero
	// el snapshot se refresca igual y el resolver avanza a Pending.
	ok := eng.SubmitAddress(ctx, direccionValida())
	assert.True(t, ok)
	st := eng.State()
	assert.Equal(t, "faltan documentos del negocio", st.ErrorMsg)
	assert.Equal(t, flowdom.StepPending, st.Step, "el resolver no se queda atascado en la dirección")
	assert.False(t, st.Loading)

	// La sucursal se creó en draft con el horario por defecto.
	br := store.branches[acc.ID]
	require.NotNil(t, br)
	assert.Equal(t, entity.BranchDraft, br.Status)
	assert.Len(t, br.Horarios, 5)
	assert.Equal(t, "10:00", br.Horarios[0].Desde)
	assert.Equal(t, "18:00", br.Horarios[0].Hasta)
}

func TestEngine_ClienteOmiteDireccion(t *testing.T) {
	ctx := context.Background()
	acc := cuentaNueva()
	acc.Role = entity.RoleClient
	acc.Nombre, acc.Apellido, acc.Genero = "Ana", "Mora", "F"
	f := hoy.AddDate(-30, 0, 0)
	acc.FechaNacimiento = &f
	eng, store, _ := armar(t, acc)
	require.NoError(t, eng.Refresh(ctx))

	require.True(t, eng.SubmitAddress(ctx, dto.DireccionRequest{Omitir: true}))
	assert.True(t, store.account.AddressSkipped)
	assert.Equal(t, flowdom.StepPending, eng.State().Step)
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores de adaptador
// ──────────────────────────────────────────────────────────────────────────────

func TestEngine_ErrorDeAdaptador(t *testing.T) {
	ctx := context.Background()
	acc := cuentaNueva()
	acc.Role = entity.RoleClient
	eng, store, _ := armar(t, acc)
	require.NoError(t, eng.Refresh(ctx))

	store.failUpdate = errors.New("conexión rechazada")
	ok := eng.SubmitProfile(ctx, dto.PerfilRequest{
		Nombre: "Ana", Apellido: "Mora", Genero: "F",
		FechaNacimiento: "1999-04-01",
	})
	assert.False(t, ok)
	st := eng.State()
	assert.NotEmpty(t, st.ErrorMsg)
	assert.False(t, st.Loading)
	assert.Equal(t, flowdom.StepUserProfile, st.Step, "el paso no cambia ante fallo del adaptador")

	// Reintento tras recuperarse el adaptador.
	store.failUpdate = nil
	assert.True(t, eng.SubmitProfile(ctx, dto.PerfilRequest{
		Nombre: "Ana", Apellido: "Mora", Genero: "F",
		FechaNacimiento: "1999-04-01",
	}))
	assert.Equal(t, flowdom.StepUserAddress, eng.State().Step)
}

// ──────────────────────────────────────────────────────────────────────────────
// Selección de rol business
// ──────────────────────────────────────────────────────────────────────────────

func TestEngine_RolBusinessRequiereCodigo(t *testing.T) {
	ctx := context.Background()
	eng, store, _ := armar(t, cuentaNueva())
	require.NoError(t, eng.Refresh(ctx))

	// Forma inválida: rechazo local.
	assert.False(t, eng.SubmitRole(ctx, dto.RolRequest{Role: entity.RoleBusiness, Codigo: "nada"}))
	assert.Equal(t, entity.RoleUnset, store.account.Role)

	// Forma válida → valida contra el backend y persiste rol + status pending.
	require.True(t, eng.SubmitRole(ctx, dto.RolRequest{Role: entity.RoleBusiness, Codigo: "VEC-A2B3-C4D5"}))
	assert.Equal(t, entity.RoleBusiness, store.account.Role)
	assert.Equal(t, entity.StatusPending, store.account.Status)
}

func TestEngine_RolBusinessCodigoRechazado(t *testing.T) {
	ctx := context.Background()
	acc := cuentaNueva()
	store := newFakeStore(acc)
	eng := flow.NewEngine(acc.ID, flow.Deps{
		Accounts: store, Businesses: store, Addresses: fakeAddressRepo{store}, Snapshots: store,
		Checker: &fakeChecker{},
		Codes:   &fakeCodes{err: errors.New("código expirado")},
		Now:     func() time.Time { return hoy },
	})
	require.NoError(t, eng.Refresh(ctx))

	ok := eng.SubmitRole(ctx, dto.RolRequest{Role: entity.RoleBusiness, Codigo: "VEC-A2B3-C4D5"})
	assert.False(t, ok)
	assert.Equal(t, "código expirado", eng.State().ErrorMsg)
	assert.Equal(t, entity.RoleUnset, store.account.Role)
}

func TestEngine_RolClientNoPideCodigo(t *testing.T) {
	ctx := context.Background()
	eng, store, _ := armar(t, cuentaNueva())
	require.NoError(t, eng.Refresh(ctx))

	require.True(t, eng.SubmitRole(ctx, dto.RolRequest{Role: entity.RoleClient}))
	assert.Equal(t, entity.StatusActive, store.account.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Verificación
// ──────────────────────────────────────────────────────────────────────────────

func clienteConAcceso() *entity.Account {
	acc := cuentaNueva()
	acc.Role = entity.RoleClient
	acc.Nombre, acc.Apellido, acc.Genero = "Ana", "Mora", "F"
	f := time.Date(2000, time.May, 2, 0, 0, 0, 0, time.UTC)
	acc.FechaNacimiento = &f
	return acc
}

func TestEngine_StartVerification_AvanceOptimista(t *testing.T) {
	ctx := context.Background()
	acc := clienteConAcceso()
	eng, store, _ := armar(t, acc)
	store.accessGranted = true
	store.addresses[acc.ID] = &entity.Address{ID: "addr-1", AccountID: acc.ID}
	store.account.AddressSkipped = true
	require.NoError(t, eng.Refresh(ctx))
	require.Equal(t, flowdom.StepAccountVerifyPrompt, eng.State().Step)

	require.True(t, eng.StartVerification(ctx))
	// Cuenta solo-email sin confirmar → VerifyEmail.
	assert.Equal(t, flowdom.StepVerifyEmail, eng.State().Step)
}

func TestEngine_SkipVerification(t *testing.T) {
	ctx := context.Background()
	acc := clienteConAcceso()
	eng, store, _ := armar(t, acc)
	store.accessGranted = true
	store.account.AddressSkipped = true
	require.NoError(t, eng.Refresh(ctx))

	require.True(t, eng.SkipVerification(ctx))
	assert.Equal(t, entity.VerificationSkipped, store.account.VerificationStatus)
	// skipped no fuerza paso: se conserva el vigente.
	assert.Equal(t, flowdom.StepAccountVerifyPrompt, eng.State().Step)
}

func TestEngine_FinalizeRechazaEmailSinConfirmar(t *testing.T) {
	ctx := context.Background()
	acc := clienteConAcceso()
	acc.VerificationStatus = entity.VerificationInProgress
	acc.EmailConfirmed = true // flag viejo del snapshot: el check fresco manda
	eng, store, checker := armar(t, acc)
	store.accessGranted = true
	store.account.AddressSkipped = true
	checker.onboarding = &flow.OnboardingStatus{
		OK: true, Provider: entity.ProviderEmail,
		Providers: []string{entity.ProviderEmail}, EmailConfirmed: false,
	}
	require.NoError(t, eng.Refresh(ctx))

	ok := eng.FinalizeVerification(ctx)
	assert.False(t, ok)
	assert.NotEqual(t, entity.VerificationVerified, store.account.VerificationStatus)
	assert.Contains(t, eng.State().ErrorMsg, "confirma tu email")
}

func TestEngine_FinalizeAprueba(t *testing.T) {
	ctx := context.Background()
	acc := clienteConAcceso()
	acc.VerificationStatus = entity.VerificationInProgress
	acc.EmailConfirmed = true
	eng, store, checker := armar(t, acc)
	store.accessGranted = true
	store.account.AddressSkipped = true
	checker.onboarding = &flow.OnboardingStatus{
		OK: true, Provider: entity.ProviderEmail,
		Providers: []string{entity.ProviderEmail}, EmailConfirmed: true,
	}
	require.NoError(t, eng.Refresh(ctx))

	require.True(t, eng.FinalizeVerification(ctx))
	assert.Equal(t, entity.VerificationVerified, store.account.VerificationStatus)
	assert.Equal(t, flowdom.StepAccountVerifyReady, eng.State().Step)
}

func TestEngine_BusinessVerify(t *testing.T) {
	ctx := context.Background()
	acc := businessListoParaDireccion()
	acc.VerificationStatus = entity.VerificationInProgress
	acc.EmailConfirmed = true
	eng, store, _ := armar(t, acc)
	store.accessGranted = true
	store.businesses[acc.ID] = &entity.Business{ID: "biz-1", AccountID: acc.ID, Nombre: "La Espiga", Categoria: entity.CategoriaAlimentos}
	require.NoError(t, eng.Refresh(ctx))
	require.Equal(t, flowdom.StepBusinessVerify, eng.State().Step)

	// RUC con checksum inválido: rechazo local.
	assert.False(t, eng.SubmitBusinessVerify(ctx, dto.VerificacionNegocioRequest{RUC: "1710034066001", Telefono: "0991234567"}))

	// RUC válido → persiste y el resolver avanza (email confirmado → método).
	require.True(t, eng.SubmitBusinessVerify(ctx, dto.VerificacionNegocioRequest{RUC: "1710034065001", Telefono: "099 123 4567"}))
	assert.Equal(t, "1710034065001", store.businesses[acc.ID].RUC)
	assert.Equal(t, "0991234567", store.account.Telefono)
	assert.Equal(t, flowdom.StepAccountVerifyMethod, eng.State().Step)
}

// ──────────────────────────────────────────────────────────────────────────────
// Revalidación automática vía gating reasons
// ──────────────────────────────────────────────────────────────────────────────

func TestEngine_RevalidacionAutomatica(t *testing.T) {
	ctx := context.Background()
	acc := clienteConAcceso()
	eng, store, checker := armar(t, acc)
	store.account.AddressSkipped = true
	store.gating = []string{entity.GatingRegistroIncompleto}
	// El check concede el acceso como efecto lateral (lo haría el backend).
	checker.validate = &flow.CheckResult{OK: true, Valid: true}
	checker.onValidate = func() { store.accessGranted = true }

	require.NoError(t, eng.Refresh(ctx))
	st := eng.State()
	assert.True(t, st.AccessGranted)
	assert.Equal(t, flowdom.StepAccountVerifyPrompt, st.Step)
	assert.Equal(t, 1, checker.calls, "exactamente un pase de revalidación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Token de generación: un refresh lento y obsoleto no pisa estado nuevo
// ──────────────────────────────────────────────────────────────────────────────

func TestEngine_RefreshObsoletoSeDescarta(t *testing.T) {
	ctx := context.Background()
	acc := cuentaNueva()
	eng, store, _ := armar(t, acc)

	gate := make(chan struct{})
	store.fetchGate = gate

	done := make(chan struct{})
	go func() {
		_ = eng.Refresh(ctx) // quedará bloqueado en Fetch
		close(done)
	}()

	// Mientras el primer refresh está en vuelo, una operación más nueva
	// avanza la generación.
	store.mu.Lock()
	store.account.Role = entity.RoleClient
	store.mu.Unlock()

	go func() { _ = eng.Refresh(ctx) }()

	// Liberar ambos fetches: el primero en aplicar gana; el de generación
	// vieja se descarta.
	gate <- struct{}{}
	gate <- struct{}{}
	<-done

	// Tras estabilizar, el paso refleja el estado más nuevo (rol elegido).
	require.Eventually(t, func() bool {
		return eng.State().Step == flowdom.StepUserProfile
	}, time.Second, 10*time.Millisecond)
}

// ──────────────────────────────────────────────────────────────────────────────
// Formulario y navegación
// ──────────────────────────────────────────────────────────────────────────────

func TestEngine_FormularioSobreviveErrores(t *testing.T) {
	ctx := context.Background()
	acc := cuentaNueva()
	acc.Role = entity.RoleClient
	eng, _, _ := armar(t, acc)
	require.NoError(t, eng.Refresh(ctx))

	in := dto.PerfilRequest{Nombre: "Ana", Apellido: "", Genero: "F", FechaNacimiento: "1999-04-01"}
	assert.False(t, eng.SubmitProfile(ctx, in))
	// Lo tipeado no se pierde por el error transitorio.
	assert.Equal(t, "Ana", eng.Form().Perfil.Nombre)

	// Cancelar sí limpia.
	eng.Cancel()
	assert.Empty(t, eng.Form().Perfil.Nombre)
	assert.Empty(t, eng.State().ErrorMsg)
}

func TestEngine_NavegacionInformativa(t *testing.T) {
	acc := cuentaNueva()
	eng, _, _ := armar(t, acc)

	// Welcome ↔ EmailLogin: navegación explícita permitida.
	assert.True(t, eng.NavigateTo(flowdom.StepEmailLogin))
	assert.Equal(t, flowdom.StepEmailLogin, eng.State().Step)
	assert.True(t, eng.NavigateTo(flowdom.StepEmailRegister))

	// A un paso resuelto no-informativo no se navega a mano.
	assert.False(t, eng.NavigateTo(flowdom.StepUserProfile))
}

func TestRegistry_SesionPorCuenta(t *testing.T) {
	store := newFakeStore(cuentaNueva())
	reg := flow.NewRegistry(flow.Deps{
		Accounts: store, Businesses: store, Addresses: fakeAddressRepo{store}, Snapshots: store,
		Checker: &fakeChecker{}, Codes: &fakeCodes{},
	})

	a := reg.Session("acc-1")
	assert.Same(t, a, reg.Session("acc-1"), "misma cuenta, misma sesión")
	b := reg.Session("acc-2")
	assert.NotSame(t, a, b)

	reg.Close("acc-1")
	assert.NotSame(t, a, reg.Session("acc-1"), "tras cerrar se crea una sesión nueva")
}
