package flow

// Step identifica la pantalla única del asistente que corresponde a un
// Snapshot. Se calcula en cada resolución; nunca se persiste.
type Step string

const (
	// StepNone indica "sin cambio": el caller conserva su paso actual o
	// terminal. Solo lo produce la ruta de verificación para los estados
	// verified/skipped.
	StepNone Step = ""

	StepWelcome             Step = "welcome"
	StepEmailLogin          Step = "email_login"
	StepEmailRegister       Step = "email_register"
	StepRoleSelect          Step = "role_select"
	StepUserProfile         Step = "user_profile"
	StepBusinessData        Step = "business_data"
	StepUserAddress         Step = "user_address"
	StepAccountVerifyPrompt Step = "account_verify_prompt"
	StepBusinessVerify      Step = "business_verify"
	StepVerifyEmail         Step = "verify_email"
	StepAccountVerifyMethod Step = "account_verify_method"
	StepAccountVerifyReady  Step = "account_verify_ready"
	StepPending             Step = "pending"
)

// String implementa fmt.Stringer.
func (s Step) String() string {
	if s == StepNone {
		return "none"
	}
	return string(s)
}

// Informational reporta si el paso es informativo/terminal: entre estos el
// usuario puede navegar explícitamente sin que el resolver lo fuerce.
func (s Step) Informational() bool {
	switch s {
	case StepWelcome, StepEmailLogin, StepEmailRegister, StepAccountVerifyReady, StepPending:
		return true
	}
	return false
}
