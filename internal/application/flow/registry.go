package flow

import "sync"

// Registry mantiene una sesión del asistente por cuenta. El estado de sesión
// vive atado a la identidad de la cuenta, no al proceso: cerrar la sesión de
// una cuenta descarta su motor y sus refreshes en vuelo.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Engine
	deps     Deps
}

// NewRegistry construye el registro de sesiones.
func NewRegistry(deps Deps) *Registry {
	return &Registry{
		sessions: make(map[string]*Engine),
		deps:     deps,
	}
}

// Session devuelve la sesión de la cuenta, creándola si no existe.
func (r *Registry) Session(accountID string) *Engine {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[accountID]; ok {
		return e
	}
	e := NewEngine(accountID, r.deps)
	r.sessions[accountID] = e
	return e
}

// Close descarta la sesión de la cuenta (logout o cambio de identidad).
func (r *Registry) Close(accountID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[accountID]; ok {
		e.Close()
		delete(r.sessions, accountID)
	}
}
