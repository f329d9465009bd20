package auth

import (
	"sync"

	"github.com/rs/zerolog"
)

// Identity is the authenticated principal reported by the provider.
// Optional fields are empty when the provider omits them.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Listener receives identity changes. A nil identity means signed out.
type Listener func(*Identity)

// Manager tracks the current identity and fans sign-in/sign-out events
// out to registered listeners.
type Manager struct {
	mu        sync.Mutex
	current   *Identity
	listeners []Listener
	log       zerolog.Logger
}

func NewManager(log zerolog.Logger) *Manager {
	return &Manager{log: log.With().Str("component", "auth").Logger()}
}

// OnChange registers a listener for future identity changes. Listeners
// are invoked synchronously, in registration order, outside the
// manager's lock.
func (m *Manager) OnChange(fn Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// SignIn records id as the current identity and notifies listeners.
func (m *Manager) SignIn(id Identity) {
	m.mu.Lock()
	m.current = &id
	listeners := append([]Listener(nil), m.listeners...)
	m.mu.Unlock()

	m.log.Info().Str("user_id", id.ID).Msg("signed in")
	notify := id
	for _, fn := range listeners {
		fn(&notify)
	}
}

// SignOut clears the current identity and notifies listeners.
func (m *Manager) SignOut() {
	m.mu.Lock()
	was := m.current
	m.current = nil
	listeners := append([]Listener(nil), m.listeners...)
	m.mu.Unlock()

	if was != nil {
		m.log.Info().Str("user_id", was.ID).Msg("signed out")
	}
	for _, fn := range listeners {
		fn(nil)
	}
}

// Current returns the signed-in identity, if any.
func (m *Manager) Current() (Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Identity{}, false
	}
	return *m.current, true
}
