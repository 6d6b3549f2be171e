package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"entregas/internal/pkg/config"
)

const (
	sessionName  = "entregas-session"
	keyAccountID = "account_id"
	flashKey     = "_flash"
)

// Manager guarda o estado de login e as flash messages em um cookie
// assinado. Não há estado de sessão no servidor.
type Manager struct {
	store          *sessions.CookieStore
	rememberMaxAge time.Duration
}

func NewManager(cfg *config.Session) *Manager {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode

	return &Manager{
		store:          store,
		rememberMaxAge: cfg.RememberMaxAge,
	}
}

// CurrentAccountID devolve a conta logada, se houver.
func (m *Manager) CurrentAccountID(r *http.Request) (int64, bool) {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return 0, false
	}

	id, ok := session.Values[keyAccountID].(int64)
	return id, ok
}

// Login estabelece a sessão. Com remember o cookie dura
// SESSION_REMEMBER_MAX_AGE; sem, vale só até o navegador fechar.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, accountID int64, remember bool) error {
	session, _ := m.store.Get(r, sessionName)

	session.Values[keyAccountID] = accountID
	if remember {
		session.Options.MaxAge = int(m.rememberMaxAge.Seconds())
	} else {
		session.Options.MaxAge = 0
	}

	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Logout limpa o estado incondicionalmente.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)

	delete(session.Values, keyAccountID)
	session.Options.MaxAge = -1

	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// AddFlash enfileira um aviso exibido apenas na próxima página.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, message string) error {
	session, _ := m.store.Get(r, sessionName)

	session.AddFlash(message, flashKey)

	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Flashes consome e devolve os avisos pendentes.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := m.store.Get(r, sessionName)

	raw := session.Flashes(flashKey)
	if len(raw) == 0 {
		return nil
	}

	// Flashes remove os valores da sessão; o save persiste a remoção.
	_ = session.Save(r, w)

	messages := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
