package logout

import (
	"net/http"

	"entregas/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	sessions sessionManager
}

func New(log handlerLogger, sessions sessionManager) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		sessions: sessions,
	}
}

// ServeHTTP encerra a sessão incondicionalmente, logado ou não.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(w, r); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("clear session")
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
