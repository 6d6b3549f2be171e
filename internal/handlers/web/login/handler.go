package login

import (
	"errors"
	"net/http"
	"net/url"

	"entregas/internal/pkg/render"
	"entregas/internal/service/auth"
	"entregas/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	sessions sessionManager
	render   renderer
}

func New(log handlerLogger, service Service, sessions sessionManager, render renderer) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		sessions: sessions,
		render:   render,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.CurrentAccountID(r); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if r.Method == http.MethodPost {
		h.post(w, r)
		return
	}

	err := h.render.Render(w, "login.html", render.Data{
		"Flashes": h.sessions.Flashes(w, r),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render login page")
	}
}

func (h *Handler) post(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	remember := r.PostFormValue("remember_me") != ""

	account, err := h.service.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.flash(w, r, "Invalid username or password")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		h.log.With(
			logger.NewField("error", err),
		).Error("authenticate account")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := h.sessions.Login(w, r, account.ID, remember); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("establish session")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, nextPage(r), http.StatusFound)
}

// nextPage aceita o destino de next apenas quando ele é um caminho
// relativo (sem host), para evitar open redirect.
func nextPage(r *http.Request) string {
	next := r.URL.Query().Get("next")
	if next == "" {
		return "/"
	}

	parsed, err := url.Parse(next)
	if err != nil || parsed.Host != "" {
		return "/"
	}
	return next
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, message string) {
	if err := h.sessions.AddFlash(w, r, message); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("add flash message")
	}
}
