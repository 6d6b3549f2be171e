package register

import (
	"errors"
	"net/http"

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

	err := h.render.Render(w, "register.html", render.Data{
		"Flashes": h.sessions.Flashes(w, r),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render register page")
	}
}

func (h *Handler) post(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	password2 := r.PostFormValue("password2")

	if password != password2 {
		h.flash(w, r, "Field must be equal to password.")
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}

	_, err := h.service.Register(r.Context(), username, email, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrConflict):
			h.flash(w, r, "Please use a different username or email address.")
		case errors.Is(err, auth.ErrMissingRequiredFields),
			errors.Is(err, auth.ErrInvalidUsername),
			errors.Is(err, auth.ErrInvalidEmail),
			errors.Is(err, auth.ErrInvalidPassword):
			h.flash(w, r, "Invalid registration data.")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("register account")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}

	h.flash(w, r, "Congratulations, you are now a registered user!")
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, message string) {
	if err := h.sessions.AddFlash(w, r, message); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("add flash message")
	}
}
