package edit_profile

import (
	"errors"
	"net/http"

	"entregas/internal/entities"
	"entregas/internal/pkg/middlewares/auth"
	"entregas/internal/pkg/render"
	authservice "entregas/internal/service/auth"
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
	account, ok := auth.AccountFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if r.Method == http.MethodPost {
		h.post(w, r, account)
		return
	}

	err := h.render.Render(w, "edit_profile.html", render.Data{
		"Username": account.Username,
		"AboutMe":  account.AboutMe,
		"Flashes":  h.sessions.Flashes(w, r),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render edit profile page")
	}
}

func (h *Handler) post(w http.ResponseWriter, r *http.Request, account *entities.Account) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	aboutMe := r.PostFormValue("about_me")

	accountModify := entities.AccountModify{
		ID:       &account.ID,
		Username: &username,
		AboutMe:  &aboutMe,
	}

	_, err := h.service.EditProfile(r.Context(), accountModify)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrConflict):
			h.flash(w, r, "Please use a different username.")
		case errors.Is(err, authservice.ErrInvalidUsername),
			errors.Is(err, authservice.ErrMissingRequiredFields):
			h.flash(w, r, "Invalid profile data.")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("edit profile")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/edit_profile", http.StatusFound)
		return
	}

	h.flash(w, r, "Your changes have been saved.")
	http.Redirect(w, r, "/edit_profile", http.StatusFound)
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, message string) {
	if err := h.sessions.AddFlash(w, r, message); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("add flash message")
	}
}
