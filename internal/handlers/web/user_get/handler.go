package user_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"entregas/internal/pkg/render"
	"entregas/internal/service/auth"
	"entregas/pkg/logger"
)

const avatarSize = 128

type post struct {
	Author string
	Body   string
}

type profile struct {
	Username string
	AboutMe  string
	LastSeen string
}

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
	username := mux.Vars(r)["username"]

	account, err := h.service.GetAccountByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			http.NotFound(w, r)
			return
		}

		h.log.With(
			logger.NewField("error", err),
		).Error("get account by username")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	posts := []post{
		{Author: account.Username, Body: "Test post #1"},
		{Author: account.Username, Body: "Test post #2"},
	}

	err = h.render.Render(w, "user.html", render.Data{
		"User": profile{
			Username: account.Username,
			AboutMe:  account.AboutMe,
			LastSeen: account.LastSeen.Format("2006-01-02 15:04:05"),
		},
		"AvatarURL": account.AvatarURL(avatarSize),
		"Posts":     posts,
		"Flashes":   h.sessions.Flashes(w, r),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render user page")
	}
}
