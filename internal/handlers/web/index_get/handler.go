package index_get

import (
	"net/http"

	"entregas/internal/pkg/middlewares/auth"
	"entregas/internal/pkg/render"
	"entregas/pkg/logger"
)

// post é o item do feed de exemplo exibido na home. O feed real nunca
// saiu do protótipo, então os dados seguem fixos aqui.
type post struct {
	Author string
	Body   string
}

type Handler struct {
	log      handlerLogger
	sessions sessionManager
	render   renderer
}

func New(log handlerLogger, sessions sessionManager, render renderer) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
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

	posts := []post{
		{Author: "John", Body: "Beautiful day in Portland!"},
		{Author: "Susan", Body: "The Avengers movie was so cool!"},
	}

	err := h.render.Render(w, "index.html", render.Data{
		"Account": account,
		"Posts":   posts,
		"Flashes": h.sessions.Flashes(w, r),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render index page")
	}
}
