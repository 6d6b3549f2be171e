package entregadores_get

import (
	"net/http"

	"entregas/internal/pkg/render"
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
	entregadores, err := h.service.GetEntregadores(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list entregadores")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	err = h.render.Render(w, "listar_entregadores.html", render.Data{
		"Entregadores": entregadores,
		"Flashes":      h.sessions.Flashes(w, r),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render entregadores page")
	}
}
