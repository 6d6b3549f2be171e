package clientes_get

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
	clientes, err := h.service.GetClientes(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list clientes")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	err = h.render.Render(w, "clientes.html", render.Data{
		"Clientes": clientes,
		"Flashes":  h.sessions.Flashes(w, r),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render clientes page")
	}
}
