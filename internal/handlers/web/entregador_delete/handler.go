package entregador_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"entregas/internal/pkg/render"
	"entregas/internal/service/entregador"
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
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.flash(w, r, "Entregador não encontrado!")
		http.Redirect(w, r, "/entregadores/", http.StatusFound)
		return
	}

	if r.Method == http.MethodPost {
		h.post(w, r, id)
		return
	}

	entregadorEntity, err := h.service.GetEntregador(r.Context(), id)
	if err != nil {
		if errors.Is(err, entregador.ErrEntregadorNotFound) {
			h.flash(w, r, "Entregador não encontrado!")
			http.Redirect(w, r, "/entregadores/", http.StatusFound)
			return
		}

		h.log.With(
			logger.NewField("error", err),
		).Error("get entregador")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	err = h.render.Render(w, "deletar_entregador.html", render.Data{
		"Entregador": entregadorEntity,
		"Flashes":    h.sessions.Flashes(w, r),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render deletar entregador page")
	}
}

// post nunca deixa a falha vazar para o cliente como stack trace: a
// exclusão roda em transação no serviço e qualquer erro vira uma
// resposta de texto genérica.
func (h *Handler) post(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.service.DeleteEntregador(r.Context(), id); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("delete entregador")
		http.Error(w, "Erro ao deletar entregador", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/entregadores/", http.StatusFound)
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, message string) {
	if err := h.sessions.AddFlash(w, r, message); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("add flash message")
	}
}
