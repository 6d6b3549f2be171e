package entregador_edit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"entregas/internal/entities"
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

	err = h.render.Render(w, "editar_entregador.html", render.Data{
		"Entregador": entregadorEntity,
		"Flashes":    h.sessions.Flashes(w, r),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render editar entregador page")
	}
}

func (h *Handler) post(w http.ResponseWriter, r *http.Request, id int64) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	nome := r.PostFormValue("nome")
	telefone := r.PostFormValue("telefone")
	disponibilidade := r.PostFormValue("disponibilidade") == "True"

	entregadorModify := entities.EntregadorModify{
		ID:              &id,
		Nome:            &nome,
		Telefone:        &telefone,
		Disponibilidade: &disponibilidade,
	}

	_, err := h.service.UpdateEntregador(r.Context(), entregadorModify)
	if err != nil {
		switch {
		case errors.Is(err, entregador.ErrEntregadorNotFound):
			h.flash(w, r, "Entregador não encontrado!")
		case errors.Is(err, entregador.ErrConflict):
			h.flash(w, r, "Já existe um entregador com esse nome!")
		case errors.Is(err, entregador.ErrMissingRequiredFields),
			errors.Is(err, entregador.ErrInvalidNome),
			errors.Is(err, entregador.ErrInvalidTelefone):
			h.flash(w, r, "Dados do entregador inválidos!")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("update entregador")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/entregadores/", http.StatusFound)
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
