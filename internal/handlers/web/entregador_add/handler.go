package entregador_add

import (
	"errors"
	"net/http"

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
	if r.Method == http.MethodPost {
		h.post(w, r)
		return
	}

	err := h.render.Render(w, "adicionar_entregador.html", render.Data{
		"Flashes": h.sessions.Flashes(w, r),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render adicionar entregador page")
	}
}

func (h *Handler) post(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	nome := r.PostFormValue("nome")
	telefone := r.PostFormValue("telefone")
	// Somente o literal "True" conta como disponível; qualquer outra
	// grafia, inclusive "true", vira falso.
	disponibilidade := r.PostFormValue("disponibilidade") == "True"

	entregadorModify := entities.EntregadorModify{
		Nome:            &nome,
		Telefone:        &telefone,
		Disponibilidade: &disponibilidade,
	}

	_, err := h.service.CreateEntregador(r.Context(), entregadorModify)
	if err != nil {
		switch {
		case errors.Is(err, entregador.ErrConflict):
			h.flash(w, r, "Já existe um entregador com esse nome!")
		case errors.Is(err, entregador.ErrMissingRequiredFields),
			errors.Is(err, entregador.ErrInvalidNome),
			errors.Is(err, entregador.ErrInvalidTelefone):
			h.flash(w, r, "Dados do entregador inválidos!")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create entregador")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/entregadores/add/", http.StatusFound)
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
