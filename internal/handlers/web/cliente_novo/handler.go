package cliente_novo

import (
	"errors"
	"net/http"

	"entregas/internal/entities"
	"entregas/internal/pkg/render"
	"entregas/internal/service/cliente"
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

	err := h.render.Render(w, "novo_cliente.html", render.Data{
		"Flashes": h.sessions.Flashes(w, r),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render novo cliente page")
	}
}

func (h *Handler) post(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	nome := r.PostFormValue("nome")
	endereco := r.PostFormValue("endereco")
	telefone := r.PostFormValue("telefone")

	clienteModify := entities.ClienteModify{
		Nome:     &nome,
		Endereco: &endereco,
		Telefone: &telefone,
	}

	_, err := h.service.CreateCliente(r.Context(), clienteModify)
	if err != nil {
		switch {
		case errors.Is(err, cliente.ErrConflict):
			h.flash(w, r, "Já existe um cliente com esse nome!")
		case errors.Is(err, cliente.ErrMissingRequiredFields),
			errors.Is(err, cliente.ErrInvalidNome),
			errors.Is(err, cliente.ErrInvalidEndereco),
			errors.Is(err, cliente.ErrInvalidTelefone):
			h.flash(w, r, "Dados do cliente inválidos!")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create cliente")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/cliente/novo/", http.StatusFound)
		return
	}

	http.Redirect(w, r, "/clientes/", http.StatusFound)
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, message string) {
	if err := h.sessions.AddFlash(w, r, message); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("add flash message")
	}
}
