package cliente_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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

// ServeHTTP resolve o cliente pelo id do caminho tanto na confirmação
// (GET) quanto na exclusão (POST).
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.flash(w, r, "Cliente não encontrado!")
		http.Redirect(w, r, "/clientes/", http.StatusFound)
		return
	}

	if r.Method == http.MethodPost {
		h.post(w, r, id)
		return
	}

	clienteEntity, err := h.service.GetCliente(r.Context(), id)
	if err != nil {
		if errors.Is(err, cliente.ErrClienteNotFound) {
			h.flash(w, r, "Cliente não encontrado!")
			http.Redirect(w, r, "/clientes/", http.StatusFound)
			return
		}

		h.log.With(
			logger.NewField("error", err),
		).Error("get cliente")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	err = h.render.Render(w, "delete_cliente.html", render.Data{
		"Cliente": clienteEntity,
		"Flashes": h.sessions.Flashes(w, r),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render delete cliente page")
	}
}

func (h *Handler) post(w http.ResponseWriter, r *http.Request, id int64) {
	err := h.service.DeleteCliente(r.Context(), id)
	if err != nil {
		if errors.Is(err, cliente.ErrClienteNotFound) {
			h.flash(w, r, "Cliente não encontrado!")
			http.Redirect(w, r, "/clientes/", http.StatusFound)
			return
		}

		h.log.With(
			logger.NewField("error", err),
		).Error("delete cliente")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.flash(w, r, "Cliente excluído com sucesso!")
	http.Redirect(w, r, "/clientes/", http.StatusFound)
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, message string) {
	if err := h.sessions.AddFlash(w, r, message); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("add flash message")
	}
}
