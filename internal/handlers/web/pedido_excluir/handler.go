package pedido_excluir

import (
	"errors"
	"net/http"
	"strconv"

	"entregas/internal/pkg/render"
	"entregas/internal/service/pedido"
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

	id, err := strconv.ParseInt(r.URL.Query().Get("pedido_id"), 10, 64)
	if err != nil {
		h.flash(w, r, "Pedido não encontrado!")
		http.Redirect(w, r, "/pedidos/", http.StatusFound)
		return
	}

	pedidoEntity, err := h.service.GetPedido(r.Context(), id)
	if err != nil {
		if errors.Is(err, pedido.ErrPedidoNotFound) {
			h.flash(w, r, "Pedido não encontrado!")
			http.Redirect(w, r, "/pedidos/", http.StatusFound)
			return
		}

		h.log.With(
			logger.NewField("error", err),
		).Error("get pedido")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	itens, err := h.service.GetItens(r.Context(), id)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list itens do pedido")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	err = h.render.Render(w, "excluir_pedido.html", render.Data{
		"Pedido":  pedidoEntity,
		"Itens":   itens,
		"Flashes": h.sessions.Flashes(w, r),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render excluir pedido page")
	}
}

func (h *Handler) post(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseInt(r.PostFormValue("pedido_id"), 10, 64)
	if err != nil {
		h.flash(w, r, "Pedido não encontrado!")
		http.Redirect(w, r, "/pedidos/", http.StatusFound)
		return
	}

	if err := h.service.DeletePedido(r.Context(), id); err != nil {
		if errors.Is(err, pedido.ErrPedidoNotFound) {
			h.flash(w, r, "Pedido não encontrado!")
			http.Redirect(w, r, "/pedidos/", http.StatusFound)
			return
		}

		h.log.With(
			logger.NewField("error", err),
		).Error("delete pedido")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.flash(w, r, "Pedido excluído com sucesso!")
	http.Redirect(w, r, "/pedidos/", http.StatusFound)
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, message string) {
	if err := h.sessions.AddFlash(w, r, message); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("add flash message")
	}
}
