package pedido_editar

import (
	"errors"
	"net/http"
	"strconv"

	"entregas/internal/entities"
	"entregas/internal/pkg/render"
	"entregas/internal/service/pedido"
	"entregas/pkg/logger"
)

type Handler struct {
	log        handlerLogger
	service    Service
	clientes   ClienteService
	entregador EntregadorService
	sessions   sessionManager
	render     renderer
}

func New(
	log handlerLogger,
	service Service,
	clientes ClienteService,
	entregador EntregadorService,
	sessions sessionManager,
	render renderer,
) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:        handlerLog,
		service:    service,
		clientes:   clientes,
		entregador: entregador,
		sessions:   sessions,
		render:     render,
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

	clientes, err := h.clientes.GetClientes(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list clientes")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	entregadores, err := h.entregador.GetEntregadores(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list entregadores")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	err = h.render.Render(w, "editar_pedido.html", render.Data{
		"Pedido":       pedidoEntity,
		"DataEntrega":  pedidoEntity.DataEntrega.Format(entities.DataEntregaLayout),
		"Itens":        itens,
		"Clientes":     clientes,
		"Entregadores": entregadores,
		"Flashes":      h.sessions.Flashes(w, r),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render editar pedido page")
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

	clienteID, err := strconv.ParseInt(r.PostFormValue("cliente_id"), 10, 64)
	if err != nil {
		h.flash(w, r, "Cliente inválido!")
		http.Redirect(w, r, "/pedidos/", http.StatusFound)
		return
	}

	entregadorID, err := strconv.ParseInt(r.PostFormValue("entregador_id"), 10, 64)
	if err != nil {
		h.flash(w, r, "Entregador inválido!")
		http.Redirect(w, r, "/pedidos/", http.StatusFound)
		return
	}

	dataEntrega, err := pedido.ParseDataEntrega(r.PostFormValue("data_entrega"))
	if err != nil {
		h.flash(w, r, "Data de entrega inválida!")
		http.Redirect(w, r, "/pedidos/", http.StatusFound)
		return
	}

	enderecoEntrega := r.PostFormValue("endereco_entrega")
	status := r.PostFormValue("status")

	pedidoModify := entities.PedidoModify{
		ID:              &id,
		ClienteID:       &clienteID,
		EntregadorID:    &entregadorID,
		EnderecoEntrega: &enderecoEntrega,
		DataEntrega:     &dataEntrega,
		Status:          &status,
	}

	_, err = h.service.UpdatePedido(r.Context(), pedidoModify)
	if err != nil {
		switch {
		case errors.Is(err, pedido.ErrPedidoNotFound):
			h.flash(w, r, "Pedido não encontrado!")
		case errors.Is(err, pedido.ErrReferenciaInvalida):
			h.flash(w, r, "Cliente ou entregador inexistente!")
		case errors.Is(err, pedido.ErrMissingRequiredFields),
			errors.Is(err, pedido.ErrInvalidEnderecoEntrega),
			errors.Is(err, pedido.ErrInvalidDataEntrega):
			h.flash(w, r, "Dados do pedido inválidos!")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("update pedido")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/pedidos/", http.StatusFound)
		return
	}

	h.flash(w, r, "Pedido editado com sucesso!")
	http.Redirect(w, r, "/pedidos/", http.StatusFound)
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, message string) {
	if err := h.sessions.AddFlash(w, r, message); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("add flash message")
	}
}
