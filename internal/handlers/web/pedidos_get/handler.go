package pedidos_get

import (
	"net/http"

	"entregas/internal/entities"
	"entregas/internal/pkg/render"
	"entregas/pkg/logger"
)

type pedidoRow struct {
	ID              int64
	ClienteNome     string
	EntregadorNome  string
	EnderecoEntrega string
	DataEntrega     string
	Status          string
}

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
	pedidos, err := h.service.GetPedidos(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list pedidos")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	rows := make([]pedidoRow, 0, len(pedidos))
	for _, p := range pedidos {
		rows = append(rows, pedidoRow{
			ID:              p.ID,
			ClienteNome:     p.ClienteNome,
			EntregadorNome:  p.EntregadorNome,
			EnderecoEntrega: p.EnderecoEntrega,
			DataEntrega:     p.DataEntrega.Format(entities.DataEntregaLayout),
			Status:          p.Status,
		})
	}

	err = h.render.Render(w, "listar_pedidos.html", render.Data{
		"Pedidos": rows,
		"Flashes": h.sessions.Flashes(w, r),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render pedidos page")
	}
}
