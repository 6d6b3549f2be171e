//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pedido_adicionar_test
package pedido_adicionar

import (
	"context"
	"net/http"

	"entregas/internal/entities"
	"entregas/internal/pkg/render"
	"entregas/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreatePedido(ctx context.Context, pedidoModify entities.PedidoModify) (int64, error)
}

type ClienteService interface {
	GetClientes(ctx context.Context) ([]entities.Cliente, error)
}

type EntregadorService interface {
	GetEntregadores(ctx context.Context) ([]entities.Entregador, error)
}

type sessionManager interface {
	AddFlash(w http.ResponseWriter, r *http.Request, message string) error
	Flashes(w http.ResponseWriter, r *http.Request) []string
}

type renderer interface {
	Render(w http.ResponseWriter, name string, data render.Data) error
}
