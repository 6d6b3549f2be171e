//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pedido_editar_test
package pedido_editar

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
	GetPedido(ctx context.Context, id int64) (*entities.Pedido, error)
	GetItens(ctx context.Context, pedidoID int64) ([]entities.ItemPedido, error)
	UpdatePedido(ctx context.Context, pedidoModify entities.PedidoModify) (*entities.Pedido, error)
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
