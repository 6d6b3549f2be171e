//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pedido_excluir_test
package pedido_excluir

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
	DeletePedido(ctx context.Context, id int64) error
}

type sessionManager interface {
	AddFlash(w http.ResponseWriter, r *http.Request, message string) error
	Flashes(w http.ResponseWriter, r *http.Request) []string
}

type renderer interface {
	Render(w http.ResponseWriter, name string, data render.Data) error
}
