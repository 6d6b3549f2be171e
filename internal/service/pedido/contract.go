//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pedido_test
package pedido

import (
	"context"

	"entregas/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, pedidoModifyEntity entities.PedidoModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Pedido, error)
	GetAllDetalhado(ctx context.Context) ([]entities.PedidoDetalhado, error)
	Update(ctx context.Context, pedidoModifyEntity entities.PedidoModify) (*entities.Pedido, error)
	ItensForPedido(ctx context.Context, pedidoID int64) ([]entities.ItemPedido, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	DeleteItensForPedido(ctx context.Context, pedidoID int64) error
	Delete(ctx context.Context, id int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher notifica mudanças de status; implementações devem
// ser melhor-esforço e nunca bloquear a requisição.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, pedidoID int64, status string)
}
