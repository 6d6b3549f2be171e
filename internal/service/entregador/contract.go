//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=entregador_test
package entregador

import (
	"context"

	"entregas/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, entregadorModifyEntity entities.EntregadorModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Entregador, error)
	GetAll(ctx context.Context) ([]entities.Entregador, error)
	Update(ctx context.Context, entregadorModifyEntity entities.EntregadorModify) (*entities.Entregador, error)
	Delete(ctx context.Context, id int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
