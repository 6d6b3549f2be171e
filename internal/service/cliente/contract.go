//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cliente_test
package cliente

import (
	"context"

	"entregas/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, clienteModifyEntity entities.ClienteModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Cliente, error)
	GetAll(ctx context.Context) ([]entities.Cliente, error)
	Delete(ctx context.Context, id int64) error
}
