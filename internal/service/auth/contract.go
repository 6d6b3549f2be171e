//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"entregas/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, accountModifyEntity entities.AccountModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Account, error)
	GetByUsername(ctx context.Context, username string) (*entities.Account, error)
	Update(ctx context.Context, accountModifyEntity entities.AccountModify) (*entities.Account, error)
	TouchLastSeen(ctx context.Context, id int64) error
}
