package auth

import (
	"context"
	"net/http"

	"entregas/internal/entities"
	"entregas/pkg/logger"
)

type service interface {
	GetAccount(ctx context.Context, id int64) (*entities.Account, error)
	TouchLastSeen(ctx context.Context, id int64) error
}

type sessionManager interface {
	CurrentAccountID(r *http.Request) (int64, bool)
}

type middlewareLogger interface {
	Warn(msg string, fields ...logger.Field)
}
