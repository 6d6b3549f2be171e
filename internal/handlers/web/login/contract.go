//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=login_test
package login

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
	Authenticate(ctx context.Context, username, password string) (*entities.Account, error)
}

type sessionManager interface {
	CurrentAccountID(r *http.Request) (int64, bool)
	Login(w http.ResponseWriter, r *http.Request, accountID int64, remember bool) error
	AddFlash(w http.ResponseWriter, r *http.Request, message string) error
	Flashes(w http.ResponseWriter, r *http.Request) []string
}

type renderer interface {
	Render(w http.ResponseWriter, name string, data render.Data) error
}
