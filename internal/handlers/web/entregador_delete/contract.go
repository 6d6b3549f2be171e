//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=entregador_delete_test
package entregador_delete

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
	GetEntregador(ctx context.Context, id int64) (*entities.Entregador, error)
	DeleteEntregador(ctx context.Context, id int64) error
}

type sessionManager interface {
	AddFlash(w http.ResponseWriter, r *http.Request, message string) error
	Flashes(w http.ResponseWriter, r *http.Request) []string
}

type renderer interface {
	Render(w http.ResponseWriter, name string, data render.Data) error
}
