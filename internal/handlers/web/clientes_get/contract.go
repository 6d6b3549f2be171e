//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=clientes_get_test
package clientes_get

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
	GetClientes(ctx context.Context) ([]entities.Cliente, error)
}

type sessionManager interface {
	Flashes(w http.ResponseWriter, r *http.Request) []string
}

type renderer interface {
	Render(w http.ResponseWriter, name string, data render.Data) error
}
