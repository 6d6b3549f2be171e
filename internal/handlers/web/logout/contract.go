//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=logout_test
package logout

import (
	"net/http"

	"entregas/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type sessionManager interface {
	Logout(w http.ResponseWriter, r *http.Request) error
}
