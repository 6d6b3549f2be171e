package entregador

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidNome           = errors.New("invalid nome")
	ErrInvalidTelefone       = errors.New("invalid telefone")

	ErrEntregadorNotFound = errors.New("entregador not found")
	ErrConflict           = errors.New("entregador already exists")
)
