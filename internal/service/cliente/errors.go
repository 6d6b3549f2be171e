package cliente

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidNome           = errors.New("invalid nome")
	ErrInvalidEndereco       = errors.New("invalid endereco")
	ErrInvalidTelefone       = errors.New("invalid telefone")

	ErrClienteNotFound = errors.New("cliente not found")
	ErrConflict        = errors.New("cliente already exists")
)
