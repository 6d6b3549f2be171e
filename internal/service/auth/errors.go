package auth

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUsername       = errors.New("invalid username")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPassword       = errors.New("invalid password")

	ErrAccountNotFound = errors.New("account not found")
	ErrConflict        = errors.New("username or email already taken")

	// ErrInvalidCredentials cobre tanto usuário inexistente quanto
	// senha errada, para não permitir enumeração de usuários.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
