package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"entregas/internal/entities"
)

type Auth struct {
	repository Repository
}

func New(repository Repository) *Auth {
	return &Auth{
		repository: repository,
	}
}

// Register cria uma conta com a senha em hash bcrypt. Username e
// e-mail duplicados chegam como ErrConflict vindo do repositório.
func (s *Auth) Register(ctx context.Context, username, email, password string) (int64, error) {
	if !isValidUsername(username) {
		return 0, ErrInvalidUsername
	}
	if !isValidEmail(email) {
		return 0, ErrInvalidEmail
	}
	if !isValidPassword(password) {
		return 0, ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	passwordHash := string(hash)

	id, err := s.repository.Create(ctx, entities.AccountModify{
		Username:     &username,
		Email:        &email,
		PasswordHash: &passwordHash,
	})
	if err != nil {
		return 0, fmt.Errorf("create account: %w", err)
	}

	return id, nil
}

// Authenticate devolve a conta quando username e senha conferem.
// Usuário desconhecido e senha errada produzem o mesmo erro.
func (s *Auth) Authenticate(ctx context.Context, username, password string) (*entities.Account, error) {
	account, err := s.repository.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

func (s *Auth) GetAccount(ctx context.Context, id int64) (*entities.Account, error) {
	account, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

func (s *Auth) GetAccountByUsername(ctx context.Context, username string) (*entities.Account, error) {
	account, err := s.repository.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

// EditProfile atualiza username e bio; colisão de username com outra
// conta retorna ErrConflict.
func (s *Auth) EditProfile(ctx context.Context, accountModify entities.AccountModify) (*entities.Account, error) {
	if accountModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if accountModify.Username != nil && !isValidUsername(*accountModify.Username) {
		return nil, ErrInvalidUsername
	}

	account, err := s.repository.Update(ctx, accountModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

// TouchLastSeen é chamado pelo middleware em toda requisição
// autenticada; é uma escrita por página vista, sem coalescência.
func (s *Auth) TouchLastSeen(ctx context.Context, id int64) error {
	err := s.repository.TouchLastSeen(ctx, id)
	if err != nil {
		return fmt.Errorf("touch last seen: %w", err)
	}
	return nil
}
