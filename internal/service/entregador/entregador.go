package entregador

import (
	"context"
	"fmt"

	"entregas/internal/entities"
)

type Entregador struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Entregador {
	return &Entregador{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Entregador) CreateEntregador(ctx context.Context, entregadorModify entities.EntregadorModify) (int64, error) {
	if entregadorModify.Nome == nil ||
		entregadorModify.Telefone == nil ||
		entregadorModify.Disponibilidade == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidNome(*entregadorModify.Nome) {
		return 0, ErrInvalidNome
	}
	if !isValidTelefone(*entregadorModify.Telefone) {
		return 0, ErrInvalidTelefone
	}

	id, err := s.repository.Create(ctx, entregadorModify)
	if err != nil {
		return 0, fmt.Errorf("create entregador: %w", err)
	}

	return id, nil
}

func (s *Entregador) UpdateEntregador(ctx context.Context, entregadorModify entities.EntregadorModify) (*entities.Entregador, error) {
	if entregadorModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if entregadorModify.Nome == nil &&
		entregadorModify.Telefone == nil &&
		entregadorModify.Disponibilidade == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if entregadorModify.Nome != nil && !isValidNome(*entregadorModify.Nome) {
		return nil, ErrInvalidNome
	}
	if entregadorModify.Telefone != nil && !isValidTelefone(*entregadorModify.Telefone) {
		return nil, ErrInvalidTelefone
	}

	entregador, err := s.repository.Update(ctx, entregadorModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update entregador: %w", err)
	}
	return entregador, nil
}

func (s *Entregador) GetEntregador(ctx context.Context, id int64) (*entities.Entregador, error) {
	entregador, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get entregador: %w", err)
	}

	return entregador, nil
}

func (s *Entregador) GetEntregadores(ctx context.Context) ([]entities.Entregador, error) {
	entregadores, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get entregadores: %w", err)
	}

	return entregadores, nil
}

// DeleteEntregador roda dentro de uma transação: qualquer falha de
// persistência provoca rollback e sobe para o handler converter em
// mensagem genérica, nunca em pânico.
func (s *Entregador) DeleteEntregador(ctx context.Context, id int64) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete entregador: %w", err)
	}

	return nil
}
