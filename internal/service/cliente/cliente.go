package cliente

import (
	"context"
	"fmt"

	"entregas/internal/entities"
)

type Cliente struct {
	repository Repository
}

func New(repository Repository) *Cliente {
	return &Cliente{
		repository: repository,
	}
}

func (s *Cliente) CreateCliente(ctx context.Context, clienteModify entities.ClienteModify) (int64, error) {
	if clienteModify.Nome == nil ||
		clienteModify.Endereco == nil ||
		clienteModify.Telefone == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidNome(*clienteModify.Nome) {
		return 0, ErrInvalidNome
	}
	if !isValidEndereco(*clienteModify.Endereco) {
		return 0, ErrInvalidEndereco
	}
	if !isValidTelefone(*clienteModify.Telefone) {
		return 0, ErrInvalidTelefone
	}

	id, err := s.repository.Create(ctx, clienteModify)
	if err != nil {
		return 0, fmt.Errorf("create cliente: %w", err)
	}

	return id, nil
}

func (s *Cliente) GetCliente(ctx context.Context, id int64) (*entities.Cliente, error) {
	cliente, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get cliente: %w", err)
	}

	return cliente, nil
}

func (s *Cliente) GetClientes(ctx context.Context) ([]entities.Cliente, error) {
	clientes, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get clientes: %w", err)
	}

	return clientes, nil
}

func (s *Cliente) DeleteCliente(ctx context.Context, id int64) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}

	return nil
}
