package pedido

import (
	"context"
	"fmt"

	"entregas/internal/entities"
)

type Pedido struct {
	repository Repository
	txManager  TxManager
	publisher  EventPublisher
}

func New(repository Repository, txManager TxManager, publisher EventPublisher) *Pedido {
	return &Pedido{
		repository: repository,
		txManager:  txManager,
		publisher:  publisher,
	}
}

// CreatePedido exige cliente, entregador, endereço e data de entrega;
// o status inicial é sempre "pendente".
func (s *Pedido) CreatePedido(ctx context.Context, pedidoModify entities.PedidoModify) (int64, error) {
	if pedidoModify.ClienteID == nil ||
		pedidoModify.EntregadorID == nil ||
		pedidoModify.EnderecoEntrega == nil ||
		pedidoModify.DataEntrega == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidEnderecoEntrega(*pedidoModify.EnderecoEntrega) {
		return 0, ErrInvalidEnderecoEntrega
	}

	if pedidoModify.Status == nil {
		status := entities.DefaultPedidoStatus
		pedidoModify.Status = &status
	}

	id, err := s.repository.Create(ctx, pedidoModify)
	if err != nil {
		return 0, fmt.Errorf("create pedido: %w", err)
	}

	s.publisher.PublishStatusChanged(ctx, id, *pedidoModify.Status)

	return id, nil
}

func (s *Pedido) UpdatePedido(ctx context.Context, pedidoModify entities.PedidoModify) (*entities.Pedido, error) {
	if pedidoModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if pedidoModify.ClienteID == nil &&
		pedidoModify.EntregadorID == nil &&
		pedidoModify.EnderecoEntrega == nil &&
		pedidoModify.DataEntrega == nil &&
		pedidoModify.Status == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if pedidoModify.EnderecoEntrega != nil && !isValidEnderecoEntrega(*pedidoModify.EnderecoEntrega) {
		return nil, ErrInvalidEnderecoEntrega
	}

	pedido, err := s.repository.Update(ctx, pedidoModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update pedido: %w", err)
	}

	s.publisher.PublishStatusChanged(ctx, pedido.ID, pedido.Status)

	return pedido, nil
}

func (s *Pedido) GetPedido(ctx context.Context, id int64) (*entities.Pedido, error) {
	pedido, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get pedido: %w", err)
	}

	return pedido, nil
}

func (s *Pedido) GetPedidos(ctx context.Context) ([]entities.PedidoDetalhado, error) {
	pedidos, err := s.repository.GetAllDetalhado(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pedidos: %w", err)
	}

	return pedidos, nil
}

func (s *Pedido) GetItens(ctx context.Context, pedidoID int64) ([]entities.ItemPedido, error) {
	itens, err := s.repository.ItensForPedido(ctx, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get itens: %w", err)
	}

	return itens, nil
}

// CountPendentes conta os pedidos que ainda aguardam entrega.
func (s *Pedido) CountPendentes(ctx context.Context) (int64, error) {
	total, err := s.repository.CountByStatus(ctx, entities.DefaultPedidoStatus)
	if err != nil {
		return 0, fmt.Errorf("failed to count pedidos pendentes: %w", err)
	}

	return total, nil
}

// DeletePedido remove o pedido e seus itens na mesma transação.
func (s *Pedido) DeletePedido(ctx context.Context, id int64) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.DeleteItensForPedido(ctx, id); err != nil {
			return err
		}
		return s.repository.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}

	s.publisher.PublishStatusChanged(ctx, id, "excluido")

	return nil
}
