package pedido

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"entregas/internal/entities"
	"entregas/internal/repository"
	"entregas/internal/service/pedido"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, pedidoModifyEntity entities.PedidoModify) (int64, error) {
	pedidoModifyModel := FromDomainModify(&pedidoModifyEntity)
	query := `INSERT INTO pedidos (cliente_id, entregador_id, endereco_entrega, data_entrega, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		pedidoModifyModel.ClienteID,
		pedidoModifyModel.EntregadorID,
		pedidoModifyModel.EnderecoEntrega,
		pedidoModifyModel.DataEntrega,
		pedidoModifyModel.Status,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, pedido.ErrReferenciaInvalida
		}
		return 0, fmt.Errorf("unexpected pedido repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, pedidoModifyEntity entities.PedidoModify) (*entities.Pedido, error) {
	pedidoModifyModel := FromDomainModify(&pedidoModifyEntity)

	builder := qb.
		Update("pedidos")

	// campos opcionais
	if pedidoModifyModel.ClienteID != nil {
		builder = builder.Set("cliente_id", pedidoModifyModel.ClienteID)
	}
	if pedidoModifyModel.EntregadorID != nil {
		builder = builder.Set("entregador_id", pedidoModifyModel.EntregadorID)
	}
	if pedidoModifyModel.EnderecoEntrega != nil {
		builder = builder.Set("endereco_entrega", pedidoModifyModel.EnderecoEntrega)
	}
	if pedidoModifyModel.DataEntrega != nil {
		builder = builder.Set("data_entrega", pedidoModifyModel.DataEntrega)
	}
	if pedidoModifyModel.Status != nil {
		builder = builder.Set("status", pedidoModifyModel.Status)
	}

	builder = builder.
		Where(sq.Eq{"id": pedidoModifyModel.ID}).
		Suffix("RETURNING id, cliente_id, entregador_id, endereco_entrega, data_entrega, status")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected pedido repository update error: %w", err)
	}

	var pedidoModel PedidoDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&pedidoModel.ID,
			&pedidoModel.ClienteID,
			&pedidoModel.EntregadorID,
			&pedidoModel.EnderecoEntrega,
			&pedidoModel.DataEntrega,
			&pedidoModel.Status,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pedido.ErrPedidoNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, pedido.ErrReferenciaInvalida
		}

		return nil, fmt.Errorf("unexpected pedido repository update error: %w", err)
	}

	return ToDomain(&pedidoModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Pedido, error) {
	query := `SELECT id, cliente_id, entregador_id, endereco_entrega, data_entrega, status
		FROM pedidos
		WHERE id = $1`

	var pedidoModel PedidoDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&pedidoModel.ID,
			&pedidoModel.ClienteID,
			&pedidoModel.EntregadorID,
			&pedidoModel.EnderecoEntrega,
			&pedidoModel.DataEntrega,
			&pedidoModel.Status,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pedido.ErrPedidoNotFound
		}
		return nil, fmt.Errorf("unexpected pedido repository getbyid error: %w", err)
	}

	return ToDomain(&pedidoModel), nil
}

// CountByStatus conta os pedidos em um dado status.
func (r *Repository) CountByStatus(ctx context.Context, status string) (int64, error) {
	query := `SELECT count(*) FROM pedidos WHERE status = $1`

	var total int64
	err := r.querier.QueryRow(ctx, query, status).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("unexpected pedido repository countbystatus error: %w", err)
	}

	return total, nil
}

// GetAllDetalhado resolve os nomes de cliente e entregador no próprio
// SELECT; a listagem não tem paginação nem filtro.
func (r *Repository) GetAllDetalhado(ctx context.Context) ([]entities.PedidoDetalhado, error) {
	query := `
	SELECT p.id, p.cliente_id, p.entregador_id, p.endereco_entrega, p.data_entrega, p.status,
	       c.nome, e.nome
	FROM pedidos p
	JOIN clientes c ON c.id = p.cliente_id
	JOIN entregadores e ON e.id = p.entregador_id
	ORDER BY p.id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected pedido repository getall error: %w", err)
	}
	defer rows.Close()

	pedidoModels := make([]PedidoDetalhadoDB, 0, 8)
	for rows.Next() {
		var pedidoModel PedidoDetalhadoDB
		err := rows.Scan(
			&pedidoModel.ID,
			&pedidoModel.ClienteID,
			&pedidoModel.EntregadorID,
			&pedidoModel.EnderecoEntrega,
			&pedidoModel.DataEntrega,
			&pedidoModel.Status,
			&pedidoModel.ClienteNome,
			&pedidoModel.EntregadorNome,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected pedido repository getall error: %w", err)
		}
		pedidoModels = append(pedidoModels, pedidoModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected pedido repository getall error: %w", err)
	}

	return ToDetalhadoDomainList(pedidoModels), nil
}

// ItensForPedido devolve os itens do pedido em ordem de inserção.
func (r *Repository) ItensForPedido(ctx context.Context, pedidoID int64) ([]entities.ItemPedido, error) {
	query := `
	SELECT id, pedido_id, descricao, quantidade
	FROM itens_pedido
	WHERE pedido_id = $1
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("unexpected pedido repository itens error: %w", err)
	}
	defer rows.Close()

	itemModels := make([]ItemPedidoDB, 0, 8)
	for rows.Next() {
		var itemModel ItemPedidoDB
		err := rows.Scan(
			&itemModel.ID,
			&itemModel.PedidoID,
			&itemModel.Descricao,
			&itemModel.Quantidade,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected pedido repository itens error: %w", err)
		}
		itemModels = append(itemModels, itemModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected pedido repository itens error: %w", err)
	}

	return ToItemDomainList(itemModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM pedidos WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected pedido repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return pedido.ErrPedidoNotFound
	}

	return nil
}

// DeleteItensForPedido remove os itens do pedido; zero linhas não é
// erro, um pedido sem itens é válido.
func (r *Repository) DeleteItensForPedido(ctx context.Context, pedidoID int64) error {
	query := `DELETE FROM itens_pedido WHERE pedido_id = $1`

	_, err := r.querier.Exec(ctx, query, pedidoID)
	if err != nil {
		return fmt.Errorf("unexpected pedido repository delete itens error: %w", err)
	}

	return nil
}
