package cliente

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"entregas/internal/entities"
	"entregas/internal/repository"
	"entregas/internal/service/cliente"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, clienteModifyEntity entities.ClienteModify) (int64, error) {
	clienteModifyModel := FromDomainModify(&clienteModifyEntity)
	query := `INSERT INTO clientes (nome, endereco, telefone)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		clienteModifyModel.Nome,
		clienteModifyModel.Endereco,
		clienteModifyModel.Telefone,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, cliente.ErrConflict
		}
		return 0, fmt.Errorf("unexpected cliente repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Cliente, error) {
	query := `SELECT id, nome, endereco, telefone
		FROM clientes
		WHERE id = $1`

	var clienteModel ClienteDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&clienteModel.ID,
			&clienteModel.Nome,
			&clienteModel.Endereco,
			&clienteModel.Telefone,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cliente.ErrClienteNotFound
		}
		return nil, fmt.Errorf("unexpected cliente repository getbyid error: %w", err)
	}

	return ToDomain(&clienteModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Cliente, error) {
	query := `
	SELECT id, nome, endereco, telefone
	FROM clientes
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected cliente repository getall error: %w", err)
	}
	defer rows.Close()

	clienteModels := make([]ClienteDB, 0, 8)
	for rows.Next() {
		var clienteModel ClienteDB
		err := rows.Scan(
			&clienteModel.ID,
			&clienteModel.Nome,
			&clienteModel.Endereco,
			&clienteModel.Telefone,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected cliente repository getall error: %w", err)
		}
		clienteModels = append(clienteModels, clienteModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected cliente repository getall error: %w", err)
	}

	return ToDomainList(clienteModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM clientes WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected cliente repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return cliente.ErrClienteNotFound
	}

	return nil
}
