package entregador

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"entregas/internal/entities"
	"entregas/internal/repository"
	"entregas/internal/service/entregador"
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

func (r *Repository) Create(ctx context.Context, entregadorModifyEntity entities.EntregadorModify) (int64, error) {
	entregadorModifyModel := FromDomainModify(&entregadorModifyEntity)
	query := `INSERT INTO entregadores (nome, telefone, disponibilidade)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		entregadorModifyModel.Nome,
		entregadorModifyModel.Telefone,
		entregadorModifyModel.Disponibilidade,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, entregador.ErrConflict
		}
		return 0, fmt.Errorf("unexpected entregador repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, entregadorModifyEntity entities.EntregadorModify) (*entities.Entregador, error) {
	entregadorModifyModel := FromDomainModify(&entregadorModifyEntity)

	builder := qb.
		Update("entregadores")

	// campos opcionais
	if entregadorModifyModel.Nome != nil {
		builder = builder.Set("nome", entregadorModifyModel.Nome)
	}
	if entregadorModifyModel.Telefone != nil {
		builder = builder.Set("telefone", entregadorModifyModel.Telefone)
	}
	if entregadorModifyModel.Disponibilidade != nil {
		builder = builder.Set("disponibilidade", entregadorModifyModel.Disponibilidade)
	}

	builder = builder.
		Where(sq.Eq{"id": entregadorModifyModel.ID}).
		Suffix("RETURNING id, nome, telefone, disponibilidade")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected entregador repository update error: %w", err)
	}

	var entregadorModel EntregadorDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&entregadorModel.ID,
			&entregadorModel.Nome,
			&entregadorModel.Telefone,
			&entregadorModel.Disponibilidade,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entregador.ErrEntregadorNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, entregador.ErrConflict
		}

		return nil, fmt.Errorf("unexpected entregador repository update error: %w", err)
	}

	return ToDomain(&entregadorModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Entregador, error) {
	query := `SELECT id, nome, telefone, disponibilidade
		FROM entregadores
		WHERE id = $1`

	var entregadorModel EntregadorDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&entregadorModel.ID,
			&entregadorModel.Nome,
			&entregadorModel.Telefone,
			&entregadorModel.Disponibilidade,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entregador.ErrEntregadorNotFound
		}
		return nil, fmt.Errorf("unexpected entregador repository getbyid error: %w", err)
	}

	return ToDomain(&entregadorModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Entregador, error) {
	query := `
	SELECT id, nome, telefone, disponibilidade
	FROM entregadores
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected entregador repository getall error: %w", err)
	}
	defer rows.Close()

	entregadorModels := make([]EntregadorDB, 0, 8)
	for rows.Next() {
		var entregadorModel EntregadorDB
		err := rows.Scan(
			&entregadorModel.ID,
			&entregadorModel.Nome,
			&entregadorModel.Telefone,
			&entregadorModel.Disponibilidade,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected entregador repository getall error: %w", err)
		}
		entregadorModels = append(entregadorModels, entregadorModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected entregador repository getall error: %w", err)
	}

	return ToDomainList(entregadorModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM entregadores WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected entregador repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entregador.ErrEntregadorNotFound
	}

	return nil
}
