package account

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"entregas/internal/entities"
	"entregas/internal/repository"
	"entregas/internal/service/auth"
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

func (r *Repository) Create(ctx context.Context, accountModifyEntity entities.AccountModify) (int64, error) {
	accountModifyModel := FromDomainModify(&accountModifyEntity)
	query := `INSERT INTO accounts (username, email, password_hash, last_seen)
		VALUES ($1, $2, $3, NOW())
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		accountModifyModel.Username,
		accountModifyModel.Email,
		accountModifyModel.PasswordHash,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, auth.ErrConflict
		}
		return 0, fmt.Errorf("unexpected account repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Account, error) {
	query := `SELECT id, username, email, password_hash, about_me, last_seen
		FROM accounts
		WHERE id = $1`

	var accountModel AccountDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&accountModel.ID,
			&accountModel.Username,
			&accountModel.Email,
			&accountModel.PasswordHash,
			&accountModel.AboutMe,
			&accountModel.LastSeen,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("unexpected account repository getbyid error: %w", err)
	}

	return ToDomain(&accountModel), nil
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*entities.Account, error) {
	query := `SELECT id, username, email, password_hash, about_me, last_seen
		FROM accounts
		WHERE username = $1`

	var accountModel AccountDB
	err := r.querier.QueryRow(ctx, query, username).
		Scan(
			&accountModel.ID,
			&accountModel.Username,
			&accountModel.Email,
			&accountModel.PasswordHash,
			&accountModel.AboutMe,
			&accountModel.LastSeen,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("unexpected account repository getbyusername error: %w", err)
	}

	return ToDomain(&accountModel), nil
}

func (r *Repository) Update(ctx context.Context, accountModifyEntity entities.AccountModify) (*entities.Account, error) {
	accountModifyModel := FromDomainModify(&accountModifyEntity)

	builder := qb.
		Update("accounts")

	// campos opcionais
	if accountModifyModel.Username != nil {
		builder = builder.Set("username", accountModifyModel.Username)
	}
	if accountModifyModel.Email != nil {
		builder = builder.Set("email", accountModifyModel.Email)
	}
	if accountModifyModel.PasswordHash != nil {
		builder = builder.Set("password_hash", accountModifyModel.PasswordHash)
	}
	if accountModifyModel.AboutMe != nil {
		builder = builder.Set("about_me", accountModifyModel.AboutMe)
	}
	if accountModifyModel.LastSeen != nil {
		builder = builder.Set("last_seen", accountModifyModel.LastSeen)
	}

	builder = builder.
		Where(sq.Eq{"id": accountModifyModel.ID}).
		Suffix("RETURNING id, username, email, password_hash, about_me, last_seen")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository update error: %w", err)
	}

	var accountModel AccountDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&accountModel.ID,
			&accountModel.Username,
			&accountModel.Email,
			&accountModel.PasswordHash,
			&accountModel.AboutMe,
			&accountModel.LastSeen,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, auth.ErrConflict
		}

		return nil, fmt.Errorf("unexpected account repository update error: %w", err)
	}

	return ToDomain(&accountModel), nil
}

// TouchLastSeen grava o visto-por-último sem retornar a linha; é
// executado em toda requisição autenticada.
func (r *Repository) TouchLastSeen(ctx context.Context, id int64) error {
	query := `UPDATE accounts SET last_seen = NOW() WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected account repository touchlastseen error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return auth.ErrAccountNotFound
	}
	return nil
}
