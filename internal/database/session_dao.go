package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shelterops/shelter-api/internal/model"
)

type SessionDAO struct {
	Logger *slog.Logger
	*DB
}

func NewSessionDAO(logger *slog.Logger, db *DB) *SessionDAO {
	return &SessionDAO{
		Logger: logger.With("dao", "session"),
		DB:     db,
	}
}

func (dao *SessionDAO) GetByToken(ctx context.Context, token uuid.UUID) (model.Session, error) {
	logger := dao.Logger.With("query", "getByToken")

	query, args, err := dao.Builder.
		Select("*").
		From("sessions").
		Where(squirrel.Eq{"token": token}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Session{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var session model.Session
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&session); err != nil {
		if IsNoRows(err) {
			return model.Session{}, model.NewError("session", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Session{}, err
	}

	return session, nil
}

type InsertSessionDTO struct {
	User       model.ID
	Token      uuid.UUID
	Expiration time.Time
}

func (dao *SessionDAO) Insert(ctx context.Context, dto InsertSessionDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("sessions").
		Columns("user_id", "token", "expiration").
		Values(dto.User, dto.Token, dto.Expiration).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var id model.ID
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&id); err != nil {
		if IsUniqueViolation(err) {
			return 0, model.NewError("session", model.ErrExists)
		}

		logger.Warn("failed query execute", "error", err)

		return 0, err
	}

	return id, nil
}

// DeleteByToken is an idempotent no-op when the token is already gone.
func (dao *SessionDAO) DeleteByToken(ctx context.Context, token uuid.UUID) error {
	logger := dao.Logger.With("query", "deleteByToken")

	query, args, err := dao.Builder.
		Delete("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	return nil
}

// DeleteAllForUser removes every session owned by the user, except the one
// matching keep when it is non-nil.
func (dao *SessionDAO) DeleteAllForUser(ctx context.Context, user model.ID, keep *uuid.UUID) error {
	logger := dao.Logger.With("query", "deleteAllForUser")

	builder := dao.Builder.
		Delete("sessions").
		Where(squirrel.Eq{"user_id": user})
	if keep != nil {
		builder = builder.Where(squirrel.NotEq{"token": *keep})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	return nil
}
