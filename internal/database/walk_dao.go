package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shelterops/shelter-api/internal/model"
)

type WalkDAO struct {
	Logger *slog.Logger
	*DB
}

func NewWalkDAO(logger *slog.Logger, db *DB) *WalkDAO {
	return &WalkDAO{
		Logger: logger.With("dao", "walk"),
		DB:     db,
	}
}

func (dao *WalkDAO) Get(ctx context.Context, id model.ID) (model.Walk, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("*").
		From("walks").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Walk{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var walk model.Walk
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&walk); err != nil {
		if IsNoRows(err) {
			return model.Walk{}, model.NewError("walk", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Walk{}, err
	}

	return walk, nil
}

// FindActiveByAnimal returns the animal's walks that still occupy their
// interval, i.e. everything except rejected and cancelled ones.
func (dao *WalkDAO) FindActiveByAnimal(ctx context.Context, animal model.ID) ([]model.Walk, error) {
	logger := dao.Logger.With("query", "findActiveByAnimal")

	query, args, err := dao.Builder.
		Select("*").
		From("walks").
		Where(squirrel.Eq{"animal_id": animal}).
		Where(squirrel.NotEq{"status": []model.WalkStatus{model.WalkRejected, model.WalkCancelled}}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return []model.Walk{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	walks := []model.Walk{}
	if err := dao.SelectContext(ctx, &walks, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.Walk{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.Walk{}, err
	}

	return walks, nil
}

func (dao *WalkDAO) FindByUser(ctx context.Context, user model.ID) ([]model.Walk, error) {
	logger := dao.Logger.With("query", "findByUser")

	query, args, err := dao.Builder.
		Select("*").
		From("walks").
		Where(squirrel.Eq{"user_id": user}).
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return []model.Walk{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	walks := []model.Walk{}
	if err := dao.SelectContext(ctx, &walks, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.Walk{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.Walk{}, err
	}

	return walks, nil
}

type FindWalkFilter struct {
	Status *model.WalkStatus
}

func (dao *WalkDAO) Find(ctx context.Context, filter FindWalkFilter) ([]model.Walk, error) {
	logger := dao.Logger.With("query", "find")

	equals := squirrel.Eq{}
	if filter.Status != nil {
		equals["status"] = *filter.Status
	}

	query, args, err := dao.Builder.
		Select("*").
		From("walks").
		Where(equals).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return []model.Walk{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	walks := []model.Walk{}
	if err := dao.SelectContext(ctx, &walks, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.Walk{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.Walk{}, err
	}

	return walks, nil
}

type InsertWalkDTO struct {
	Animal   model.ID
	User     model.ID
	Date     time.Time
	Duration int
	Location string
}

func (dao *WalkDAO) Insert(ctx context.Context, dto InsertWalkDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("walks").
		Columns("animal_id", "user_id", "date", "duration", "location").
		Values(dto.Animal, dto.User, dto.Date, dto.Duration, dto.Location).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var id model.ID
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&id); err != nil {
		logger.Warn("failed query execute", "error", err)

		return 0, err
	}

	return id, nil
}

func (dao *WalkDAO) UpdateStatus(ctx context.Context, id model.ID, status model.WalkStatus) error {
	logger := dao.Logger.With("query", "updateStatus")

	query, args, err := dao.Builder.
		Update("walks").
		SetMap(map[string]any{"status": status}).
		Where(squirrel.Eq{"id": id}).
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
