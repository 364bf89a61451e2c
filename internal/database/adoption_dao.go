package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shelterops/shelter-api/internal/model"
)

type AdoptionDAO struct {
	Logger *slog.Logger
	*DB
}

func NewAdoptionDAO(logger *slog.Logger, db *DB) *AdoptionDAO {
	return &AdoptionDAO{
		Logger: logger.With("dao", "adoption"),
		DB:     db,
	}
}

func (dao *AdoptionDAO) Get(ctx context.Context, id model.ID) (model.AdoptionRequest, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("*").
		From("adoption_requests").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.AdoptionRequest{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var request model.AdoptionRequest
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&request); err != nil {
		if IsNoRows(err) {
			return model.AdoptionRequest{}, model.NewError("adoption request", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.AdoptionRequest{}, err
	}

	return request, nil
}

type FindAdoptionFilter struct {
	User   *model.ID
	Animal *model.ID
	Status *model.RequestStatus
}

func (dao *AdoptionDAO) Find(ctx context.Context, filter FindAdoptionFilter) ([]model.AdoptionRequest, error) {
	logger := dao.Logger.With("query", "find")

	equals := squirrel.Eq{}
	if filter.User != nil {
		equals["user_id"] = *filter.User
	}
	if filter.Animal != nil {
		equals["animal_id"] = *filter.Animal
	}
	if filter.Status != nil {
		equals["status"] = *filter.Status
	}

	query, args, err := dao.Builder.
		Select("*").
		From("adoption_requests").
		Where(equals).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return []model.AdoptionRequest{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	requests := []model.AdoptionRequest{}
	if err := dao.SelectContext(ctx, &requests, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.AdoptionRequest{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.AdoptionRequest{}, err
	}

	return requests, nil
}

type InsertAdoptionDTO struct {
	User    model.ID
	Animal  model.ID
	Date    time.Time
	Message string
}

func (dao *AdoptionDAO) Insert(ctx context.Context, dto InsertAdoptionDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("adoption_requests").
		Columns("user_id", "animal_id", "date", "message").
		Values(dto.User, dto.Animal, dto.Date, dto.Message).
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

func (dao *AdoptionDAO) UpdateStatus(ctx context.Context, id model.ID, status model.RequestStatus) error {
	logger := dao.Logger.With("query", "updateStatus")

	query, args, err := dao.Builder.
		Update("adoption_requests").
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

// RejectPendingSiblings rejects every pending request for the animal other
// than the accepted one.
func (dao *AdoptionDAO) RejectPendingSiblings(ctx context.Context, animal, except model.ID) error {
	logger := dao.Logger.With("query", "rejectPendingSiblings")

	query, args, err := dao.Builder.
		Update("adoption_requests").
		SetMap(map[string]any{"status": model.RequestRejected}).
		Where(squirrel.Eq{"animal_id": animal, "status": model.RequestPending}).
		Where(squirrel.NotEq{"id": except}).
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
