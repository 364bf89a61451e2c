package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shelterops/shelter-api/internal/model"
)

type VetRequestDAO struct {
	Logger *slog.Logger
	*DB
}

func NewVetRequestDAO(logger *slog.Logger, db *DB) *VetRequestDAO {
	return &VetRequestDAO{
		Logger: logger.With("dao", "vetRequest"),
		DB:     db,
	}
}

func (dao *VetRequestDAO) Get(ctx context.Context, id model.ID) (model.VetRequest, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("*").
		From("vet_requests").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.VetRequest{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var request model.VetRequest
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&request); err != nil {
		if IsNoRows(err) {
			return model.VetRequest{}, model.NewError("vet request", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.VetRequest{}, err
	}

	return request, nil
}

type FindVetRequestFilter struct {
	Animal *model.ID
	Status *model.RequestStatus
}

func (dao *VetRequestDAO) Find(ctx context.Context, filter FindVetRequestFilter) ([]model.VetRequest, error) {
	logger := dao.Logger.With("query", "find")

	equals := squirrel.Eq{}
	if filter.Animal != nil {
		equals["animal_id"] = *filter.Animal
	}
	if filter.Status != nil {
		equals["status"] = *filter.Status
	}

	query, args, err := dao.Builder.
		Select("*").
		From("vet_requests").
		Where(equals).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return []model.VetRequest{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	requests := []model.VetRequest{}
	if err := dao.SelectContext(ctx, &requests, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.VetRequest{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.VetRequest{}, err
	}

	return requests, nil
}

type InsertVetRequestDTO struct {
	Animal      model.ID
	User        model.ID
	Date        time.Time
	Description string
}

func (dao *VetRequestDAO) Insert(ctx context.Context, dto InsertVetRequestDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("vet_requests").
		Columns("animal_id", "user_id", "date", "description").
		Values(dto.Animal, dto.User, dto.Date, dto.Description).
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

func (dao *VetRequestDAO) UpdateStatus(ctx context.Context, id model.ID, status model.RequestStatus) error {
	logger := dao.Logger.With("query", "updateStatus")

	query, args, err := dao.Builder.
		Update("vet_requests").
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
