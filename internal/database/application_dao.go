package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shelterops/shelter-api/internal/model"
)

type ApplicationDAO struct {
	Logger *slog.Logger
	*DB
}

func NewApplicationDAO(logger *slog.Logger, db *DB) *ApplicationDAO {
	return &ApplicationDAO{
		Logger: logger.With("dao", "application"),
		DB:     db,
	}
}

func (dao *ApplicationDAO) Get(ctx context.Context, id model.ID) (model.VolunteerApplication, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("*").
		From("volunteer_applications").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.VolunteerApplication{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var application model.VolunteerApplication
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&application); err != nil {
		if IsNoRows(err) {
			return model.VolunteerApplication{}, model.NewError("volunteer application", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.VolunteerApplication{}, err
	}

	return application, nil
}

type FindApplicationFilter struct {
	Status *model.RequestStatus
}

func (dao *ApplicationDAO) Find(ctx context.Context, filter FindApplicationFilter) ([]model.VolunteerApplication, error) {
	logger := dao.Logger.With("query", "find")

	equals := squirrel.Eq{}
	if filter.Status != nil {
		equals["status"] = *filter.Status
	}

	query, args, err := dao.Builder.
		Select("*").
		From("volunteer_applications").
		Where(equals).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return []model.VolunteerApplication{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	applications := []model.VolunteerApplication{}
	if err := dao.SelectContext(ctx, &applications, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.VolunteerApplication{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.VolunteerApplication{}, err
	}

	return applications, nil
}

type InsertApplicationDTO struct {
	User    model.ID
	Date    time.Time
	Message string
}

// Insert relies on the partial unique index to enforce at most one pending
// application per user, surfacing it as ErrExists.
func (dao *ApplicationDAO) Insert(ctx context.Context, dto InsertApplicationDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("volunteer_applications").
		Columns("user_id", "date", "message").
		Values(dto.User, dto.Date, dto.Message).
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
			return 0, model.NewError("volunteer application", model.ErrExists)
		}

		logger.Warn("failed query execute", "error", err)

		return 0, err
	}

	return id, nil
}

func (dao *ApplicationDAO) UpdateStatus(ctx context.Context, id model.ID, status model.RequestStatus) error {
	logger := dao.Logger.With("query", "updateStatus")

	query, args, err := dao.Builder.
		Update("volunteer_applications").
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
