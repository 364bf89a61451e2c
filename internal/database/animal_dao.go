package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shelterops/shelter-api/internal/model"
)

type AnimalDAO struct {
	Logger *slog.Logger
	*DB
}

func NewAnimalDAO(logger *slog.Logger, db *DB) *AnimalDAO {
	return &AnimalDAO{
		Logger: logger.With("dao", "animal"),
		DB:     db,
	}
}

func (dao *AnimalDAO) Get(ctx context.Context, id model.ID) (model.Animal, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("*").
		From("animals").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Animal{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var animal model.Animal
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&animal); err != nil {
		if IsNoRows(err) {
			return model.Animal{}, model.NewError("animal", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Animal{}, err
	}

	return animal, nil
}

type FindAnimalFilter struct {
	Status *model.AnimalStatus
	Hidden *bool
}

func (dao *AnimalDAO) Find(ctx context.Context, filter FindAnimalFilter) ([]model.Animal, error) {
	logger := dao.Logger.With("query", "find")

	equals := squirrel.Eq{}
	if filter.Status != nil {
		equals["status"] = *filter.Status
	}
	if filter.Hidden != nil {
		equals["hidden"] = *filter.Hidden
	}

	query, args, err := dao.Builder.
		Select("*").
		From("animals").
		Where(equals).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return []model.Animal{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	animals := []model.Animal{}
	if err := dao.SelectContext(ctx, &animals, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.Animal{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.Animal{}, err
	}

	return animals, nil
}

type InsertAnimalDTO struct {
	Name        string
	Species     string
	Age         int
	Description string
	Photo       []byte
}

func (dao *AnimalDAO) Insert(ctx context.Context, dto InsertAnimalDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("animals").
		Columns("name", "species", "age", "description", "photo").
		Values(dto.Name, dto.Species, dto.Age, dto.Description, dto.Photo).
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

type UpdateAnimalDTO struct {
	Name        *string
	Species     *string
	Age         *int
	Description *string
	Photo       *[]byte
	Status      *model.AnimalStatus
	Hidden      *bool
}

func (dao *AnimalDAO) Update(ctx context.Context, id model.ID, dto UpdateAnimalDTO) error {
	logger := dao.Logger.With("query", "update")

	data := make(map[string]any, 8)
	data["updated_at"] = time.Now()
	if dto.Name != nil {
		data["name"] = *dto.Name
	}
	if dto.Species != nil {
		data["species"] = *dto.Species
	}
	if dto.Age != nil {
		data["age"] = *dto.Age
	}
	if dto.Description != nil {
		data["description"] = *dto.Description
	}
	if dto.Photo != nil {
		data["photo"] = *dto.Photo
	}
	if dto.Status != nil {
		data["status"] = *dto.Status
	}
	if dto.Hidden != nil {
		data["hidden"] = *dto.Hidden
	}

	query, args, err := dao.Builder.
		Update("animals").
		SetMap(data).
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

func (dao *AnimalDAO) Delete(ctx context.Context, id model.ID) error {
	logger := dao.Logger.With("query", "delete")

	query, args, err := dao.Builder.
		Delete("animals").
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
