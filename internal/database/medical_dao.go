package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shelterops/shelter-api/internal/model"
)

type MedicalDAO struct {
	Logger *slog.Logger
	*DB
}

func NewMedicalDAO(logger *slog.Logger, db *DB) *MedicalDAO {
	return &MedicalDAO{
		Logger: logger.With("dao", "medical"),
		DB:     db,
	}
}

func (dao *MedicalDAO) HistoryByAnimal(ctx context.Context, animal model.ID) (model.MedicalHistory, error) {
	logger := dao.Logger.With("query", "historyByAnimal")

	query, args, err := dao.Builder.
		Select("*").
		From("medical_histories").
		Where(squirrel.Eq{"animal_id": animal}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.MedicalHistory{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var history model.MedicalHistory
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&history); err != nil {
		if IsNoRows(err) {
			return model.MedicalHistory{}, model.NewError("medical history", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.MedicalHistory{}, err
	}

	return history, nil
}

type InsertHistoryDTO struct {
	Animal      model.ID
	StartDate   time.Time
	Description string
}

func (dao *MedicalDAO) InsertHistory(ctx context.Context, dto InsertHistoryDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insertHistory")

	query, args, err := dao.Builder.
		Insert("medical_histories").
		Columns("animal_id", "start_date", "description").
		Values(dto.Animal, dto.StartDate, dto.Description).
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
			return 0, model.NewError("medical history", model.ErrExists)
		}

		logger.Warn("failed query execute", "error", err)

		return 0, err
	}

	return id, nil
}

type InsertRecordDTO struct {
	MedicalHistory model.ID
	Date           time.Time
	Description    string
}

func (dao *MedicalDAO) InsertTreatment(ctx context.Context, dto InsertRecordDTO) (model.ID, error) {
	return dao.insertRecord(ctx, "treatments", dto)
}

func (dao *MedicalDAO) InsertVaccination(ctx context.Context, dto InsertRecordDTO) (model.ID, error) {
	return dao.insertRecord(ctx, "vaccinations", dto)
}

func (dao *MedicalDAO) insertRecord(ctx context.Context, table string, dto InsertRecordDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insertRecord", "table", table)

	query, args, err := dao.Builder.
		Insert(table).
		Columns("medical_history_id", "date", "description").
		Values(dto.MedicalHistory, dto.Date, dto.Description).
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

func (dao *MedicalDAO) TreatmentsByHistory(ctx context.Context, history model.ID) ([]model.Treatment, error) {
	logger := dao.Logger.With("query", "treatmentsByHistory")

	query, args, err := dao.Builder.
		Select("*").
		From("treatments").
		Where(squirrel.Eq{"medical_history_id": history}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return []model.Treatment{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	treatments := []model.Treatment{}
	if err := dao.SelectContext(ctx, &treatments, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.Treatment{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.Treatment{}, err
	}

	return treatments, nil
}

func (dao *MedicalDAO) VaccinationsByHistory(ctx context.Context, history model.ID) ([]model.Vaccination, error) {
	logger := dao.Logger.With("query", "vaccinationsByHistory")

	query, args, err := dao.Builder.
		Select("*").
		From("vaccinations").
		Where(squirrel.Eq{"medical_history_id": history}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return []model.Vaccination{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	vaccinations := []model.Vaccination{}
	if err := dao.SelectContext(ctx, &vaccinations, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.Vaccination{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.Vaccination{}, err
	}

	return vaccinations, nil
}
