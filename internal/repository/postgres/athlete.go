package postgres

import (
	"context"
	"fmt"
	"strings"

	"athlete-service/internal/domain/athlete"
	apperrors "athlete-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

const athleteColumns = `id, name, gender, runtime, age, weight, oxygen_consumption, run_pulse, rest_pulse, max_pulse, performance`

// sortableColumns whitelists ORDER BY targets; anything else falls back
// to id ordering so callers cannot inject arbitrary SQL.
var sortableColumns = map[string]bool{
	"id": true, "name": true, "gender": true, "runtime": true,
	"age": true, "weight": true, "oxygen_consumption": true,
	"run_pulse": true, "rest_pulse": true, "max_pulse": true,
	"performance": true,
}

type AthleteRepository struct {
	db *DB
}

func NewAthleteRepository(db *DB) *AthleteRepository {
	return &AthleteRepository{db: db}
}

func (r *AthleteRepository) List(ctx context.Context, filter athlete.ListFilter) ([]*athlete.Athlete, error) {
	query := "SELECT " + athleteColumns + " FROM athletes"
	var conditions []string
	var args []any

	addCondition := func(column string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.Name != nil {
		addCondition("name", *filter.Name)
	}
	if filter.Gender != nil {
		addCondition("gender", *filter.Gender)
	}
	if filter.Age != nil {
		addCondition("age", *filter.Age)
	}
	if filter.Performance != nil {
		addCondition("performance", *filter.Performance)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	sortBy := "id"
	if sortableColumns[filter.SortBy] {
		sortBy = filter.SortBy
	}
	query += " ORDER BY " + sortBy
	if filter.SortDesc {
		query += " DESC"
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errFailedListAthletes(err)
	}
	defer rows.Close()

	var athletes []*athlete.Athlete
	for rows.Next() {
		a := &athlete.Athlete{}
		if err := scanAthlete(rows, a); err != nil {
			return nil, errFailedScanAthlete(err)
		}
		athletes = append(athletes, a)
	}

	if err := rows.Err(); err != nil {
		return nil, errIterateAthletes(err)
	}

	return athletes, nil
}

func (r *AthleteRepository) GetByID(ctx context.Context, id int64) (*athlete.Athlete, error) {
	query := "SELECT " + athleteColumns + " FROM athletes WHERE id = $1"

	a := &athlete.Athlete{}
	err := scanAthlete(r.db.Pool.QueryRow(ctx, query, id), a)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errAthleteNotFound)
		}
		return nil, errFailedGetAthlete(err)
	}

	return a, nil
}

func (r *AthleteRepository) Create(ctx context.Context, input athlete.CreateInput) (*athlete.Athlete, error) {
	query := `
		INSERT INTO athletes (name, gender, runtime, age, weight, oxygen_consumption, run_pulse, rest_pulse, max_pulse, performance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + athleteColumns

	a := &athlete.Athlete{}
	err := scanAthlete(r.db.Pool.QueryRow(ctx, query,
		input.Name, input.Gender, input.Runtime, input.Age, input.Weight,
		input.OxygenConsumption, input.RunPulse, input.RestPulse,
		input.MaxPulse, input.Performance,
	), a)

	if err != nil {
		return nil, errFailedCreateAthlete(err)
	}

	return a, nil
}

func (r *AthleteRepository) Update(ctx context.Context, id int64, input athlete.UpdateInput) (*athlete.Athlete, error) {
	var sets []string
	args := []any{id}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.Name != nil {
		addSet("name", *input.Name)
	}
	if input.Gender != nil {
		addSet("gender", *input.Gender)
	}
	if input.Runtime != nil {
		addSet("runtime", *input.Runtime)
	}
	if input.Age != nil {
		addSet("age", *input.Age)
	}
	if input.Weight != nil {
		addSet("weight", *input.Weight)
	}
	if input.OxygenConsumption != nil {
		addSet("oxygen_consumption", *input.OxygenConsumption)
	}
	if input.RunPulse != nil {
		addSet("run_pulse", *input.RunPulse)
	}
	if input.RestPulse != nil {
		addSet("rest_pulse", *input.RestPulse)
	}
	if input.MaxPulse != nil {
		addSet("max_pulse", *input.MaxPulse)
	}
	if input.Performance != nil {
		addSet("performance", *input.Performance)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	query := "UPDATE athletes SET " + strings.Join(sets, ", ") +
		" WHERE id = $1 RETURNING " + athleteColumns

	a := &athlete.Athlete{}
	err := scanAthlete(r.db.Pool.QueryRow(ctx, query, args...), a)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errAthleteNotFound)
		}
		return nil, errFailedUpdateAthlete(err)
	}

	return a, nil
}

func (r *AthleteRepository) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM athletes WHERE id = $1"

	result, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return errFailedDeleteAthlete(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errAthleteNotFound)
	}

	return nil
}

func scanAthlete(row pgx.Row, a *athlete.Athlete) error {
	return row.Scan(
		&a.ID,
		&a.Name,
		&a.Gender,
		&a.Runtime,
		&a.Age,
		&a.Weight,
		&a.OxygenConsumption,
		&a.RunPulse,
		&a.RestPulse,
		&a.MaxPulse,
		&a.Performance,
	)
}
