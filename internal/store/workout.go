package store

import (
	"context"
	"fmt"
	"strings"

	"gym-registration-api/internal/model"
)

const workoutCols = `id, name, duration, COALESCE(description,''), COALESCE(color,''), created_at, updated_at`

func (s *Store) CreateWorkout(ctx context.Context, w *model.Workout) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO workouts (id, name, duration, description, color)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING created_at, updated_at`,
		w.ID, w.Name, w.Duration, nullable(w.Description), nullable(w.Color),
	).Scan(&w.CreatedAt, &w.UpdatedAt)
	return wrap(err)
}

func (s *Store) WorkoutByID(ctx context.Context, id string) (*model.Workout, error) {
	w := &model.Workout{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+workoutCols+` FROM workouts WHERE id = $1`, id,
	).Scan(&w.ID, &w.Name, &w.Duration, &w.Description, &w.Color, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, wrap(err)
	}
	return w, nil
}

func (s *Store) ListWorkouts(ctx context.Context) ([]model.Workout, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+workoutCols+` FROM workouts ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Workout
	for rows.Next() {
		var w model.Workout
		if err := rows.Scan(&w.ID, &w.Name, &w.Duration, &w.Description, &w.Color, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

type WorkoutUpdate struct {
	Name        *string
	Duration    *int
	Description *string
	Color       *string
}

func (s *Store) UpdateWorkout(ctx context.Context, id string, u WorkoutUpdate) (*model.Workout, error) {
	sets := []string{"updated_at = NOW()"}
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if u.Name != nil {
		add("name", *u.Name)
	}
	if u.Duration != nil {
		add("duration", *u.Duration)
	}
	if u.Description != nil {
		add("description", nullable(*u.Description))
	}
	if u.Color != nil {
		add("color", nullable(*u.Color))
	}
	args = append(args, id)

	w := &model.Workout{}
	err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE workouts SET %s WHERE id = $%d RETURNING %s`,
			strings.Join(sets, ", "), len(args), workoutCols),
		args...,
	).Scan(&w.ID, &w.Name, &w.Duration, &w.Description, &w.Color, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, wrap(err)
	}
	return w, nil
}

func (s *Store) DeleteWorkout(ctx context.Context, id string) error {
	ct, err := s.pool.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
