package store

import (
	"context"

	"gym-registration-api/internal/model"
)

// Routine rows are always loaded with the owning trainee joined in; the SOAP
// front end embeds the trainee in every routine payload.
const routineSelect = `
	SELECT r.id, r.user_id, r.availability, r.created_at, r.updated_at,
	       t.id, t.name, t.email, COALESCE(t.timezone,''), t.created_at, t.updated_at
	FROM routines r
	JOIN trainees t ON t.id = r.user_id`

func scanRoutine(row interface{ Scan(...any) error }) (*model.Routine, error) {
	r := &model.Routine{Trainee: &model.Trainee{}}
	err := row.Scan(
		&r.ID, &r.UserID, &r.Availability, &r.CreatedAt, &r.UpdatedAt,
		&r.Trainee.ID, &r.Trainee.Name, &r.Trainee.Email, &r.Trainee.Timezone,
		&r.Trainee.CreatedAt, &r.Trainee.UpdatedAt,
	)
	if err != nil {
		return nil, wrap(err)
	}
	return r, nil
}

func (s *Store) CreateRoutine(ctx context.Context, r *model.Routine) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO routines (id, user_id, availability)
		 VALUES ($1,$2,$3)
		 RETURNING created_at, updated_at`,
		r.ID, r.UserID, r.Availability,
	).Scan(&r.CreatedAt, &r.UpdatedAt)
	return wrap(err)
}

func (s *Store) RoutineByID(ctx context.Context, id string) (*model.Routine, error) {
	return scanRoutine(s.pool.QueryRow(ctx, routineSelect+` WHERE r.id = $1`, id))
}

func (s *Store) RoutineByTrainee(ctx context.Context, traineeID string) (*model.Routine, error) {
	return scanRoutine(s.pool.QueryRow(ctx, routineSelect+` WHERE r.user_id = $1`, traineeID))
}

// ListRoutines returns all routines, or just the given trainee's when
// traineeID is non-empty, newest first.
func (s *Store) ListRoutines(ctx context.Context, traineeID string) ([]model.Routine, error) {
	q := routineSelect
	var args []any
	if traineeID != "" {
		q += ` WHERE r.user_id = $1`
		args = append(args, traineeID)
	}
	q += ` ORDER BY r.created_at DESC, r.id`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Routine
	for rows.Next() {
		r, err := scanRoutine(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (s *Store) UpdateRoutine(ctx context.Context, id string, availability []model.Slot) (*model.Routine, error) {
	var updated string
	err := s.pool.QueryRow(ctx,
		`UPDATE routines SET availability = $1, updated_at = NOW() WHERE id = $2 RETURNING id`,
		availability, id,
	).Scan(&updated)
	if err != nil {
		return nil, wrap(err)
	}
	return s.RoutineByID(ctx, id)
}

func (s *Store) DeleteRoutine(ctx context.Context, id string) error {
	ct, err := s.pool.Exec(ctx, `DELETE FROM routines WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
