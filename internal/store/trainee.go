package store

import (
	"context"
	"fmt"
	"strings"

	"gym-registration-api/internal/model"
)

const traineeCols = `id, name, email, COALESCE(timezone,''), created_at, updated_at`

func (s *Store) CreateTrainee(ctx context.Context, t *model.Trainee) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO trainees (id, name, email, password_hash, timezone)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING created_at, updated_at`,
		t.ID, t.Name, t.Email, t.PasswordHash, nullable(t.Timezone),
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	return wrap(err)
}

func (s *Store) TraineeByID(ctx context.Context, id string) (*model.Trainee, error) {
	t := &model.Trainee{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+traineeCols+` FROM trainees WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Email, &t.Timezone, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, wrap(err)
	}
	return t, nil
}

// TraineeByEmail is the login lookup; it is the only query that reads the
// password hash.
func (s *Store) TraineeByEmail(ctx context.Context, email string) (*model.Trainee, error) {
	t := &model.Trainee{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, COALESCE(timezone,''), created_at, updated_at
		 FROM trainees WHERE email = $1`, email,
	).Scan(&t.ID, &t.Name, &t.Email, &t.PasswordHash, &t.Timezone, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, wrap(err)
	}
	return t, nil
}

// ListTrainees pages in creation order. List and count run in one transaction
// so the pagination total matches the page contents.
func (s *Store) ListTrainees(ctx context.Context, limit, offset int) ([]model.Trainee, int, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx,
		`SELECT `+traineeCols+` FROM trainees
		 ORDER BY created_at, id
		 LIMIT $1 OFFSET $2`, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	var out []model.Trainee
	for rows.Next() {
		var t model.Trainee
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.Timezone, &t.CreatedAt, &t.UpdatedAt); err != nil {
			rows.Close()
			return nil, 0, err
		}
		out = append(out, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM trainees`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, tx.Commit(ctx)
}

type TraineeUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Timezone     *string
}

func (s *Store) UpdateTrainee(ctx context.Context, id string, u TraineeUpdate) (*model.Trainee, error) {
	sets := []string{"updated_at = NOW()"}
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if u.Name != nil {
		add("name", *u.Name)
	}
	if u.Email != nil {
		add("email", *u.Email)
	}
	if u.PasswordHash != nil {
		add("password_hash", *u.PasswordHash)
	}
	if u.Timezone != nil {
		add("timezone", nullable(*u.Timezone))
	}
	args = append(args, id)

	t := &model.Trainee{}
	err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE trainees SET %s WHERE id = $%d RETURNING %s`,
			strings.Join(sets, ", "), len(args), traineeCols),
		args...,
	).Scan(&t.ID, &t.Name, &t.Email, &t.Timezone, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, wrap(err)
	}
	return t, nil
}

// DeleteTrainee removes the row; routines and registrations referencing it go
// with it via ON DELETE CASCADE.
func (s *Store) DeleteTrainee(ctx context.Context, id string) error {
	ct, err := s.pool.Exec(ctx, `DELETE FROM trainees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
