package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gym-registration-api/internal/model"
)

const registrationSelect = `
	SELECT g.id, g.event_id, g.user_id, g.invitee_email, g.start_time, g.end_time,
	       g.status, g.created_at, g.updated_at,
	       t.id, t.name, t.email, COALESCE(t.timezone,''), t.created_at, t.updated_at
	FROM registrations g
	JOIN trainees t ON t.id = g.user_id`

func scanRegistration(row interface{ Scan(...any) error }) (*model.Registration, error) {
	g := &model.Registration{Trainee: &model.Trainee{}}
	err := row.Scan(
		&g.ID, &g.EventID, &g.UserID, &g.InviteeEmail, &g.StartTime, &g.EndTime,
		&g.Status, &g.CreatedAt, &g.UpdatedAt,
		&g.Trainee.ID, &g.Trainee.Name, &g.Trainee.Email, &g.Trainee.Timezone,
		&g.Trainee.CreatedAt, &g.Trainee.UpdatedAt,
	)
	if err != nil {
		return nil, wrap(err)
	}
	return g, nil
}

func (s *Store) CreateRegistration(ctx context.Context, g *model.Registration) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO registrations (id, event_id, user_id, invitee_email, start_time, end_time, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 RETURNING created_at, updated_at`,
		g.ID, g.EventID, g.UserID, g.InviteeEmail, g.StartTime, g.EndTime, g.Status,
	).Scan(&g.CreatedAt, &g.UpdatedAt)
	return wrap(err)
}

func (s *Store) RegistrationByID(ctx context.Context, id string) (*model.Registration, error) {
	return scanRegistration(s.pool.QueryRow(ctx, registrationSelect+` WHERE g.id = $1`, id))
}

func (s *Store) ListRegistrations(ctx context.Context) ([]model.Registration, error) {
	rows, err := s.pool.Query(ctx, registrationSelect+` ORDER BY g.created_at DESC, g.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Registration
	for rows.Next() {
		g, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	return out, rows.Err()
}

type RegistrationUpdate struct {
	EventID      *string
	UserID       *string
	InviteeEmail *string
	StartTime    *time.Time
	EndTime      **time.Time // outer nil: untouched; inner nil: cleared
	Status       *string
}

func (s *Store) UpdateRegistration(ctx context.Context, id string, u RegistrationUpdate) (*model.Registration, error) {
	sets := []string{"updated_at = NOW()"}
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if u.EventID != nil {
		add("event_id", *u.EventID)
	}
	if u.UserID != nil {
		add("user_id", *u.UserID)
	}
	if u.InviteeEmail != nil {
		add("invitee_email", *u.InviteeEmail)
	}
	if u.StartTime != nil {
		add("start_time", *u.StartTime)
	}
	if u.EndTime != nil {
		add("end_time", *u.EndTime)
	}
	if u.Status != nil {
		add("status", *u.Status)
	}
	args = append(args, id)

	var updated string
	err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE registrations SET %s WHERE id = $%d RETURNING id`,
			strings.Join(sets, ", "), len(args)),
		args...,
	).Scan(&updated)
	if err != nil {
		return nil, wrap(err)
	}
	return s.RegistrationByID(ctx, id)
}

func (s *Store) DeleteRegistration(ctx context.Context, id string) error {
	ct, err := s.pool.Exec(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
