package service

import (
	"context"

	"github.com/google/uuid"

	"gym-registration-api/internal/auth"
	"gym-registration-api/internal/model"
	"gym-registration-api/internal/store"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

type CreateTraineeInput struct {
	Name     string
	Email    string
	Password string
	Timezone string
}

func (s *Service) CreateTrainee(ctx context.Context, in CreateTraineeInput) (*model.Trainee, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, Invalid("name, email, and password are required")
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, Internal(err)
	}
	t := &model.Trainee{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Timezone:     in.Timezone,
	}
	if err := s.store.CreateTrainee(ctx, t); err != nil {
		return nil, storeErr(err, "Trainee not found", "Email already in use")
	}
	t.PasswordHash = ""
	return t, nil
}

// ListTrainees pages in creation order. Page parameters below 1 fall back to
// defaults; there is no upper bound on pageSize.
func (s *Service) ListTrainees(ctx context.Context, page, pageSize int) ([]model.Trainee, int, error) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	out, total, err := s.store.ListTrainees(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, Internal(err)
	}
	return out, total, nil
}

func (s *Service) GetTrainee(ctx context.Context, id string) (*model.Trainee, error) {
	t, err := s.store.TraineeByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "Trainee not found", "")
	}
	return t, nil
}

type UpdateTraineeInput struct {
	Name     *string
	Email    *string
	Password *string
	Timezone *string
}

func (s *Service) UpdateTrainee(ctx context.Context, id string, in UpdateTraineeInput) (*model.Trainee, error) {
	u := store.TraineeUpdate{
		Name:     in.Name,
		Email:    in.Email,
		Timezone: in.Timezone,
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, Internal(err)
		}
		u.PasswordHash = &hash
	}
	t, err := s.store.UpdateTrainee(ctx, id, u)
	if err != nil {
		return nil, storeErr(err, "Trainee not found", "Email already in use")
	}
	return t, nil
}

func (s *Service) DeleteTrainee(ctx context.Context, id string) error {
	if err := s.store.DeleteTrainee(ctx, id); err != nil {
		return storeErr(err, "Trainee not found", "")
	}
	return nil
}
