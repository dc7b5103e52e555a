package service

import (
	"context"

	"github.com/google/uuid"

	"gym-registration-api/internal/model"
	"gym-registration-api/internal/store"
)

type CreateWorkoutInput struct {
	Name        string
	Duration    int
	Description string
	Color       string
}

func (s *Service) CreateWorkout(ctx context.Context, in CreateWorkoutInput) (*model.Workout, error) {
	if in.Name == "" || in.Duration == 0 {
		return nil, Invalid("name and duration are required")
	}
	if in.Duration < 0 {
		return nil, Invalid("duration must be a positive number of minutes")
	}
	w := &model.Workout{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Duration:    in.Duration,
		Description: in.Description,
		Color:       in.Color,
	}
	if err := s.store.CreateWorkout(ctx, w); err != nil {
		return nil, Internal(err)
	}
	return w, nil
}

func (s *Service) ListWorkouts(ctx context.Context) ([]model.Workout, error) {
	out, err := s.store.ListWorkouts(ctx)
	if err != nil {
		return nil, Internal(err)
	}
	return out, nil
}

func (s *Service) GetWorkout(ctx context.Context, id string) (*model.Workout, error) {
	w, err := s.store.WorkoutByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "Workout not found", "")
	}
	return w, nil
}

type UpdateWorkoutInput struct {
	Name        *string
	Duration    *int
	Description *string
	Color       *string
}

func (s *Service) UpdateWorkout(ctx context.Context, id string, in UpdateWorkoutInput) (*model.Workout, error) {
	if in.Duration != nil && *in.Duration <= 0 {
		return nil, Invalid("duration must be a positive number of minutes")
	}
	w, err := s.store.UpdateWorkout(ctx, id, store.WorkoutUpdate{
		Name:        in.Name,
		Duration:    in.Duration,
		Description: in.Description,
		Color:       in.Color,
	})
	if err != nil {
		return nil, storeErr(err, "Workout not found", "")
	}
	return w, nil
}

func (s *Service) DeleteWorkout(ctx context.Context, id string) error {
	if err := s.store.DeleteWorkout(ctx, id); err != nil {
		return storeErr(err, "Workout not found", "")
	}
	return nil
}
