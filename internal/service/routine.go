package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"gym-registration-api/internal/model"
	"gym-registration-api/internal/store"
)

type CreateRoutineInput struct {
	UserID       string
	Availability []model.Slot
}

// CreateRoutine verifies the referenced trainee exists and enforces one
// routine per trainee.
func (s *Service) CreateRoutine(ctx context.Context, in CreateRoutineInput) (*model.Routine, error) {
	if in.UserID == "" || len(in.Availability) == 0 {
		return nil, Invalid("userId and availability are required")
	}
	trainee, err := s.store.TraineeByID(ctx, in.UserID)
	if err != nil {
		return nil, storeErr(err, "Trainee not found", "")
	}
	r := &model.Routine{
		ID:           uuid.New().String(),
		UserID:       in.UserID,
		Availability: in.Availability,
	}
	if err := s.store.CreateRoutine(ctx, r); err != nil {
		return nil, storeErr(err, "Trainee not found", "Trainee already has a routine")
	}
	r.Trainee = trainee
	return r, nil
}

func (s *Service) ListRoutines(ctx context.Context, traineeID string) ([]model.Routine, error) {
	out, err := s.store.ListRoutines(ctx, traineeID)
	if err != nil {
		return nil, Internal(err)
	}
	return out, nil
}

func (s *Service) GetRoutine(ctx context.Context, id string) (*model.Routine, error) {
	r, err := s.store.RoutineByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "Routine not found", "")
	}
	return r, nil
}

func (s *Service) GetTraineeRoutine(ctx context.Context, traineeID string) (*model.Routine, error) {
	r, err := s.store.RoutineByTrainee(ctx, traineeID)
	if err != nil {
		return nil, storeErr(err, "Routine not found", "")
	}
	return r, nil
}

func (s *Service) UpdateRoutine(ctx context.Context, id string, availability []model.Slot) (*model.Routine, error) {
	if len(availability) == 0 {
		return nil, Invalid("availability is required")
	}
	r, err := s.store.UpdateRoutine(ctx, id, availability)
	if err != nil {
		return nil, storeErr(err, "Routine not found", "")
	}
	return r, nil
}

// UpdateTraineeRoutine resolves the routine by its owner, then updates it.
func (s *Service) UpdateTraineeRoutine(ctx context.Context, traineeID string, availability []model.Slot) (*model.Routine, error) {
	r, err := s.store.RoutineByTrainee(ctx, traineeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Routine not found")
		}
		return nil, Internal(err)
	}
	return s.UpdateRoutine(ctx, r.ID, availability)
}

func (s *Service) DeleteRoutine(ctx context.Context, id string) error {
	if err := s.store.DeleteRoutine(ctx, id); err != nil {
		return storeErr(err, "Routine not found", "")
	}
	return nil
}
