package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gym-registration-api/internal/model"
	"gym-registration-api/internal/store"
)

func validStatus(s string) bool {
	switch s {
	case model.StatusScheduled, model.StatusCanceled, model.StatusCompleted:
		return true
	}
	return false
}

type CreateRegistrationInput struct {
	EventID      string
	UserID       string
	InviteeEmail string
	StartTime    time.Time
	EndTime      *time.Time
	Status       string
}

func (s *Service) CreateRegistration(ctx context.Context, in CreateRegistrationInput) (*model.Registration, error) {
	if in.EventID == "" || in.UserID == "" || in.InviteeEmail == "" || in.StartTime.IsZero() {
		return nil, Invalid("eventId, userId, inviteeEmail, and startTime are required")
	}
	if in.Status == "" {
		in.Status = model.StatusScheduled
	}
	if !validStatus(in.Status) {
		return nil, Invalid("status must be scheduled, canceled, or completed")
	}
	trainee, err := s.store.TraineeByID(ctx, in.UserID)
	if err != nil {
		return nil, storeErr(err, "Trainee not found", "")
	}
	g := &model.Registration{
		ID:           uuid.New().String(),
		EventID:      in.EventID,
		UserID:       in.UserID,
		InviteeEmail: in.InviteeEmail,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Status:       in.Status,
	}
	if err := s.store.CreateRegistration(ctx, g); err != nil {
		return nil, storeErr(err, "Trainee not found", "Trainee is already registered for this event")
	}
	g.Trainee = trainee
	return g, nil
}

func (s *Service) ListRegistrations(ctx context.Context) ([]model.Registration, error) {
	out, err := s.store.ListRegistrations(ctx)
	if err != nil {
		return nil, Internal(err)
	}
	return out, nil
}

func (s *Service) GetRegistration(ctx context.Context, id string) (*model.Registration, error) {
	g, err := s.store.RegistrationByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "Registration not found", "")
	}
	return g, nil
}

type UpdateRegistrationInput struct {
	EventID      *string
	UserID       *string
	InviteeEmail *string
	StartTime    *time.Time
	EndTime      **time.Time
	Status       *string
}

func (s *Service) UpdateRegistration(ctx context.Context, id string, in UpdateRegistrationInput) (*model.Registration, error) {
	if in.Status != nil && !validStatus(*in.Status) {
		return nil, Invalid("status must be scheduled, canceled, or completed")
	}
	g, err := s.store.UpdateRegistration(ctx, id, store.RegistrationUpdate{
		EventID:      in.EventID,
		UserID:       in.UserID,
		InviteeEmail: in.InviteeEmail,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Status:       in.Status,
	})
	if err != nil {
		return nil, storeErr(err, "Registration not found", "Trainee is already registered for this event")
	}
	return g, nil
}

func (s *Service) DeleteRegistration(ctx context.Context, id string) error {
	if err := s.store.DeleteRegistration(ctx, id); err != nil {
		return storeErr(err, "Registration not found", "")
	}
	return nil
}
