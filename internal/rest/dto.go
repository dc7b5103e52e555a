package rest

import (
	"time"

	"gym-registration-api/internal/model"
)

// Wire shapes. The password hash never appears here.

type traineeJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timezone  string    `json:"timezone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toTraineeJSON(t *model.Trainee) traineeJSON {
	return traineeJSON{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Timezone:  t.Timezone,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type workoutJSON struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Duration    int       `json:"duration"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toWorkoutJSON(w *model.Workout) workoutJSON {
	return workoutJSON{
		ID:          w.ID,
		Name:        w.Name,
		Duration:    w.Duration,
		Description: w.Description,
		Color:       w.Color,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

type routineJSON struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId"`
	Availability []model.Slot `json:"availability"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func toRoutineJSON(r *model.Routine) routineJSON {
	return routineJSON{
		ID:           r.ID,
		UserID:       r.UserID,
		Availability: r.Availability,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type registrationJSON struct {
	ID           string     `json:"id"`
	EventID      string     `json:"eventId"`
	UserID       string     `json:"userId"`
	InviteeEmail string     `json:"inviteeEmail"`
	StartTime    time.Time  `json:"startTime"`
	EndTime      *time.Time `json:"endTime,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func toRegistrationJSON(g *model.Registration) registrationJSON {
	return registrationJSON{
		ID:           g.ID,
		EventID:      g.EventID,
		UserID:       g.UserID,
		InviteeEmail: g.InviteeEmail,
		StartTime:    g.StartTime,
		EndTime:      g.EndTime,
		Status:       g.Status,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

type paginationJSON struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}
