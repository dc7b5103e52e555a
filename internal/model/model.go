package model

import "time"

type Trainee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Timezone     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Workout struct {
	ID          string
	Name        string
	Duration    int // minutes
	Description string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Slot is one entry in a trainee's weekly availability.
type Slot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type Routine struct {
	ID           string
	UserID       string
	Availability []Slot
	Trainee      *Trainee
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const (
	StatusScheduled = "scheduled"
	StatusCanceled  = "canceled"
	StatusCompleted = "completed"
)

type Registration struct {
	ID           string
	EventID      string
	UserID       string
	InviteeEmail string
	StartTime    time.Time
	EndTime      *time.Time
	Status       string
	Trainee      *Trainee
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
