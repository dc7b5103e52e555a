package soap

import (
	"time"

	"gym-registration-api/internal/model"
)

// Wire shapes shared by the operation handlers. Timestamps travel as RFC 3339
// text and the password hash never appears.

type traineeXML struct {
	ID        string `xml:"id"`
	Name      string `xml:"name"`
	Email     string `xml:"email"`
	Timezone  string `xml:"timezone,omitempty"`
	CreatedAt string `xml:"createdAt"`
	UpdatedAt string `xml:"updatedAt"`
}

func toTraineeXML(t *model.Trainee) traineeXML {
	return traineeXML{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Timezone:  t.Timezone,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}

func traineeRef(t *model.Trainee) *traineeXML {
	if t == nil {
		return nil
	}
	x := toTraineeXML(t)
	return &x
}

type workoutXML struct {
	ID          string `xml:"id"`
	Name        string `xml:"name"`
	Duration    int    `xml:"duration"`
	Description string `xml:"description,omitempty"`
	Color       string `xml:"color,omitempty"`
	CreatedAt   string `xml:"createdAt"`
	UpdatedAt   string `xml:"updatedAt"`
}

func toWorkoutXML(w *model.Workout) workoutXML {
	return workoutXML{
		ID:          w.ID,
		Name:        w.Name,
		Duration:    w.Duration,
		Description: w.Description,
		Color:       w.Color,
		CreatedAt:   w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   w.UpdatedAt.Format(time.RFC3339),
	}
}

type slotXML struct {
	Day       string `xml:"day"`
	StartTime string `xml:"startTime"`
	EndTime   string `xml:"endTime"`
}

func toSlots(in []slotXML) []model.Slot {
	out := make([]model.Slot, len(in))
	for i, s := range in {
		out[i] = model.Slot{Day: s.Day, StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return out
}

func fromSlots(in []model.Slot) []slotXML {
	out := make([]slotXML, len(in))
	for i, s := range in {
		out[i] = slotXML{Day: s.Day, StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return out
}

type routineXML struct {
	ID           string      `xml:"id"`
	UserID       string      `xml:"userId"`
	Availability []slotXML   `xml:"availability>slot"`
	Trainee      *traineeXML `xml:"trainee"`
	CreatedAt    string      `xml:"createdAt"`
	UpdatedAt    string      `xml:"updatedAt"`
}

func toRoutineXML(r *model.Routine) routineXML {
	return routineXML{
		ID:           r.ID,
		UserID:       r.UserID,
		Availability: fromSlots(r.Availability),
		Trainee:      traineeRef(r.Trainee),
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}

type registrationXML struct {
	ID           string      `xml:"id"`
	EventID      string      `xml:"eventId"`
	UserID       string      `xml:"userId"`
	InviteeEmail string      `xml:"inviteeEmail"`
	StartTime    string      `xml:"startTime"`
	EndTime      string      `xml:"endTime,omitempty"`
	Status       string      `xml:"status"`
	Trainee      *traineeXML `xml:"trainee"`
	CreatedAt    string      `xml:"createdAt"`
	UpdatedAt    string      `xml:"updatedAt"`
}

func toRegistrationXML(g *model.Registration) registrationXML {
	x := registrationXML{
		ID:           g.ID,
		EventID:      g.EventID,
		UserID:       g.UserID,
		InviteeEmail: g.InviteeEmail,
		StartTime:    g.StartTime.Format(time.RFC3339),
		Status:       g.Status,
		Trainee:      traineeRef(g.Trainee),
		CreatedAt:    g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    g.UpdatedAt.Format(time.RFC3339),
	}
	if g.EndTime != nil {
		x.EndTime = g.EndTime.Format(time.RFC3339)
	}
	return x
}

type paginationXML struct {
	Page     int `xml:"page"`
	PageSize int `xml:"pageSize"`
	Total    int `xml:"total"`
}
