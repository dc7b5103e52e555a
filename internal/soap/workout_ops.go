package soap

import (
	"context"
	"encoding/xml"

	"gym-registration-api/internal/service"
)

type listWorkoutsRequest struct {
	Token string `xml:"token"`
}

type listWorkoutsResponse struct {
	XMLName  xml.Name     `xml:"tns:ListWorkoutsResponse"`
	Workouts []workoutXML `xml:"workouts>workout"`
}

func (s *Server) listWorkouts(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req listWorkoutsRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	workouts, err := s.svc.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]workoutXML, len(workouts))
	for i := range workouts {
		out[i] = toWorkoutXML(&workouts[i])
	}
	return listWorkoutsResponse{Workouts: out}, nil
}

type createWorkoutRequest struct {
	Token   string `xml:"token"`
	Workout struct {
		Name        string `xml:"name"`
		Duration    int    `xml:"duration"`
		Description string `xml:"description"`
		Color       string `xml:"color"`
	} `xml:"workout"`
}

type createWorkoutResponse struct {
	XMLName xml.Name   `xml:"tns:CreateWorkoutResponse"`
	Workout workoutXML `xml:"workout"`
}

func (s *Server) createWorkout(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req createWorkoutRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	w, err := s.svc.CreateWorkout(ctx, service.CreateWorkoutInput{
		Name:        req.Workout.Name,
		Duration:    req.Workout.Duration,
		Description: req.Workout.Description,
		Color:       req.Workout.Color,
	})
	if err != nil {
		return nil, err
	}
	return createWorkoutResponse{Workout: toWorkoutXML(w)}, nil
}

type getWorkoutRequest struct {
	Token string `xml:"token"`
	ID    string `xml:"id"`
}

type getWorkoutResponse struct {
	XMLName xml.Name   `xml:"tns:GetWorkoutResponse"`
	Workout workoutXML `xml:"workout"`
}

func (s *Server) getWorkout(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req getWorkoutRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	w, err := s.svc.GetWorkout(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return getWorkoutResponse{Workout: toWorkoutXML(w)}, nil
}

type updateWorkoutRequest struct {
	Token   string `xml:"token"`
	ID      string `xml:"id"`
	Workout struct {
		Name        *string `xml:"name"`
		Duration    *int    `xml:"duration"`
		Description *string `xml:"description"`
		Color       *string `xml:"color"`
	} `xml:"workout"`
}

type updateWorkoutResponse struct {
	XMLName xml.Name   `xml:"tns:UpdateWorkoutResponse"`
	Workout workoutXML `xml:"workout"`
}

func (s *Server) updateWorkout(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req updateWorkoutRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	w, err := s.svc.UpdateWorkout(ctx, req.ID, service.UpdateWorkoutInput{
		Name:        req.Workout.Name,
		Duration:    req.Workout.Duration,
		Description: req.Workout.Description,
		Color:       req.Workout.Color,
	})
	if err != nil {
		return nil, err
	}
	return updateWorkoutResponse{Workout: toWorkoutXML(w)}, nil
}

type deleteWorkoutRequest struct {
	Token string `xml:"token"`
	ID    string `xml:"id"`
}

type deleteWorkoutResponse struct {
	XMLName xml.Name `xml:"tns:DeleteWorkoutResponse"`
	Message string   `xml:"message"`
}

func (s *Server) deleteWorkout(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req deleteWorkoutRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	if err := s.svc.DeleteWorkout(ctx, req.ID); err != nil {
		return nil, err
	}
	return deleteWorkoutResponse{Message: "Workout deleted"}, nil
}
