package soap

import (
	"context"
	"encoding/xml"

	"gym-registration-api/internal/service"
)

type listRoutinesRequest struct {
	Token  string `xml:"token"`
	UserID string `xml:"userId"`
}

type listRoutinesResponse struct {
	XMLName  xml.Name     `xml:"tns:ListRoutinesResponse"`
	Routines []routineXML `xml:"routines>routine"`
}

func (s *Server) listRoutines(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req listRoutinesRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	routines, err := s.svc.ListRoutines(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]routineXML, len(routines))
	for i := range routines {
		out[i] = toRoutineXML(&routines[i])
	}
	return listRoutinesResponse{Routines: out}, nil
}

type createRoutineRequest struct {
	Token   string `xml:"token"`
	Routine struct {
		UserID       string    `xml:"userId"`
		Availability []slotXML `xml:"availability>slot"`
	} `xml:"routine"`
}

type createRoutineResponse struct {
	XMLName xml.Name   `xml:"tns:CreateRoutineResponse"`
	Routine routineXML `xml:"routine"`
}

func (s *Server) createRoutine(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req createRoutineRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	r, err := s.svc.CreateRoutine(ctx, service.CreateRoutineInput{
		UserID:       req.Routine.UserID,
		Availability: toSlots(req.Routine.Availability),
	})
	if err != nil {
		return nil, err
	}
	return createRoutineResponse{Routine: toRoutineXML(r)}, nil
}

type getRoutineRequest struct {
	Token string `xml:"token"`
	ID    string `xml:"id"`
}

type getRoutineResponse struct {
	XMLName xml.Name   `xml:"tns:GetRoutineResponse"`
	Routine routineXML `xml:"routine"`
}

func (s *Server) getRoutine(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req getRoutineRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	r, err := s.svc.GetRoutine(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return getRoutineResponse{Routine: toRoutineXML(r)}, nil
}

type getTraineeRoutineRequest struct {
	Token  string `xml:"token"`
	UserID string `xml:"userId"`
}

type getTraineeRoutineResponse struct {
	XMLName xml.Name   `xml:"tns:GetTraineeRoutineResponse"`
	Routine routineXML `xml:"routine"`
}

func (s *Server) getTraineeRoutine(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req getTraineeRoutineRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	r, err := s.svc.GetTraineeRoutine(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	return getTraineeRoutineResponse{Routine: toRoutineXML(r)}, nil
}

type updateRoutineRequest struct {
	Token   string `xml:"token"`
	ID      string `xml:"id"`
	Routine struct {
		Availability []slotXML `xml:"availability>slot"`
	} `xml:"routine"`
}

type updateRoutineResponse struct {
	XMLName xml.Name   `xml:"tns:UpdateRoutineResponse"`
	Routine routineXML `xml:"routine"`
}

func (s *Server) updateRoutine(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req updateRoutineRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	r, err := s.svc.UpdateRoutine(ctx, req.ID, toSlots(req.Routine.Availability))
	if err != nil {
		return nil, err
	}
	return updateRoutineResponse{Routine: toRoutineXML(r)}, nil
}

type deleteRoutineRequest struct {
	Token string `xml:"token"`
	ID    string `xml:"id"`
}

type deleteRoutineResponse struct {
	XMLName xml.Name `xml:"tns:DeleteRoutineResponse"`
	Message string   `xml:"message"`
}

func (s *Server) deleteRoutine(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req deleteRoutineRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	if err := s.svc.DeleteRoutine(ctx, req.ID); err != nil {
		return nil, err
	}
	return deleteRoutineResponse{Message: "Routine deleted"}, nil
}
