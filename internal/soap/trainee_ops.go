package soap

import (
	"context"
	"encoding/xml"

	"gym-registration-api/internal/service"
)

type listTraineesRequest struct {
	Token    string `xml:"token"`
	Page     int    `xml:"page"`
	PageSize int    `xml:"pageSize"`
}

type listTraineesResponse struct {
	XMLName    xml.Name      `xml:"tns:ListTraineesResponse"`
	Trainees   []traineeXML  `xml:"trainees>trainee"`
	Pagination paginationXML `xml:"pagination"`
}

func (s *Server) listTrainees(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req listTraineesRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	page, pageSize := req.Page, req.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	trainees, total, err := s.svc.ListTrainees(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	out := make([]traineeXML, len(trainees))
	for i := range trainees {
		out[i] = toTraineeXML(&trainees[i])
	}
	return listTraineesResponse{
		Trainees:   out,
		Pagination: paginationXML{Page: page, PageSize: pageSize, Total: total},
	}, nil
}

type createTraineeRequest struct {
	Trainee struct {
		Name     string `xml:"name"`
		Email    string `xml:"email"`
		Password string `xml:"password"`
		Timezone string `xml:"timezone"`
	} `xml:"trainee"`
}

type traineeResponse struct {
	XMLName xml.Name   `xml:"tns:CreateTraineeResponse"`
	Trainee traineeXML `xml:"trainee"`
}

func (s *Server) createTrainee(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req createTraineeRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	t, err := s.svc.CreateTrainee(ctx, service.CreateTraineeInput{
		Name:     req.Trainee.Name,
		Email:    req.Trainee.Email,
		Password: req.Trainee.Password,
		Timezone: req.Trainee.Timezone,
	})
	if err != nil {
		return nil, err
	}
	return traineeResponse{Trainee: toTraineeXML(t)}, nil
}

type getTraineeRequest struct {
	Token string `xml:"token"`
	ID    string `xml:"id"`
}

type getTraineeResponse struct {
	XMLName xml.Name   `xml:"tns:GetTraineeResponse"`
	Trainee traineeXML `xml:"trainee"`
}

func (s *Server) getTrainee(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req getTraineeRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	t, err := s.svc.GetTrainee(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return getTraineeResponse{Trainee: toTraineeXML(t)}, nil
}

type updateTraineeRequest struct {
	Token   string `xml:"token"`
	ID      string `xml:"id"`
	Trainee struct {
		Name     *string `xml:"name"`
		Email    *string `xml:"email"`
		Password *string `xml:"password"`
		Timezone *string `xml:"timezone"`
	} `xml:"trainee"`
}

type updateTraineeResponse struct {
	XMLName xml.Name   `xml:"tns:UpdateTraineeResponse"`
	Trainee traineeXML `xml:"trainee"`
}

func (s *Server) updateTrainee(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req updateTraineeRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	t, err := s.svc.UpdateTrainee(ctx, req.ID, service.UpdateTraineeInput{
		Name:     req.Trainee.Name,
		Email:    req.Trainee.Email,
		Password: req.Trainee.Password,
		Timezone: req.Trainee.Timezone,
	})
	if err != nil {
		return nil, err
	}
	return updateTraineeResponse{Trainee: toTraineeXML(t)}, nil
}

type deleteTraineeRequest struct {
	Token string `xml:"token"`
	ID    string `xml:"id"`
}

type deleteTraineeResponse struct {
	XMLName xml.Name `xml:"tns:DeleteTraineeResponse"`
	Message string   `xml:"message"`
}

func (s *Server) deleteTrainee(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req deleteTraineeRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	if err := s.svc.DeleteTrainee(ctx, req.ID); err != nil {
		return nil, err
	}
	return deleteTraineeResponse{Message: "Trainee deleted"}, nil
}
