package soap

import (
	"context"
	"encoding/xml"
)

type createSessionRequest struct {
	Email    string `xml:"email"`
	Password string `xml:"password"`
}

type createSessionResponse struct {
	XMLName xml.Name   `xml:"tns:CreateSessionResponse"`
	Message string     `xml:"message"`
	Token   string     `xml:"token"`
	Trainee traineeXML `xml:"trainee"`
}

func (s *Server) createSession(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req createSessionRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	token, trainee, err := s.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return createSessionResponse{
		Message: "Login successful",
		Token:   token,
		Trainee: toTraineeXML(trainee),
	}, nil
}

type deleteSessionRequest struct {
	Token string `xml:"token"`
}

type deleteSessionResponse struct {
	XMLName xml.Name `xml:"tns:DeleteSessionResponse"`
	Message string   `xml:"message"`
}

func (s *Server) deleteSession(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req deleteSessionRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	if err := s.svc.Logout(ctx, req.Token); err != nil {
		return nil, err
	}
	return deleteSessionResponse{Message: "Logout successful"}, nil
}

type checkSessionRequest struct {
	Token string `xml:"token"`
}

type checkSessionResponse struct {
	XMLName       xml.Name   `xml:"tns:CheckSessionResponse"`
	Authenticated bool       `xml:"authenticated"`
	Trainee       traineeXML `xml:"trainee"`
}

func (s *Server) checkSession(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req checkSessionRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	id, err := s.verify(ctx, req.Token)
	if err != nil {
		return nil, err
	}
	trainee, err := s.svc.GetTrainee(ctx, id.TraineeID)
	if err != nil {
		return nil, err
	}
	return checkSessionResponse{Authenticated: true, Trainee: toTraineeXML(trainee)}, nil
}
