package soap

import (
	"context"
	"encoding/xml"
	"time"

	"gym-registration-api/internal/service"
)

func parseTime(field, raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, service.Invalid(field + " must be an RFC 3339 timestamp")
	}
	return t, nil
}

type listRegistrationsRequest struct {
	Token string `xml:"token"`
}

type listRegistrationsResponse struct {
	XMLName       xml.Name          `xml:"tns:ListRegistrationsResponse"`
	Registrations []registrationXML `xml:"registrations>registration"`
}

func (s *Server) listRegistrations(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req listRegistrationsRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	regs, err := s.svc.ListRegistrations(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]registrationXML, len(regs))
	for i := range regs {
		out[i] = toRegistrationXML(&regs[i])
	}
	return listRegistrationsResponse{Registrations: out}, nil
}

type createRegistrationRequest struct {
	Token        string `xml:"token"`
	Registration struct {
		EventID      string `xml:"eventId"`
		UserID       string `xml:"userId"`
		InviteeEmail string `xml:"inviteeEmail"`
		StartTime    string `xml:"startTime"`
		EndTime      string `xml:"endTime"`
		Status       string `xml:"status"`
	} `xml:"registration"`
}

type createRegistrationResponse struct {
	XMLName      xml.Name        `xml:"tns:CreateRegistrationResponse"`
	Registration registrationXML `xml:"registration"`
}

func (s *Server) createRegistration(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req createRegistrationRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}

	in := service.CreateRegistrationInput{
		EventID:      req.Registration.EventID,
		UserID:       req.Registration.UserID,
		InviteeEmail: req.Registration.InviteeEmail,
		Status:       req.Registration.Status,
	}
	if req.Registration.StartTime != "" {
		startTime, err := parseTime("startTime", req.Registration.StartTime)
		if err != nil {
			return nil, err
		}
		in.StartTime = startTime
	}
	if req.Registration.EndTime != "" {
		end, err := parseTime("endTime", req.Registration.EndTime)
		if err != nil {
			return nil, err
		}
		in.EndTime = &end
	}

	g, err := s.svc.CreateRegistration(ctx, in)
	if err != nil {
		return nil, err
	}
	return createRegistrationResponse{Registration: toRegistrationXML(g)}, nil
}

type getRegistrationRequest struct {
	Token string `xml:"token"`
	ID    string `xml:"id"`
}

type getRegistrationResponse struct {
	XMLName      xml.Name        `xml:"tns:GetRegistrationResponse"`
	Registration registrationXML `xml:"registration"`
}

func (s *Server) getRegistration(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req getRegistrationRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	g, err := s.svc.GetRegistration(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return getRegistrationResponse{Registration: toRegistrationXML(g)}, nil
}

type updateRegistrationRequest struct {
	Token        string `xml:"token"`
	ID           string `xml:"id"`
	Registration struct {
		EventID      *string `xml:"eventId"`
		UserID       *string `xml:"userId"`
		InviteeEmail *string `xml:"inviteeEmail"`
		StartTime    *string `xml:"startTime"`
		EndTime      *string `xml:"endTime"`
		Status       *string `xml:"status"`
	} `xml:"registration"`
}

type updateRegistrationResponse struct {
	XMLName      xml.Name        `xml:"tns:UpdateRegistrationResponse"`
	Registration registrationXML `xml:"registration"`
}

func (s *Server) updateRegistration(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req updateRegistrationRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}

	in := service.UpdateRegistrationInput{
		EventID:      req.Registration.EventID,
		UserID:       req.Registration.UserID,
		InviteeEmail: req.Registration.InviteeEmail,
		Status:       req.Registration.Status,
	}
	if req.Registration.StartTime != nil {
		startTime, err := parseTime("startTime", *req.Registration.StartTime)
		if err != nil {
			return nil, err
		}
		in.StartTime = &startTime
	}
	if req.Registration.EndTime != nil {
		// an empty element clears the end time
		var end *time.Time
		if *req.Registration.EndTime != "" {
			parsed, err := parseTime("endTime", *req.Registration.EndTime)
			if err != nil {
				return nil, err
			}
			end = &parsed
		}
		in.EndTime = &end
	}

	g, err := s.svc.UpdateRegistration(ctx, req.ID, in)
	if err != nil {
		return nil, err
	}
	return updateRegistrationResponse{Registration: toRegistrationXML(g)}, nil
}

type deleteRegistrationRequest struct {
	Token string `xml:"token"`
	ID    string `xml:"id"`
}

type deleteRegistrationResponse struct {
	XMLName xml.Name `xml:"tns:DeleteRegistrationResponse"`
	Message string   `xml:"message"`
}

func (s *Server) deleteRegistration(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	var req deleteRegistrationRequest
	if err := decodeRequest(dec, start, &req); err != nil {
		return nil, err
	}
	if _, err := s.verify(ctx, req.Token); err != nil {
		return nil, err
	}
	if err := s.svc.DeleteRegistration(ctx, req.ID); err != nil {
		return nil, err
	}
	return deleteRegistrationResponse{Message: "Registration deleted"}, nil
}
