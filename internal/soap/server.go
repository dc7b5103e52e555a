package soap

import (
	"context"
	_ "embed"
	"encoding/xml"
	"errors"
	"log/slog"
	"net/http"

	"gym-registration-api/internal/service"
	"gym-registration-api/internal/session"
)

//go:embed gym.wsdl
var wsdl []byte

// Server dispatches SOAP operations onto the shared service layer.
type Server struct {
	svc      *service.Service
	sessions *session.Issuer
}

func NewServer(svc *service.Service, sessions *session.Issuer) *Server {
	return &Server{svc: svc, sessions: sessions}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/soap", s.serve)
	return mux
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if !r.URL.Query().Has("wsdl") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		_, _ = w.Write(wsdl)
	case http.MethodPost:
		dec := xml.NewDecoder(r.Body)
		start, err := requestOperation(dec)
		if err != nil {
			s.fault(w, err)
			return
		}
		resp, err := s.dispatch(r.Context(), dec, &start)
		if err != nil {
			s.fault(w, err)
			return
		}
		writeEnvelope(w, http.StatusOK, resp)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) dispatch(ctx context.Context, dec *xml.Decoder, start *xml.StartElement) (any, error) {
	switch start.Name.Local {
	case "CreateSession":
		return s.createSession(ctx, dec, start)
	case "DeleteSession":
		return s.deleteSession(ctx, dec, start)
	case "CheckSession":
		return s.checkSession(ctx, dec, start)

	case "ListTrainees":
		return s.listTrainees(ctx, dec, start)
	case "CreateTrainee":
		return s.createTrainee(ctx, dec, start)
	case "GetTrainee":
		return s.getTrainee(ctx, dec, start)
	case "UpdateTrainee":
		return s.updateTrainee(ctx, dec, start)
	case "DeleteTrainee":
		return s.deleteTrainee(ctx, dec, start)

	case "ListWorkouts":
		return s.listWorkouts(ctx, dec, start)
	case "CreateWorkout":
		return s.createWorkout(ctx, dec, start)
	case "GetWorkout":
		return s.getWorkout(ctx, dec, start)
	case "UpdateWorkout":
		return s.updateWorkout(ctx, dec, start)
	case "DeleteWorkout":
		return s.deleteWorkout(ctx, dec, start)

	case "ListRoutines":
		return s.listRoutines(ctx, dec, start)
	case "CreateRoutine":
		return s.createRoutine(ctx, dec, start)
	case "GetRoutine":
		return s.getRoutine(ctx, dec, start)
	case "GetTraineeRoutine":
		return s.getTraineeRoutine(ctx, dec, start)
	case "UpdateRoutine":
		return s.updateRoutine(ctx, dec, start)
	case "DeleteRoutine":
		return s.deleteRoutine(ctx, dec, start)

	case "ListRegistrations":
		return s.listRegistrations(ctx, dec, start)
	case "CreateRegistration":
		return s.createRegistration(ctx, dec, start)
	case "GetRegistration":
		return s.getRegistration(ctx, dec, start)
	case "UpdateRegistration":
		return s.updateRegistration(ctx, dec, start)
	case "DeleteRegistration":
		return s.deleteRegistration(ctx, dec, start)
	}
	return nil, service.Invalid("unknown operation: " + start.Name.Local)
}

// verify maps token failures onto fault-safe messages, mirroring the REST
// middleware.
func (s *Server) verify(ctx context.Context, token string) (session.Identity, error) {
	if token == "" {
		return session.Identity{}, service.Unauthenticated("Invalid or missing token")
	}
	id, err := s.sessions.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrRevoked) {
			return session.Identity{}, service.Unauthenticated("Token is revoked")
		}
		return session.Identity{}, service.Unauthenticated("Invalid token")
	}
	return id, nil
}

func (s *Server) fault(w http.ResponseWriter, err error) {
	if service.KindOf(err) == service.KindInternal {
		slog.Error("soap request failed", "error", err, "cause", errors.Unwrap(err))
		writeFault(w, "soap:Server", "Internal server error")
		return
	}
	slog.Warn("soap client fault", "error", err)
	writeFault(w, "soap:Client", err.Error())
}

func decodeRequest(dec *xml.Decoder, start *xml.StartElement, req any) error {
	if err := dec.DecodeElement(req, start); err != nil {
		return errMalformed
	}
	return nil
}
