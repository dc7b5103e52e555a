// Package service implements the resource handlers shared by the REST and
// SOAP front ends. Handlers validate input, talk to the store, and classify
// failures; everything protocol-specific stays in the front ends.
package service

import (
	"gym-registration-api/internal/session"
	"gym-registration-api/internal/store"
)

type Service struct {
	store    *store.Store
	sessions *session.Issuer
}

func New(st *store.Store, sessions *session.Issuer) *Service {
	return &Service{store: st, sessions: sessions}
}
