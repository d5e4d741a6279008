package contact

import (
	"context"
	"log/slog"

	"github.com/SatyaSire/corporatepm/internal/service/notify"
	"github.com/SatyaSire/corporatepm/pkg/supabase"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// CreateRequest is the raw, unvalidated form payload.
type CreateRequest struct {
	Name        string
	Email       string
	Mobile      string
	Company     string
	Role        string
	Message     string
	ProjectType string
	Timeline    string
	Budget      string
}

// ---------------------------------------------------------------------------
// Interfaces
// ---------------------------------------------------------------------------

// Store is the persistence gateway the service writes through.
// Implemented by *supabase.Client.
type Store interface {
	Insert(ctx context.Context, sub supabase.NewSubmission) (*supabase.Submission, error)
	List(ctx context.Context) ([]supabase.Submission, error)
}

type Service interface {
	// Submit validates, persists, and fans out notifications for one
	// submission. Returns *ValidationError for rejected payloads and
	// ErrStore when persistence failed; notification outcomes never
	// affect the result.
	Submit(ctx context.Context, req CreateRequest) (*supabase.Submission, error)

	// List returns all stored submissions, newest first.
	List(ctx context.Context) ([]supabase.Submission, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contactService struct {
	store    Store
	notifier notify.Service
}

func New(store Store, notifier notify.Service) Service {
	return &contactService{store: store, notifier: notifier}
}

func (s *contactService) Submit(ctx context.Context, req CreateRequest) (*supabase.Submission, error) {
	sub, verr := Validate(req)
	if verr != nil {
		return nil, verr
	}

	stored, err := s.store.Insert(ctx, sub)
	if err != nil {
		slog.ErrorContext(ctx, "contact submission insert failed", "error", err)
		return nil, ErrStore
	}

	// Best effort: the notifier swallows every channel failure, so a
	// persisted submission is never reported as failed from here on.
	s.notifier.Notify(ctx, *stored)

	return stored, nil
}

func (s *contactService) List(ctx context.Context) ([]supabase.Submission, error) {
	subs, err := s.store.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "contact submission list failed", "error", err)
		return nil, ErrStore
	}
	return subs, nil
}
