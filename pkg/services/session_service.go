package services

import (
	"context"
	"fmt"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/ent/session"
)

// SessionService backs the session tools: read access to a butler's
// session history. Session rows are written by the spawner only.
type SessionService struct {
	client *ent.Client
	butler string
}

// NewSessionService creates the session service for one butler.
func NewSessionService(client *ent.Client, butler string) *SessionService {
	return &SessionService{client: client, butler: butler}
}

// Get returns one session by id.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*ent.Session, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	found, err := s.client.Session.Query().
		Where(
			session.IDEQ(sessionID),
			session.ButlerNameEQ(s.butler),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("session %q: %w", sessionID, ErrNotFound)
	}
	return found, err
}

// Recent returns the latest sessions, newest first.
func (s *SessionService) Recent(ctx context.Context, limit int) ([]*ent.Session, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.client.Session.Query().
		Where(session.ButlerNameEQ(s.butler)).
		Order(ent.Desc(session.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// Running returns sessions that have not reached a terminal status.
// Used by shutdown draining and the status tool.
func (s *SessionService) Running(ctx context.Context) ([]*ent.Session, error) {
	return s.client.Session.Query().
		Where(
			session.ButlerNameEQ(s.butler),
			session.StatusEQ(session.StatusRunning),
		).
		All(ctx)
}

// Lineage returns the chain of sessions a trigger cascade produced,
// oldest first, starting from the given root.
func (s *SessionService) Lineage(ctx context.Context, rootID string) ([]*ent.Session, error) {
	root, err := s.Get(ctx, rootID)
	if err != nil {
		return nil, err
	}
	chain := []*ent.Session{root}
	frontier := []string{root.ID}
	for len(frontier) > 0 {
		children, err := s.client.Session.Query().
			Where(
				session.ButlerNameEQ(s.butler),
				session.ParentSessionIDIn(frontier...),
			).
			Order(ent.Asc(session.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, err
		}
		frontier = frontier[:0]
		for _, c := range children {
			chain = append(chain, c)
			frontier = append(frontier, c.ID)
		}
	}
	return chain, nil
}
