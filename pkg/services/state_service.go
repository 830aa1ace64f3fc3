package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/ent/stateentry"
)

// StateService backs the state tools: a per-butler durable KV store.
type StateService struct {
	client *ent.Client
	butler string
}

// NewStateService creates the state service for one butler.
func NewStateService(client *ent.Client, butler string) *StateService {
	return &StateService{client: client, butler: butler}
}

// Get returns the value for a key, or ErrNotFound.
func (s *StateService) Get(ctx context.Context, key string) (map[string]any, error) {
	if key == "" {
		return nil, NewValidationError("key", "required")
	}
	entry, err := s.client.StateEntry.Query().
		Where(
			stateentry.ButlerNameEQ(s.butler),
			stateentry.KeyEQ(key),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("state key %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

// Set upserts a key.
func (s *StateService) Set(ctx context.Context, key string, value map[string]any) error {
	if key == "" {
		return NewValidationError("key", "required")
	}
	n, err := s.client.StateEntry.Update().
		Where(
			stateentry.ButlerNameEQ(s.butler),
			stateentry.KeyEQ(key),
		).
		SetValue(value).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update state key %q: %w", key, err)
	}
	if n > 0 {
		return nil
	}
	return s.client.StateEntry.Create().
		SetID(uuid.NewString()).
		SetButlerName(s.butler).
		SetKey(key).
		SetValue(value).
		Exec(ctx)
}

// Delete removes a key. Deleting an absent key is a no-op.
func (s *StateService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return NewValidationError("key", "required")
	}
	_, err := s.client.StateEntry.Delete().
		Where(
			stateentry.ButlerNameEQ(s.butler),
			stateentry.KeyEQ(key),
		).
		Exec(ctx)
	return err
}

// Keys lists the butler's state keys.
func (s *StateService) Keys(ctx context.Context) ([]string, error) {
	entries, err := s.client.StateEntry.Query().
		Where(stateentry.ButlerNameEQ(s.butler)).
		Order(ent.Asc(stateentry.FieldKey)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys, nil
}
