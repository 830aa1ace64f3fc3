// Package credentials resolves named secrets DB-first with environment
// fallback. Butlers never read the host environment directly; the spawner's
// sandbox is built exclusively through this store.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/ent/butlersecret"
)

// ErrNotFound is returned when a secret exists neither in the database nor
// in the environment.
var ErrNotFound = errors.New("secret not found")

// Store resolves secrets for butlers. Lookup order: shared.butler_secrets
// for the named butler, then the "core" pseudo-butler row, then the process
// environment under the secret key itself.
type Store struct {
	client *ent.Client
}

// CoreButler is the pseudo-butler owning process-wide secrets
// (e.g. ANTHROPIC_API_KEY).
const CoreButler = "core"

// NewStore creates a credential store over the shared schema.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Resolve returns the secret value for (butler, key).
func (s *Store) Resolve(ctx context.Context, butler, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("resolve secret: empty key")
	}

	if s.client != nil {
		row, err := s.client.ButlerSecret.Query().
			Where(
				butlersecret.ButlerNameEQ(butler),
				butlersecret.KeyEQ(key),
			).
			Only(ctx)
		if err == nil {
			return row.Value, nil
		}
		if !ent.IsNotFound(err) {
			return "", fmt.Errorf("query butler_secrets: %w", err)
		}

		if butler != CoreButler {
			row, err = s.client.ButlerSecret.Query().
				Where(
					butlersecret.ButlerNameEQ(CoreButler),
					butlersecret.KeyEQ(key),
				).
				Only(ctx)
			if err == nil {
				return row.Value, nil
			}
			if !ent.IsNotFound(err) {
				return "", fmt.Errorf("query butler_secrets: %w", err)
			}
		}
	}

	if v := os.Getenv(key); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s/%s", ErrNotFound, butler, key)
}

// ResolveAll resolves a set of keys for one butler. Missing keys are
// reported together so operators see the full list at once.
func (s *Store) ResolveAll(ctx context.Context, butler string, keys []string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	var missing []string
	for _, key := range keys {
		v, err := s.Resolve(ctx, butler, key)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				missing = append(missing, key)
				continue
			}
			return nil, err
		}
		out[key] = v
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, missing)
	}
	return out, nil
}

// Put upserts a secret. Used by ops tooling and tests.
func (s *Store) Put(ctx context.Context, butler, key, value string) error {
	if s.client == nil {
		return fmt.Errorf("credential store has no database")
	}
	n, err := s.client.ButlerSecret.Update().
		Where(
			butlersecret.ButlerNameEQ(butler),
			butlersecret.KeyEQ(key),
		).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update secret: %w", err)
	}
	if n > 0 {
		return nil
	}
	return s.client.ButlerSecret.Create().
		SetID(butler + "/" + key).
		SetButlerName(butler).
		SetKey(key).
		SetValue(value).
		Exec(ctx)
}
