// Package sessions persists refresh tokens in an expiring key-value cache.
//
// The key is derived from the account id, so each account holds at most one
// refresh token: a second login overwrites the first session's token
// (single-session model, last write wins).
package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medibook/medibook/internal/common"
	"github.com/medibook/medibook/internal/kvstore"
)

// Store reads and writes refresh tokens. TTL enforcement is delegated to the
// underlying cache; the application never re-checks expiry.
type Store struct {
	kv  kvstore.Store
	ttl time.Duration
}

// NewStore constructs a Store with the configured refresh-token TTL.
func NewStore(kv kvstore.Store, ttl time.Duration) *Store {
	return &Store{kv: kv, ttl: ttl}
}

func key(accountID string) string {
	return common.RefreshTokenKeyPrefix + accountID
}

// Save writes the refresh token for accountID, replacing any previous one.
func (s *Store) Save(ctx context.Context, accountID string, token string) error {
	if err := s.kv.Set(ctx, key(accountID), token, s.ttl); err != nil {
		return fmt.Errorf("%w: saving refresh token: %v", common.ErrInfrastructure, err)
	}
	return nil
}

// Validate returns the stored refresh token for accountID, or
// common.ErrorNotFound when none exists (revoked or expired).
func (s *Store) Validate(ctx context.Context, accountID string) (string, error) {
	token, err := s.kv.Get(ctx, key(accountID))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("%w: reading refresh token: %v", common.ErrInfrastructure, err)
	}
	return token, nil
}

// Revoke deletes the refresh token for accountID. Revoking a non-existent
// token succeeds, so logout after expiry is a no-op rather than an error.
func (s *Store) Revoke(ctx context.Context, accountID string) error {
	if err := s.kv.Remove(ctx, key(accountID)); err != nil {
		return fmt.Errorf("%w: revoking refresh token: %v", common.ErrInfrastructure, err)
	}
	return nil
}
