// Package services contains server-side business logic. This file implements
// SessionService: credential verification, registration, token issuance,
// refresh-token rotation, and logout.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/medibook/medibook/internal/common"
	"github.com/medibook/medibook/internal/logging"
	"github.com/medibook/medibook/internal/server/auth"
	"github.com/medibook/medibook/internal/server/config"
	"github.com/medibook/medibook/internal/server/models"
	"github.com/medibook/medibook/internal/server/repositories/repomanager"
	"github.com/medibook/medibook/internal/server/sessions"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterDraft is the caller-supplied part of a new account.
type RegisterDraft struct {
	Email    string
	Name     string
	Password string
	Role     models.Role
}

// SessionService orchestrates the session flow:
//   - Login: verify credentials and mint tokens
//   - Register: create an account and mint tokens
//   - Refresh: rotate the refresh token and mint a new access token
//   - Logout: revoke the refresh token
//
// Credential failures (unknown email, wrong password) both surface as
// common.ErrInvalidCredentials; the distinction is only logged server-side.
type SessionService struct {
	db         *sql.DB
	repos      repomanager.RepositoryManager
	issuer     *auth.TokenIssuer
	store      *sessions.Store
	logger     logging.Logger
	bcryptCost int
}

// NewSessionService constructs a SessionService using repositories, the token
// issuer, the refresh store, and server config.
func NewSessionService(db *sql.DB, repos repomanager.RepositoryManager, issuer *auth.TokenIssuer,
	store *sessions.Store, logger logging.Logger, cfg *config.Config) *SessionService {
	return &SessionService{
		db:         db,
		repos:      repos,
		issuer:     issuer,
		store:      store,
		logger:     logger.With("module", "sessions"),
		bcryptCost: cfg.BcryptCost,
	}
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// All lookups and writes go through this, keeping the uniqueness check
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login verifies email and password and, on success, returns the account with
// a fresh token pair. The refresh token replaces any previous one for the
// account.
func (s *SessionService) Login(ctx context.Context, email, password string) (*models.Account, *TokenPair, error) {
	email = NormalizeEmail(email)

	account, err := s.repos.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Same caller-visible error as a password mismatch.
			s.logger.Info(ctx, "login rejected: unknown email")
			return nil, nil, common.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("%w: account lookup: %v", common.ErrInfrastructure, err)
	}

	if !account.Active {
		// Checked before the password so the outcome does not depend on
		// password correctness.
		return nil, nil, common.ErrAccountDisabled
	}

	if err := auth.CheckPassword(account.PasswordHash, password); err != nil {
		s.logger.Info(ctx, "login rejected: password mismatch", "account_id", account.ID)
		return nil, nil, common.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, nil, err
	}
	return account, pair, nil
}

// Register creates an account from the draft and issues tokens like Login.
// A taken email (case-insensitive) yields common.ErrDuplicateEmail.
func (s *SessionService) Register(ctx context.Context, draft RegisterDraft) (*models.Account, *TokenPair, error) {
	if !draft.Role.Valid() {
		return nil, nil, fmt.Errorf("unknown role %q", draft.Role)
	}

	hash, err := auth.HashPassword(draft.Password, s.bcryptCost)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	account := &models.Account{
		Email:        NormalizeEmail(draft.Email),
		Name:         draft.Name,
		PasswordHash: hash,
		Role:         draft.Role,
		Active:       true,
	}

	// Uniqueness is enforced by the accounts email index; a racing duplicate
	// insert still comes back as ErrDuplicateEmail.
	account, err = s.repos.Accounts(s.db).Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, nil, common.ErrDuplicateEmail
		}
		return nil, nil, fmt.Errorf("%w: account create: %v", common.ErrInfrastructure, err)
	}

	s.logger.Info(ctx, "account registered", "account_id", account.ID, "role", account.Role)

	pair, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, nil, err
	}
	return account, pair, nil
}

// Refresh validates the presented refresh token against the stored one and,
// on success, rotates it and mints a new access token.
func (s *SessionService) Refresh(ctx context.Context, accountID, refreshToken string) (*models.Account, *TokenPair, error) {
	stored, err := s.store.Validate(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrInvalidToken
		}
		return nil, nil, err
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(refreshToken)) != 1 {
		return nil, nil, common.ErrInvalidToken
	}

	account, err := s.repos.Accounts(s.db).GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrInvalidToken
		}
		return nil, nil, fmt.Errorf("%w: account lookup: %v", common.ErrInfrastructure, err)
	}
	if !account.Active {
		return nil, nil, common.ErrAccountDisabled
	}

	pair, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, nil, err
	}
	return account, pair, nil
}

// Logout revokes the account's refresh token. Logging out an already-expired
// session succeeds.
func (s *SessionService) Logout(ctx context.Context, accountID string) error {
	return s.store.Revoke(ctx, accountID)
}

func (s *SessionService) issueTokens(ctx context.Context, account *models.Account) (*TokenPair, error) {
	access, err := s.issuer.Issue(account)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refresh := uuid.NewString()
	if err := s.store.Save(ctx, account.ID, refresh); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
