package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/medibook/medibook/internal/common"
	"github.com/medibook/medibook/internal/server/models"
	"github.com/stretchr/testify/require"
)

func testAccount() *models.Account {
	return &models.Account{
		ID:     "acc-1",
		Email:  "a@x.com",
		Name:   "Alice",
		Role:   models.RolePatient,
		Active: true,
	}
}

func newIssuer(validity time.Duration) *TokenIssuer {
	return NewTokenIssuer([]byte("test-secret"), "medibook", "medibook-api", validity)
}

func TestIssueAndParse(t *testing.T) {
	issuer := newIssuer(time.Hour)
	account := testAccount()

	tokenString, err := issuer.Issue(account)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := issuer.Parse(tokenString)
	require.NoError(t, err)
	require.Equal(t, account.ID, claims.Subject)
	require.Equal(t, account.Email, claims.Email)
	require.Equal(t, account.Name, claims.Name)
	require.Equal(t, string(account.Role), claims.Role)
	require.Equal(t, "medibook", claims.Issuer)
	require.NotEmpty(t, claims.ID)
}

func TestIssue_UniqueTokenID(t *testing.T) {
	issuer := newIssuer(time.Hour)
	account := testAccount()

	first, err := issuer.Issue(account)
	require.NoError(t, err)
	second, err := issuer.Issue(account)
	require.NoError(t, err)

	firstClaims, err := issuer.Parse(first)
	require.NoError(t, err)
	secondClaims, err := issuer.Parse(second)
	require.NoError(t, err)

	require.NotEqual(t, firstClaims.ID, secondClaims.ID, "jti must differ per token")
}

func TestParse_Expired(t *testing.T) {
	issuer := newIssuer(time.Hour)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tokenString, err := issuer.Issue(testAccount())
	require.NoError(t, err)

	_, err = issuer.Parse(tokenString)
	require.True(t, errors.Is(err, common.ErrTokenExpired))
}

func TestParse_WrongSecret(t *testing.T) {
	issuer := newIssuer(time.Hour)

	tokenString, err := issuer.Issue(testAccount())
	require.NoError(t, err)

	other := NewTokenIssuer([]byte("other-secret"), "medibook", "medibook-api", time.Hour)
	_, err = other.Parse(tokenString)
	require.True(t, errors.Is(err, common.ErrInvalidToken))
}

func TestParse_Garbage(t *testing.T) {
	issuer := newIssuer(time.Hour)

	_, err := issuer.Parse("not.a.token")
	require.True(t, errors.Is(err, common.ErrInvalidToken))
}
