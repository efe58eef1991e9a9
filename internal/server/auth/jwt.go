// Package auth implements access-token issuance and verification plus
// password hashing for the session flow.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/medibook/medibook/internal/common"
	"github.com/medibook/medibook/internal/server/models"
)

// Claims carries the identity embedded in an access token. ID (jti) is unique
// per issued token, so two tokens for the same account never collide.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// TokenIssuer mints HS256-signed access tokens. The signing secret is
// validated at startup (config.Validate); an issuer never sees an empty one.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	validity time.Duration
	now      func() time.Time
}

// NewTokenIssuer constructs a TokenIssuer.
func NewTokenIssuer(secret []byte, issuer, audience string, validity time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		validity: validity,
		now:      time.Now,
	}
}

// Issue returns a signed token string for the account.
func (i *TokenIssuer) Issue(account *models.Account) (string, error) {
	issuedAt := i.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   account.ID,
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.validity)),
		},
		Email: account.Email,
		Name:  account.Name,
		Role:  string(account.Role),
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Parse verifies the signature and expiry of tokenString and returns its
// claims. Any verification failure maps to common.ErrInvalidToken.
func (i *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
