package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secret123!", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "Secret123!", hash)

	require.NoError(t, CheckPassword(hash, "Secret123!"))
	require.Error(t, CheckPassword(hash, "wrong"))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("Secret123!", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("Secret123!", bcrypt.MinCost)
	require.NoError(t, err)

	require.NotEqual(t, first, second, "bcrypt salts must differ")
}

func TestHashPassword_CostBelowMinFallsBack(t *testing.T) {
	hash, err := HashPassword("Secret123!", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, bcrypt.DefaultCost, cost)
}
