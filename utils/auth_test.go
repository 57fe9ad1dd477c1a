package utils

import (
	"testing"

	"github.com/arvind-0212/ShopSphere/config"
	"github.com/arvind-0212/ShopSphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPassword("s3cret-pass", hash))
	assert.False(t, CheckPassword("wrong-pass", hash))
}

func TestGenerateAndValidateToken(t *testing.T) {
	config.App = &config.Config{JWTSecret: "test-secret"}

	user := models.User{Email: "asha@example.com"}
	user.ID = 42

	token, err := GenerateToken(&user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	config.App = &config.Config{JWTSecret: "test-secret"}

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}
