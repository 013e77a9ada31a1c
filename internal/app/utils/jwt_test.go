package utils

import (
	"testing"
	"time"

	"Backend-Charging/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	user := ds.Users{User_ID: 7, Login: "driver", IsModerator: true}

	token, err := GenerateAccessToken(user, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "driver", claims.Login)
	assert.True(t, claims.IsModerator)
	assert.Equal(t, "charging-service", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(ds.Users{User_ID: 1, Login: "driver"}, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, "another-secret")
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken(ds.Users{User_ID: 1, Login: "driver"}, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-jwt", testSecret)
	assert.Error(t, err)
}
