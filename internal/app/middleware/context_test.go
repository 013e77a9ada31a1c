package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedContext() *gin.Context {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Set("user_id", uint(7))
	ctx.Set("login", "driver")
	ctx.Set("is_moderator", true)
	return ctx
}

func emptyContext() *gin.Context {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	return ctx
}

func TestContextAccessors(t *testing.T) {
	ctx := authedContext()

	userID, ok := GetUserID(ctx)
	require.True(t, ok)
	assert.Equal(t, uint(7), userID)

	login, ok := GetLogin(ctx)
	require.True(t, ok)
	assert.Equal(t, "driver", login)

	assert.True(t, IsModerator(ctx))
}

func TestContextAccessorsUnauthenticated(t *testing.T) {
	ctx := emptyContext()

	_, ok := GetUserID(ctx)
	assert.False(t, ok)

	_, ok = GetLogin(ctx)
	assert.False(t, ok)

	assert.False(t, IsModerator(ctx))
}

func TestGetUserFromContext(t *testing.T) {
	claims, ok := GetUserFromContext(authedContext())
	require.True(t, ok)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "driver", claims.Login)
	assert.True(t, claims.IsModerator)

	claims, ok = GetUserFromContext(emptyContext())
	assert.False(t, ok)
	assert.Nil(t, claims)
}
