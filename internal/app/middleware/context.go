package middleware

import (
	"Backend-Charging/internal/app/ds"

	"github.com/gin-gonic/gin"
)

// GetUserID возвращает ID пользователя из контекста
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// GetLogin возвращает логин пользователя из контекста
func GetLogin(c *gin.Context) (string, bool) {
	login, exists := c.Get("login")
	if !exists {
		return "", false
	}
	return login.(string), true
}

// IsModerator проверяет, является ли пользователь модератором
func IsModerator(c *gin.Context) bool {
	isModerator, exists := c.Get("is_moderator")
	if !exists {
		return false
	}
	return isModerator.(bool)
}

// GetUserFromContext извлекает информацию о пользователе из контекста.
// Возвращает nil и false для неаутентифицированного запроса
func GetUserFromContext(c *gin.Context) (*ds.JWTClaims, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return nil, false
	}

	login, exists := c.Get("login")
	if !exists {
		return nil, false
	}

	isModerator, exists := c.Get("is_moderator")
	if !exists {
		return nil, false
	}

	return &ds.JWTClaims{
		UserID:      userID.(uint),
		Login:       login.(string),
		IsModerator: isModerator.(bool),
	}, true
}
