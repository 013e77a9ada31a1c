package middleware

import (
	"Backend-Charging/internal/app/config"
	"Backend-Charging/internal/app/repository"
	"Backend-Charging/internal/app/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	jwtPrefix = "Bearer "
)

// AuthMiddleware проверяет JWT токен и добавляет пользователя в контекст
func AuthMiddleware(cfg *config.Config, repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, jwtPrefix) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, jwtPrefix)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is empty"})
			c.Abort()
			return
		}

		// Проверяем токен в blacklist (если Redis доступен)
		if repo.GetRedisClient() != nil {
			inBlacklist, err := repo.GetRedisClient().IsInBlacklist(c.Request.Context(), tokenString)
			if err != nil {
				logrus.Error("Failed to check token in blacklist: ", err)
			} else if inBlacklist {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is invalidated"})
				c.Abort()
				return
			}
		}

		claims, err := utils.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		// Добавляем информацию о пользователе в контекст
		c.Set("user_id", claims.UserID)
		c.Set("login", claims.Login)
		c.Set("is_moderator", claims.IsModerator)

		logrus.Debugf("User authenticated: %s (ID: %d, Moderator: %t)",
			claims.Login, claims.UserID, claims.IsModerator)

		c.Next()
	}
}

// ModeratorOnly middleware проверяет, что пользователь является модератором
func ModeratorOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		isModerator, exists := c.Get("is_moderator")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !isModerator.(bool) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Moderator access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth добавляет пользователя в контекст если токен валиден,
// но не требует аутентификации (гости проходят дальше)
func OptionalAuth(cfg *config.Config, repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, jwtPrefix) {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, jwtPrefix)
		if tokenString == "" {
			c.Next()
			return
		}

		// Проверяем blacklist
		if repo.GetRedisClient() != nil {
			inBlacklist, err := repo.GetRedisClient().IsInBlacklist(c.Request.Context(), tokenString)
			if err == nil && inBlacklist {
				c.Next()
				return
			}
		}

		claims, err := utils.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("login", claims.Login)
		c.Set("is_moderator", claims.IsModerator)

		c.Next()
	}
}
