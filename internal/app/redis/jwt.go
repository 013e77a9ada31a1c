package redis

import (
	"context"
	"fmt"
	"time"
)

const (
	// Префиксы для ключей Redis
	blacklistPrefix    = "jwt:blacklist:"
	userSessionPrefix  = "user:session:"
	refreshTokenPrefix = "refresh:token:"
)

// AddToBlacklist добавляет JWT токен в черный список до истечения его срока
func (c *Client) AddToBlacklist(ctx context.Context, token string, expiresIn time.Duration) error {
	return c.Set(ctx, blacklistPrefix+token, "blacklisted", expiresIn)
}

// IsInBlacklist проверяет, находится ли токен в черном списке
func (c *Client) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	exists, err := c.Exists(ctx, blacklistPrefix+token)
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return exists, nil
}

// SaveRefreshToken сохраняет refresh token пользователя
func (c *Client) SaveRefreshToken(ctx context.Context, userID uint, refreshToken string, expiresIn time.Duration) error {
	key := fmt.Sprintf("%s%d", refreshTokenPrefix, userID)
	return c.Set(ctx, key, refreshToken, expiresIn)
}

// GetRefreshToken получает refresh token пользователя
func (c *Client) GetRefreshToken(ctx context.Context, userID uint) (string, error) {
	return c.Get(ctx, fmt.Sprintf("%s%d", refreshTokenPrefix, userID))
}

// DeleteRefreshToken удаляет refresh token пользователя
func (c *Client) DeleteRefreshToken(ctx context.Context, userID uint) error {
	return c.Delete(ctx, fmt.Sprintf("%s%d", refreshTokenPrefix, userID))
}

// SaveUserSession сохраняет информацию о сессии пользователя в хэш-таблице
func (c *Client) SaveUserSession(ctx context.Context, userID uint, sessionData map[string]interface{}, expiresIn time.Duration) error {
	key := fmt.Sprintf("%s%d", userSessionPrefix, userID)

	if err := c.client.HSet(ctx, key, sessionData).Err(); err != nil {
		return err
	}

	// TTL на всю хэш-таблицу
	return c.client.Expire(ctx, key, expiresIn).Err()
}

// GetUserSession получает информацию о сессии пользователя
func (c *Client) GetUserSession(ctx context.Context, userID uint) (map[string]string, error) {
	return c.client.HGetAll(ctx, fmt.Sprintf("%s%d", userSessionPrefix, userID)).Result()
}

// DeleteUserSession удаляет сессию пользователя
func (c *Client) DeleteUserSession(ctx context.Context, userID uint) error {
	return c.Delete(ctx, fmt.Sprintf("%s%d", userSessionPrefix, userID))
}
