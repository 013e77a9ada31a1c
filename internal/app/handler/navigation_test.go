package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Backend-Charging/internal/app/navigation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNavigationRouter(authenticated, moderator bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/api/navigation", func(c *gin.Context) {
		if authenticated {
			c.Set("user_id", uint(1))
			c.Set("login", "tester")
			c.Set("is_moderator", moderator)
		}
		c.Next()
	}, NewNavigationHandler().GetNavigation)

	return router
}

func getNavigation(t *testing.T, router *gin.Engine) []navigation.Item {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/navigation", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var items []navigation.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	return items
}

func TestGetNavigationGuest(t *testing.T) {
	items := getNavigation(t, setupNavigationRouter(false, false))

	require.Len(t, items, 1)
	assert.Equal(t, "/stations", items[0].Route)
}

func TestGetNavigationUser(t *testing.T) {
	items := getNavigation(t, setupNavigationRouter(true, false))

	routes := make([]string, 0, len(items))
	for _, item := range items {
		routes = append(routes, item.Route)
	}
	assert.Equal(t, []string{"/stations", "/orders", "/orders/cart", "/profile"}, routes)
}

func TestGetNavigationModerator(t *testing.T) {
	items := getNavigation(t, setupNavigationRouter(true, true))

	assert.Len(t, items, len(navigation.Items()))
}
