package handler

import (
	"Backend-Charging/internal/app/middleware"
	"Backend-Charging/internal/app/navigation"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// GetNavigation godoc
// @Summary Get navigation menu
// @Description Get sidebar menu items visible to the current user. Guests receive the public subset, moderators the full menu
// @Tags Navigation
// @Produce json
// @Success 200 {array} navigation.Item
// @Router /navigation [get]
func (h *NavigationHandler) GetNavigation(ctx *gin.Context) {
	// Для гостя claims == nil, фильтр оставит только публичные пункты
	claims, _ := middleware.GetUserFromContext(ctx)

	caps := navigation.ForClaims(claims)
	items := navigation.Filter(navigation.Items(), caps)

	ctx.JSON(http.StatusOK, items)
}
