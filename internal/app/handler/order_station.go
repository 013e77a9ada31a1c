package handler

import (
	"Backend-Charging/internal/app/ds"
	"Backend-Charging/internal/app/middleware"
	"Backend-Charging/internal/app/repository"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OrderStationHandler struct {
	repo *repository.Repository
}

func NewOrderStationHandler(repo *repository.Repository) *OrderStationHandler {
	return &OrderStationHandler{
		repo: repo,
	}
}

type RemoveFromOrderRequest struct {
	OrderID   uint `json:"order_id" binding:"required"`
	StationID uint `json:"station_id" binding:"required"`
}

type UpdateOrderStationRequest struct {
	OrderID   uint    `json:"order_id" binding:"required"`
	StationID uint    `json:"station_id" binding:"required"`
	EnergyKWH float64 `json:"energy_kwh" binding:"required,gt=0"`
}

// checkDraftOwnership загружает заявку и проверяет, что она черновик текущего пользователя
func (h *OrderStationHandler) checkDraftOwnership(ctx *gin.Context, orderID uint, userID uint) bool {
	order, err := h.repo.Order.GetOrder(orderID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return false
	}

	if order.CreatorID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return false
	}

	if order.Status != ds.StatusDraft {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only draft orders can be edited"})
		return false
	}

	return true
}

// RemoveFromOrder godoc
// @Summary Remove station from order
// @Description Remove charging station from draft order (creator only)
// @Tags OrderStations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body RemoveFromOrderRequest true "Order and station IDs"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /order-stations [delete]
func (h *OrderStationHandler) RemoveFromOrder(ctx *gin.Context) {
	userID, exists := middleware.GetUserID(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req RemoveFromOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	if !h.checkDraftOwnership(ctx, req.OrderID, userID) {
		return
	}

	err := h.repo.Order.DeleteOrderStation(req.OrderID, req.StationID)
	if err != nil {
		logrus.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove station from order"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Station removed from order successfully"})
}

// UpdateOrderStation godoc
// @Summary Update station energy in order
// @Description Update planned energy for station in draft order (creator only)
// @Tags OrderStations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdateOrderStationRequest true "Update data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /order-stations [put]
func (h *OrderStationHandler) UpdateOrderStation(ctx *gin.Context) {
	userID, exists := middleware.GetUserID(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req UpdateOrderStationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	if !h.checkDraftOwnership(ctx, req.OrderID, userID) {
		return
	}

	err := h.repo.Order.UpdateOrderStation(req.OrderID, req.StationID, req.EnergyKWH)
	if err != nil {
		logrus.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update station energy"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Station energy updated successfully"})
}
