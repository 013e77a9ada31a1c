package handler

import (
	"net/http"
	"strconv"
	"time"

	"Backend-Charging/internal/app/ds"
	"Backend-Charging/internal/app/middleware"
	"Backend-Charging/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	repo *repository.Repository
}

func NewOrderHandler(repo *repository.Repository) *OrderHandler {
	return &OrderHandler{
		repo: repo,
	}
}

type CartInfoResponse struct {
	OrderID      uint  `json:"order_id"`
	StationCount int64 `json:"station_count"`
}

type UpdateOrderRequest struct {
	VehiclePlate *string    `json:"vehicle_plate"`
	ScheduledAt  *time.Time `json:"scheduled_at"`
}

// GetOrderCart godoc
// @Summary Get order cart
// @Description Get user's draft order with station count
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} CartInfoResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /orders/cart [get]
func (h *OrderHandler) GetOrderCart(ctx *gin.Context) {
	creatorID, exists := middleware.GetUserID(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	orderID, stationCount, err := h.repo.Order.GetOrderCart(creatorID)
	if err != nil {
		logrus.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get order cart"})
		return
	}

	ctx.JSON(http.StatusOK, CartInfoResponse{
		OrderID:      orderID,
		StationCount: stationCount,
	})
}

// GetOrders godoc
// @Summary Get orders list
// @Description Get list of charging orders with filtering (authenticated users only)
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param date_from query string false "Filter by date from (YYYY-MM-DD)"
// @Param date_to query string false "Filter by date to (YYYY-MM-DD)"
// @Success 200 {array} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) GetOrders(ctx *gin.Context) {
	status := ctx.Query("status")

	var dateFrom, dateTo time.Time
	if dateFromStr := ctx.Query("date_from"); dateFromStr != "" {
		if parsed, err := time.Parse("2006-01-02", dateFromStr); err == nil {
			dateFrom = parsed
		}
	}
	if dateToStr := ctx.Query("date_to"); dateToStr != "" {
		if parsed, err := time.Parse("2006-01-02", dateToStr); err == nil {
			dateTo = parsed
		}
	}

	userID, exists := middleware.GetUserID(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	isModerator := middleware.IsModerator(ctx)

	orders, err := h.repo.Order.GetOrders(status, dateFrom, dateTo, userID, isModerator)
	if err != nil {
		logrus.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get orders"})
		return
	}

	response := make([]map[string]interface{}, 0)
	for _, order := range orders {
		item := map[string]interface{}{
			"id":              order.ID,
			"status":          order.Status,
			"creator_id":      order.CreatorID,
			"moderator_id":    order.ModeratorID,
			"date_create":     order.DateCreate.Format("2006-01-02 15:04:05"),
			"date_update":     order.DateUpdate.Format("2006-01-02 15:04:05"),
			"vehicle_plate":   order.VehiclePlate,
			"total_energy_kwh": order.TotalEnergyKWH,
		}

		if order.DateFinish.Valid {
			item["date_finish"] = order.DateFinish.Time.Format("2006-01-02 15:04:05")
		}
		if order.ScheduledAt.Valid {
			item["scheduled_at"] = order.ScheduledAt.Time.Format("2006-01-02 15:04:05")
		}

		response = append(response, item)
	}

	ctx.JSON(http.StatusOK, response)
}

// GetOrder godoc
// @Summary Get order details
// @Description Get charging order details with stations
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(ctx *gin.Context) {
	userID, exists := middleware.GetUserID(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := h.repo.Order.GetOrder(uint(id))
	if err != nil {
		logrus.Error(err)
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	// Не-модератор может смотреть только свои заявки
	isModerator := middleware.IsModerator(ctx)
	if !isModerator && order.CreatorID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	response := map[string]interface{}{
		"id":              order.ID,
		"status":          order.Status,
		"creator_id":      order.CreatorID,
		"moderator_id":    order.ModeratorID,
		"date_create":     order.DateCreate.Format("2006-01-02 15:04:05"),
		"date_update":     order.DateUpdate.Format("2006-01-02 15:04:05"),
		"vehicle_plate":   order.VehiclePlate,
		"total_energy_kwh": order.TotalEnergyKWH,
		"stations":        []map[string]interface{}{},
	}

	if order.DateFinish.Valid {
		response["date_finish"] = order.DateFinish.Time.Format("2006-01-02 15:04:05")
	}
	if order.ScheduledAt.Valid {
		response["scheduled_at"] = order.ScheduledAt.Time.Format("2006-01-02 15:04:05")
	}

	if order.OrderStations != nil {
		stations := make([]map[string]interface{}, 0)
		for _, item := range order.OrderStations {
			stationItem := map[string]interface{}{
				"station_id":     item.StationID,
				"title":          item.Station.Title,
				"address":        item.Station.Address,
				"connector_type": item.Station.ConnectorType,
				"power_kw":       item.Station.PowerKW,
				"energy_kwh":      item.EnergyKWH,
				"photo":          item.Station.Photo,
			}
			stations = append(stations, stationItem)
		}
		response["stations"] = stations
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateOrderFields godoc
// @Summary Update order fields
// @Description Update charging order fields (creator only, draft only)
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body UpdateOrderRequest true "Update data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /orders/{id} [put]
func (h *OrderHandler) UpdateOrderFields(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	userID, exists := middleware.GetUserID(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	order, err := h.repo.Order.GetOrder(uint(id))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	// Разрешаем редактирование только черновика и только создателю
	if order.Status != ds.StatusDraft {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only draft orders can be edited"})
		return
	}
	if order.CreatorID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var req UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if req.VehiclePlate != nil {
		updates["vehicle_plate"] = *req.VehiclePlate
	}
	if req.ScheduledAt != nil {
		updates["scheduled_at"] = *req.ScheduledAt
	}

	if err := h.repo.Order.UpdateOrderFields(uint(id), updates); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}

// FormOrder godoc
// @Summary Form order
// @Description Form charging order from draft status (creator only)
// @Tags Orders
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /orders/{id}/form [put]
func (h *OrderHandler) FormOrder(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	creatorID, exists := middleware.GetUserID(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	err = h.repo.Order.FormOrder(uint(id), creatorID)
	if err != nil {
		logrus.Error(err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order formed successfully"})
}

// CompleteOrder godoc
// @Summary Complete order
// @Description Complete charging order (moderator only)
// @Tags Orders
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /orders/{id}/complete [put]
func (h *OrderHandler) CompleteOrder(ctx *gin.Context) {
	h.moderateOrder(ctx, ds.StatusCompleted)
}

// RejectOrder godoc
// @Summary Reject order
// @Description Reject charging order (moderator only)
// @Tags Orders
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /orders/{id}/reject [put]
func (h *OrderHandler) RejectOrder(ctx *gin.Context) {
	h.moderateOrder(ctx, ds.StatusRejected)
}

func (h *OrderHandler) moderateOrder(ctx *gin.Context, status string) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	moderatorID, exists := middleware.GetUserID(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	err = h.repo.Order.CompleteOrder(uint(id), moderatorID, status)
	if err != nil {
		logrus.Error(err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order moderated successfully"})
}

// DeleteOrder godoc
// @Summary Delete order
// @Description Delete draft charging order (creator only)
// @Tags Orders
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	userID, exists := middleware.GetUserID(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	order, err := h.repo.Order.GetOrder(uint(id))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CreatorID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if err := h.repo.Order.DeleteOrder(uint(id)); err != nil {
		logrus.Error(err)
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
