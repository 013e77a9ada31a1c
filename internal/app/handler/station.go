package handler

import (
	"Backend-Charging/internal/app/ds"
	"Backend-Charging/internal/app/middleware"
	"Backend-Charging/internal/app/pagination"
	"Backend-Charging/internal/app/repository"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type StationHandler struct {
	repo *repository.Repository
}

func NewStationHandler(repo *repository.Repository) *StationHandler {
	return &StationHandler{
		repo: repo,
	}
}

type CreateStationRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Address       string  `json:"address" binding:"required"`
	ConnectorType string  `json:"connector_type" binding:"required"`
	PowerKW       float64 `json:"power_kw" binding:"required"`
	TariffRub     float64 `json:"tariff_rub"`
}

type UpdateStationRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Address       *string  `json:"address"`
	ConnectorType *string  `json:"connector_type"`
	PowerKW       *float64 `json:"power_kw"`
	TariffRub     *float64 `json:"tariff_rub"`
}

type AddStationToOrderRequest struct {
	StationID uint    `json:"station_id" binding:"required"`
	EnergyKWH float64 `json:"energy_kwh" binding:"required,gt=0"`
}

// GetStations godoc
// @Summary Get stations list
// @Description Get paginated list of charging stations with filtering. The response carries a precomputed page window (page numbers, ellipsis flags, prev/next availability) ready for rendering
// @Tags Stations
// @Produce json
// @Param title query string false "Filter by title"
// @Param power_min query number false "Filter by minimum power, kW"
// @Param power_max query number false "Filter by maximum power, kW"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Items per page (default 10, max 100)"
// @Param window query int false "Page window size (default 5)"
// @Success 200 {object} ds.PaginatedStationsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stations [get]
func (h *StationHandler) GetStations(ctx *gin.Context) {
	title := ctx.Query("title")
	powerMinStr := ctx.Query("power_min")
	powerMaxStr := ctx.Query("power_max")

	var powerMin, powerMax float64
	var err error

	if powerMinStr != "" {
		powerMin, err = strconv.ParseFloat(powerMinStr, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid power_min parameter"})
			return
		}
	}

	if powerMaxStr != "" {
		powerMax, err = strconv.ParseFloat(powerMaxStr, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid power_max parameter"})
			return
		}
	}

	params := pagination.ParseParams(ctx.Query("page"), ctx.Query("page_size"), ctx.Query("window"))

	stations, state, err := h.repo.Station.GetStations(title, powerMin, powerMax, params)
	if err != nil {
		logrus.Error("Failed to get stations: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get stations"})
		return
	}

	response := ds.PaginatedStationsResponse{
		Data:       stations,
		Pagination: state,
	}

	if title != "" || powerMin > 0 || powerMax > 0 {
		response.Filters = &ds.StationFiltersInfo{
			Title:    title,
			PowerMin: powerMin,
			PowerMax: powerMax,
		}
	}

	ctx.JSON(http.StatusOK, response)
}

// GetStation godoc
// @Summary Get station details
// @Description Get charging station details by ID
// @Tags Stations
// @Produce json
// @Param id path int true "Station ID"
// @Success 200 {object} ds.Station
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stations/{id} [get]
func (h *StationHandler) GetStation(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid station id"})
		return
	}

	station, err := h.repo.Station.GetStation(id)
	if err != nil {
		logrus.Error("Failed to get station: ", err)
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}

	ctx.JSON(http.StatusOK, station)
}

// CreateStation godoc
// @Summary Create station
// @Description Create new charging station (moderator only)
// @Tags Stations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateStationRequest true "Station data"
// @Success 201 {object} ds.Station
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stations [post]
func (h *StationHandler) CreateStation(ctx *gin.Context) {
	var req CreateStationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	station := &ds.Station{
		Title:         req.Title,
		Description:   req.Description,
		Address:       req.Address,
		ConnectorType: req.ConnectorType,
		PowerKW:       req.PowerKW,
		TariffRub:     req.TariffRub,
	}

	err := h.repo.Station.CreateStation(station)
	if err != nil {
		logrus.Error("Failed to create station: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create station"})
		return
	}

	ctx.JSON(http.StatusCreated, station)
}

// UpdateStation godoc
// @Summary Update station
// @Description Update charging station (moderator only)
// @Tags Stations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Station ID"
// @Param request body UpdateStationRequest true "Update data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stations/{id} [put]
func (h *StationHandler) UpdateStation(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid station id"})
		return
	}

	var req UpdateStationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.ConnectorType != nil {
		updates["connector_type"] = *req.ConnectorType
	}
	if req.PowerKW != nil {
		updates["power_kw"] = *req.PowerKW
	}
	if req.TariffRub != nil {
		updates["tariff_rub"] = *req.TariffRub
	}

	err = h.repo.Station.UpdateStation(uint(id), updates)
	if err != nil {
		logrus.Error("Failed to update station: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update station"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Station updated successfully"})
}

// DeleteStation godoc
// @Summary Delete station
// @Description Delete charging station (moderator only)
// @Tags Stations
// @Security BearerAuth
// @Param id path int true "Station ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stations/{id} [delete]
func (h *StationHandler) DeleteStation(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid station id"})
		return
	}

	err = h.repo.Station.DeleteStation(uint(id))
	if err != nil {
		logrus.Error("Failed to delete station: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete station"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Station deleted successfully"})
}

// AddStationToOrder godoc
// @Summary Add station to order
// @Description Add charging station to draft order
// @Tags Stations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AddStationToOrderRequest true "Add station data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stations/add-to-order [post]
func (h *StationHandler) AddStationToOrder(ctx *gin.Context) {
	var req AddStationToOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	creatorID, exists := middleware.GetUserID(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	err := h.repo.Station.AddStationToOrder(req.StationID, creatorID, req.EnergyKWH)
	if err != nil {
		logrus.Error("Failed to add station to order: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add station to order"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Station added to order successfully"})
}

// UpdateStationPhoto godoc
// @Summary Update station photo
// @Description Update charging station photo (moderator only)
// @Tags Stations
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Station ID"
// @Param image formData file true "Station image"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stations/{id}/image [post]
func (h *StationHandler) UpdateStationPhoto(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid station id"})
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	err = h.repo.Station.UpdateStationPhoto(uint(id), file)
	if err != nil {
		logrus.Error("Failed to update station photo: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update station photo"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Station image updated successfully"})
}
