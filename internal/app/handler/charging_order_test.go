package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindUpdateOrderRequest(t *testing.T, body string) UpdateOrderRequest {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPut, "/api/orders/1", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")

	var req UpdateOrderRequest
	require.NoError(t, ctx.ShouldBindJSON(&req))
	return req
}

func TestUpdateOrderRequestBindsAllFields(t *testing.T) {
	req := bindUpdateOrderRequest(t,
		`{"vehicle_plate":"А123ВС77","scheduled_at":"2026-09-01T10:30:00Z"}`)

	require.NotNil(t, req.VehiclePlate)
	assert.Equal(t, "А123ВС77", *req.VehiclePlate)

	require.NotNil(t, req.ScheduledAt)
	want := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	assert.True(t, req.ScheduledAt.Equal(want))
}

func TestUpdateOrderRequestOmittedFieldsStayNil(t *testing.T) {
	req := bindUpdateOrderRequest(t, `{"vehicle_plate":"Е777КХ99"}`)

	require.NotNil(t, req.VehiclePlate)
	assert.Nil(t, req.ScheduledAt)

	req = bindUpdateOrderRequest(t, `{}`)
	assert.Nil(t, req.VehiclePlate)
	assert.Nil(t, req.ScheduledAt)
}
