package navigation

import (
	"testing"

	"Backend-Charging/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routes(items []Item) []string {
	rs := make([]string, 0, len(items))
	for _, item := range items {
		rs = append(rs, item.Route)
	}
	return rs
}

func TestForClaimsGuest(t *testing.T) {
	caps := ForClaims(nil)

	assert.True(t, caps.Has(CapabilityPublic))
	assert.False(t, caps.Has(CapabilityViewOrders))
	assert.False(t, caps.Has(CapabilityManageStations))
}

func TestForClaimsUser(t *testing.T) {
	caps := ForClaims(&ds.JWTClaims{UserID: 1, Login: "driver"})

	assert.True(t, caps.Has(CapabilityPublic))
	assert.True(t, caps.Has(CapabilityViewOrders))
	assert.False(t, caps.Has(CapabilityManageStations))
	assert.False(t, caps.Has(CapabilityModerateOrders))
}

func TestForClaimsModerator(t *testing.T) {
	caps := ForClaims(&ds.JWTClaims{UserID: 2, Login: "admin", IsModerator: true})

	assert.True(t, caps.Has(CapabilityManageStations))
	assert.True(t, caps.Has(CapabilityModerateOrders))
	assert.True(t, caps.Has(CapabilityAdministerUsers))
}

func TestFilterGuestSeesOnlyPublic(t *testing.T) {
	visible := Filter(Items(), ForClaims(nil))

	assert.Equal(t, []string{"/stations"}, routes(visible))
}

func TestFilterUserSeesOwnSections(t *testing.T) {
	visible := Filter(Items(), ForClaims(&ds.JWTClaims{UserID: 1, Login: "driver"}))

	assert.Equal(t,
		[]string{"/stations", "/orders", "/orders/cart", "/profile"},
		routes(visible))
}

func TestFilterModeratorSeesEverything(t *testing.T) {
	visible := Filter(Items(), ForClaims(&ds.JWTClaims{UserID: 2, Login: "admin", IsModerator: true}))

	require.Len(t, visible, len(Items()))
	assert.Contains(t, routes(visible), "/admin/stations")
	assert.Contains(t, routes(visible), "/admin/orders")
	assert.Contains(t, routes(visible), "/admin/users")
}

func TestForClaimsUserHasNoAdministration(t *testing.T) {
	caps := ForClaims(&ds.JWTClaims{UserID: 1, Login: "driver"})

	assert.False(t, caps.Has(CapabilityAdministerUsers))
	assert.NotContains(t, routes(Filter(Items(), caps)), "/admin/users")
}

func TestFilterPreservesOrder(t *testing.T) {
	all := Items()
	visible := Filter(all, ForClaims(&ds.JWTClaims{UserID: 2, IsModerator: true}))
	assert.Equal(t, routes(all), routes(visible))
}

func TestFilterEmptySet(t *testing.T) {
	visible := Filter(Items(), Set{})
	assert.Empty(t, visible)
}
