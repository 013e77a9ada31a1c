package navigation

import "Backend-Charging/internal/app/ds"

// Capability — право доступа, требуемое пунктом меню
type Capability string

const (
	CapabilityPublic          Capability = "public"
	CapabilityViewOrders      Capability = "orders.view"
	CapabilityManageStations  Capability = "stations.manage"
	CapabilityModerateOrders  Capability = "orders.moderate"
	CapabilityAdministerUsers Capability = "users.administer"
)

// Set — набор прав текущего пользователя
type Set map[Capability]struct{}

// Has проверяет наличие права в наборе
func (s Set) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// Item — пункт бокового меню админки
type Item struct {
	Route      string     `json:"route"`
	Title      string     `json:"title"`
	Icon       string     `json:"icon"`
	Capability Capability `json:"-"`
}

// Items возвращает статический реестр пунктов меню.
// Видимость определяется только полем Capability, без ветвления по ролям
func Items() []Item {
	return []Item{
		{Route: "/stations", Title: "Зарядные станции", Icon: "ev-station", Capability: CapabilityPublic},
		{Route: "/orders", Title: "Заявки на зарядку", Icon: "list", Capability: CapabilityViewOrders},
		{Route: "/orders/cart", Title: "Корзина", Icon: "cart", Capability: CapabilityViewOrders},
		{Route: "/profile", Title: "Профиль", Icon: "user", Capability: CapabilityViewOrders},
		{Route: "/admin/stations", Title: "Управление станциями", Icon: "settings", Capability: CapabilityManageStations},
		{Route: "/admin/orders", Title: "Модерация заявок", Icon: "check-square", Capability: CapabilityModerateOrders},
		{Route: "/admin/users", Title: "Пользователи", Icon: "users", Capability: CapabilityAdministerUsers},
	}
}

// Filter возвращает пункты меню, для которых у пользователя есть права
func Filter(items []Item, caps Set) []Item {
	visible := make([]Item, 0, len(items))
	for _, item := range items {
		if caps.Has(item.Capability) {
			visible = append(visible, item)
		}
	}
	return visible
}

// ForClaims строит набор прав по JWT-контексту запроса.
// Гость (claims == nil) получает только публичные права
func ForClaims(claims *ds.JWTClaims) Set {
	caps := Set{CapabilityPublic: {}}
	if claims == nil {
		return caps
	}

	caps[CapabilityViewOrders] = struct{}{}
	if claims.IsModerator {
		caps[CapabilityManageStations] = struct{}{}
		caps[CapabilityModerateOrders] = struct{}{}
		caps[CapabilityAdministerUsers] = struct{}{}
	}
	return caps
}
