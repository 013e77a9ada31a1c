package ds

import "Backend-Charging/internal/app/pagination"

// StationFiltersInfo представляет примененные фильтры списка станций
type StationFiltersInfo struct {
	Title    string  `json:"title,omitempty"`
	PowerMin float64 `json:"power_min,omitempty"`
	PowerMax float64 `json:"power_max,omitempty"`
}

// PaginatedStationsResponse представляет ответ со страницей станций.
// Pagination содержит готовое к отрисовке окно страниц;
// при TotalPages <= 1 фронтенд скрывает блок пагинации
type PaginatedStationsResponse struct {
	Data       []Station           `json:"data"`
	Pagination pagination.State    `json:"pagination"`
	Filters    *StationFiltersInfo `json:"filters,omitempty"`
}
