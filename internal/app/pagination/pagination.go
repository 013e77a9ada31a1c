package pagination

import "strconv"

// Параметры пагинации по умолчанию и их пределы
const (
	DefaultPage       = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
	DefaultWindowSize = 5
	MinWindowSize     = 3
	MaxWindowSize     = 15
)

// State представляет полностью вычисленное состояние пагинации,
// которое фронтенд рендерит без дополнительной арифметики
type State struct {
	TotalItems        int   `json:"total_items"`
	ItemsPerPage      int   `json:"items_per_page"`
	CurrentPage       int   `json:"current_page"`
	TotalPages        int   `json:"total_pages"`
	StartIndex        int   `json:"start_index"`
	EndIndex          int   `json:"end_index"`
	PageNumbers       []int `json:"page_numbers"`
	ShowEllipsisStart bool  `json:"show_ellipsis_start"`
	ShowEllipsisEnd   bool  `json:"show_ellipsis_end"`
	HasPreviousPage   bool  `json:"has_previous_page"`
	HasNextPage       bool  `json:"has_next_page"`
}

// Calculate вычисляет состояние пагинации с окном по умолчанию
func Calculate(totalItems, itemsPerPage, currentPage int) State {
	return CalculateWindow(totalItems, itemsPerPage, currentPage, DefaultWindowSize)
}

// CalculateWindow вычисляет состояние пагинации для заданного размера окна.
// Некорректные входные значения не являются ошибкой: они приводятся
// к допустимым (clamping), функция всегда возвращает согласованный State
func CalculateWindow(totalItems, itemsPerPage, currentPage, windowSize int) State {
	// Санитизация входных значений
	if totalItems < 0 {
		totalItems = 0
	}
	if itemsPerPage < 1 {
		itemsPerPage = 1
	}
	if windowSize < 1 {
		windowSize = DefaultWindowSize
	}

	// Общее количество страниц: ceil(totalItems / itemsPerPage), минимум 1
	totalPages := (totalItems + itemsPerPage - 1) / itemsPerPage
	if totalPages < 1 {
		totalPages = 1
	}

	// Текущая страница зажимается в [1, totalPages]
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	// Границы отображаемых элементов (1-based, включительно)
	startIndex, endIndex := 0, 0
	if totalItems > 0 {
		startIndex = (currentPage-1)*itemsPerPage + 1
		endIndex = currentPage * itemsPerPage
		if endIndex > totalItems {
			endIndex = totalItems
		}
	}

	// Окно номеров страниц вокруг текущей.
	// При выходе за границы окно сдвигается целиком, а не обрезается,
	// поэтому при totalPages >= windowSize в нём всегда windowSize номеров
	first, last := 1, totalPages
	if totalPages > windowSize {
		first = currentPage - windowSize/2
		if first < 1 {
			first = 1
		}
		last = first + windowSize - 1
		if last > totalPages {
			last = totalPages
			first = last - windowSize + 1
		}
	}

	pageNumbers := make([]int, 0, last-first+1)
	for p := first; p <= last; p++ {
		pageNumbers = append(pageNumbers, p)
	}

	return State{
		TotalItems:        totalItems,
		ItemsPerPage:      itemsPerPage,
		CurrentPage:       currentPage,
		TotalPages:        totalPages,
		StartIndex:        startIndex,
		EndIndex:          endIndex,
		PageNumbers:       pageNumbers,
		ShowEllipsisStart: first > 2,
		ShowEllipsisEnd:   last < totalPages-1,
		HasPreviousPage:   currentPage > 1,
		HasNextPage:       currentPage < totalPages,
	}
}

// GoToFirst возвращает номер первой страницы
func (s State) GoToFirst() int {
	return 1
}

// GoToLast возвращает номер последней страницы
func (s State) GoToLast() int {
	return s.TotalPages
}

// GoToNext возвращает номер следующей страницы, не выходя за последнюю
func (s State) GoToNext() int {
	if s.CurrentPage >= s.TotalPages {
		return s.TotalPages
	}
	return s.CurrentPage + 1
}

// GoToPrevious возвращает номер предыдущей страницы, не выходя за первую
func (s State) GoToPrevious() int {
	if s.CurrentPage <= 1 {
		return 1
	}
	return s.CurrentPage - 1
}

// GoToPage зажимает произвольный номер страницы в [1, TotalPages]
func (s State) GoToPage(n int) int {
	if n < 1 {
		return 1
	}
	if n > s.TotalPages {
		return s.TotalPages
	}
	return n
}

// Offset возвращает смещение для SQL запроса текущей страницы
func (s State) Offset() int {
	return (s.CurrentPage - 1) * s.ItemsPerPage
}

// Params представляет разобранные query-параметры пагинации
type Params struct {
	Page     int
	PageSize int
	Window   int
}

// ParseParams разбирает query-параметры пагинации.
// Отсутствующие и некорректные значения заменяются значениями по умолчанию,
// выходящие за пределы — зажимаются
func ParseParams(pageStr, pageSizeStr, windowStr string) Params {
	page := DefaultPage
	if v, err := strconv.Atoi(pageStr); err == nil && v >= 1 {
		page = v
	}

	pageSize := DefaultPageSize
	if v, err := strconv.Atoi(pageSizeStr); err == nil && v >= 1 {
		pageSize = v
		if pageSize > MaxPageSize {
			pageSize = MaxPageSize
		}
	}

	window := DefaultWindowSize
	if v, err := strconv.Atoi(windowStr); err == nil {
		window = v
		if window < MinWindowSize {
			window = MinWindowSize
		}
		if window > MaxWindowSize {
			window = MaxWindowSize
		}
	}

	return Params{Page: page, PageSize: pageSize, Window: window}
}
