package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFirstPage(t *testing.T) {
	s := Calculate(47, 10, 1)

	assert.Equal(t, 5, s.TotalPages)
	assert.Equal(t, 1, s.CurrentPage)
	assert.Equal(t, 1, s.StartIndex)
	assert.Equal(t, 10, s.EndIndex)
	assert.False(t, s.HasPreviousPage)
	assert.True(t, s.HasNextPage)
}

func TestCalculateLastPartialPage(t *testing.T) {
	s := Calculate(47, 10, 5)

	assert.Equal(t, 41, s.StartIndex)
	assert.Equal(t, 47, s.EndIndex)
	assert.True(t, s.HasPreviousPage)
	assert.False(t, s.HasNextPage)
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(0, 10, 1)

	assert.Equal(t, 1, s.TotalPages)
	assert.Equal(t, 0, s.StartIndex)
	assert.Equal(t, 0, s.EndIndex)
	assert.Equal(t, []int{1}, s.PageNumbers)
	assert.False(t, s.HasPreviousPage)
	assert.False(t, s.HasNextPage)
}

func TestCalculateMiddleWindow(t *testing.T) {
	s := CalculateWindow(500, 10, 25, 5)

	assert.Equal(t, 50, s.TotalPages)
	assert.Equal(t, []int{23, 24, 25, 26, 27}, s.PageNumbers)
	assert.True(t, s.ShowEllipsisStart)
	assert.True(t, s.ShowEllipsisEnd)
}

func TestCalculateClamping(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		wantPage    int
	}{
		{"zero page clamps to first", 0, 1},
		{"negative page clamps to first", -7, 1},
		{"page beyond total clamps to last", 105, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Calculate(47, 10, tt.currentPage)
			assert.Equal(t, tt.wantPage, s.CurrentPage)
		})
	}
}

func TestCalculateSanitizesInputs(t *testing.T) {
	s := Calculate(-5, 0, 1)

	assert.Equal(t, 0, s.TotalItems)
	assert.Equal(t, 1, s.ItemsPerPage)
	assert.Equal(t, 1, s.TotalPages)
	assert.Equal(t, 0, s.StartIndex)
	assert.Equal(t, 0, s.EndIndex)
}

func TestWindowShiftsAtBoundaries(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		wantPages   []int
		wantStart   bool
		wantEnd     bool
	}{
		{"first page", 1, []int{1, 2, 3, 4, 5}, false, true},
		{"second page", 2, []int{1, 2, 3, 4, 5}, false, true},
		{"third page keeps window at start", 3, []int{1, 2, 3, 4, 5}, false, true},
		{"fourth page shifts by one", 4, []int{2, 3, 4, 5, 6}, false, true},
		{"middle page centers window", 10, []int{8, 9, 10, 11, 12}, true, true},
		{"near last page shifts window back", 18, []int{16, 17, 18, 19, 20}, true, false},
		{"last page", 20, []int{16, 17, 18, 19, 20}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := CalculateWindow(200, 10, tt.currentPage, 5)
			assert.Equal(t, tt.wantPages, s.PageNumbers)
			assert.Equal(t, tt.wantStart, s.ShowEllipsisStart)
			assert.Equal(t, tt.wantEnd, s.ShowEllipsisEnd)
		})
	}
}

func TestWindowLengthInvariant(t *testing.T) {
	// При totalPages >= windowSize в окне ровно windowSize номеров,
	// при totalPages < windowSize — ровно totalPages
	for totalItems := 0; totalItems <= 200; totalItems += 7 {
		for page := 1; page <= 25; page += 3 {
			s := CalculateWindow(totalItems, 10, page, 5)

			want := 5
			if s.TotalPages < 5 {
				want = s.TotalPages
			}
			require.Len(t, s.PageNumbers, want,
				"totalItems=%d page=%d", totalItems, page)
		}
	}
}

func TestWindowContiguousAndInBounds(t *testing.T) {
	for page := -3; page <= 30; page++ {
		s := CalculateWindow(193, 8, page, 7)

		require.NotEmpty(t, s.PageNumbers)
		require.GreaterOrEqual(t, s.PageNumbers[0], 1)
		require.LessOrEqual(t, s.PageNumbers[len(s.PageNumbers)-1], s.TotalPages)
		for i := 1; i < len(s.PageNumbers); i++ {
			require.Equal(t, s.PageNumbers[i-1]+1, s.PageNumbers[i])
		}
		require.Contains(t, s.PageNumbers, s.CurrentPage)
	}
}

func TestEllipsisMatchesWindowEdges(t *testing.T) {
	for page := 1; page <= 50; page++ {
		s := CalculateWindow(500, 10, page, 5)

		first := s.PageNumbers[0]
		last := s.PageNumbers[len(s.PageNumbers)-1]
		assert.Equal(t, first > 2, s.ShowEllipsisStart, "page=%d", page)
		assert.Equal(t, last < s.TotalPages-1, s.ShowEllipsisEnd, "page=%d", page)
	}
}

func TestItemRangeInvariants(t *testing.T) {
	for totalItems := 1; totalItems <= 100; totalItems += 9 {
		for page := 1; page <= 15; page++ {
			s := Calculate(totalItems, 7, page)

			require.LessOrEqual(t, s.StartIndex, s.EndIndex)
			require.LessOrEqual(t, s.EndIndex, s.TotalItems)
			require.LessOrEqual(t, s.EndIndex-s.StartIndex+1, s.ItemsPerPage)
		}
	}
}

func TestTotalPagesCeiling(t *testing.T) {
	tests := []struct {
		totalItems   int
		itemsPerPage int
		want         int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{47, 10, 5},
		{50, 10, 5},
		{51, 10, 6},
		{100, 1, 100},
	}

	for _, tt := range tests {
		s := Calculate(tt.totalItems, tt.itemsPerPage, 1)
		assert.Equal(t, tt.want, s.TotalPages,
			"totalItems=%d itemsPerPage=%d", tt.totalItems, tt.itemsPerPage)
	}
}

func TestCalculateIsPure(t *testing.T) {
	a := CalculateWindow(321, 12, 9, 5)
	b := CalculateWindow(321, 12, 9, 5)
	assert.Equal(t, a, b)
}

func TestNavigationHelpers(t *testing.T) {
	s := Calculate(100, 10, 5)

	assert.Equal(t, 1, s.GoToFirst())
	assert.Equal(t, 10, s.GoToLast())
	assert.Equal(t, 6, s.GoToNext())
	assert.Equal(t, 4, s.GoToPrevious())
	assert.Equal(t, 7, s.GoToPage(7))
	assert.Equal(t, 1, s.GoToPage(-2))
	assert.Equal(t, 10, s.GoToPage(999))
}

func TestNavigationHelpersAtEdges(t *testing.T) {
	first := Calculate(100, 10, 1)
	assert.Equal(t, 1, first.GoToPrevious())
	assert.Equal(t, 2, first.GoToNext())

	last := Calculate(100, 10, 10)
	assert.Equal(t, 10, last.GoToNext())
	assert.Equal(t, 9, last.GoToPrevious())
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Calculate(100, 10, 1).Offset())
	assert.Equal(t, 40, Calculate(100, 10, 5).Offset())
	// Зажатая страница даёт валидный offset
	assert.Equal(t, 90, Calculate(100, 10, 500).Offset())
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		pageSize string
		window   string
		want     Params
	}{
		{"defaults on empty", "", "", "", Params{1, 10, 5}},
		{"valid values", "3", "20", "7", Params{3, 20, 7}},
		{"garbage falls back", "abc", "-1", "x", Params{1, 10, 5}},
		{"zero page falls back", "0", "10", "5", Params{1, 10, 5}},
		{"page size capped", "1", "1000", "5", Params{1, MaxPageSize, 5}},
		{"window clamped low", "1", "10", "1", Params{1, 10, MinWindowSize}},
		{"window clamped high", "1", "10", "99", Params{1, 10, MaxWindowSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseParams(tt.page, tt.pageSize, tt.window))
		})
	}
}
