package kernel_test

import (
	"math"
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []kernel.SortOrder
	}{
		{
			name:     "property only defaults to ascending",
			raw:      "customerId",
			expected: []kernel.SortOrder{{Property: "customerId", Direction: kernel.Asc}},
		},
		{
			name:     "explicit descending",
			raw:      "createTime,desc",
			expected: []kernel.SortOrder{{Property: "createTime", Direction: kernel.Desc}},
		},
		{
			name: "direction applies to every property",
			raw:  "createTime,id,DESC",
			expected: []kernel.SortOrder{
				{Property: "createTime", Direction: kernel.Desc},
				{Property: "id", Direction: kernel.Desc},
			},
		},
		{
			name: "surrounding spaces are trimmed",
			raw:  " id , asc",
			expected: []kernel.SortOrder{
				{Property: "id", Direction: kernel.Asc},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders, err := kernel.ParseSort(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, orders)
		})
	}
}

func TestParseSort_Invalid(t *testing.T) {
	_, err := kernel.ParseSort("desc")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = kernel.ParseSort("id,,asc")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPageRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req, err := kernel.NewPageRequest(2, 10, kernel.SortOrder{Property: "id", Direction: kernel.Desc})
		require.NoError(t, err)

		assert.Equal(t, 2, req.Page())
		assert.Equal(t, 10, req.Size())
		assert.Equal(t, 20, req.Offset())
		assert.Len(t, req.Sort(), 1)
	})

	t.Run("negative page", func(t *testing.T) {
		_, err := kernel.NewPageRequest(-1, 10)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero size", func(t *testing.T) {
		_, err := kernel.NewPageRequest(0, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestPage_Navigation(t *testing.T) {
	testCases := []struct {
		name        string
		page        int
		size        int
		total       int64
		totalPages  int
		hasNext     bool
		hasPrevious bool
	}{
		{name: "empty collection", page: 0, size: 20, total: 0, totalPages: 0},
		{name: "single partial page", page: 0, size: 20, total: 3, totalPages: 1},
		{name: "exact multiple", page: 0, size: 5, total: 10, totalPages: 2, hasNext: true},
		{name: "middle page", page: 1, size: 5, total: 11, totalPages: 3, hasNext: true, hasPrevious: true},
		{name: "last page", page: 2, size: 5, total: 11, totalPages: 3, hasPrevious: true},
		{name: "beyond last page", page: 7, size: 5, total: 11, totalPages: 3, hasPrevious: true},
		{name: "largest page index", page: math.MaxInt, size: 4, total: 3, totalPages: 1, hasPrevious: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := kernel.NewPageRequest(tc.page, tc.size)
			require.NoError(t, err)

			page := kernel.NewPage[string](nil, req, tc.total)

			assert.NotNil(t, page.Content)
			assert.Equal(t, tc.totalPages, page.TotalPages())
			assert.Equal(t, tc.hasNext, page.HasNext())
			assert.Equal(t, tc.hasPrevious, page.HasPrevious())
		})
	}
}

func TestPageRequest_HugePageIndex(t *testing.T) {
	req, err := kernel.NewPageRequest(1<<62, 4)
	require.NoError(t, err)

	assert.Equal(t, math.MaxInt, req.Offset())
	assert.True(t, req.IsBeyond(3))
	assert.True(t, req.IsBeyond(math.MaxInt64))
}

func TestPageRequest_IsBeyond(t *testing.T) {
	testCases := []struct {
		page   int
		size   int
		total  int64
		beyond bool
	}{
		{page: 0, size: 20, total: 0, beyond: true},
		{page: 0, size: 20, total: 1, beyond: false},
		{page: 1, size: 5, total: 5, beyond: true},
		{page: 1, size: 5, total: 6, beyond: false},
		{page: 2, size: 5, total: 11, beyond: false},
		{page: 3, size: 5, total: 11, beyond: true},
	}

	for _, tc := range testCases {
		req, err := kernel.NewPageRequest(tc.page, tc.size)
		require.NoError(t, err)
		assert.Equal(t, tc.beyond, req.IsBeyond(tc.total), "page=%d size=%d total=%d", tc.page, tc.size, tc.total)
	}
}
