package pagination_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
)

const base = "/api/customer-orders"

func pageAt(number, size int, total int64) kernel.Page[string] {
	return kernel.Page[string]{Content: []string{}, Number: number, Size: size, TotalElements: total}
}

func TestHeaders_Links(t *testing.T) {
	testCases := []struct {
		name string
		page kernel.Page[string]
		link string
	}{
		{
			name: "empty collection",
			page: pageAt(0, 20, 0),
			link: `</api/customer-orders?page=0&size=20>; rel="last",` +
				`</api/customer-orders?page=0&size=20>; rel="first"`,
		},
		{
			name: "first of three",
			page: pageAt(0, 2, 5),
			link: `</api/customer-orders?page=1&size=2>; rel="next",` +
				`</api/customer-orders?page=2&size=2>; rel="last",` +
				`</api/customer-orders?page=0&size=2>; rel="first"`,
		},
		{
			name: "middle",
			page: pageAt(1, 2, 5),
			link: `</api/customer-orders?page=2&size=2>; rel="next",` +
				`</api/customer-orders?page=0&size=2>; rel="prev",` +
				`</api/customer-orders?page=2&size=2>; rel="last",` +
				`</api/customer-orders?page=0&size=2>; rel="first"`,
		},
		{
			name: "last",
			page: pageAt(2, 2, 5),
			link: `</api/customer-orders?page=1&size=2>; rel="prev",` +
				`</api/customer-orders?page=2&size=2>; rel="last",` +
				`</api/customer-orders?page=0&size=2>; rel="first"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := pagination.Headers(base, tc.page)
			assert.Equal(t, tc.link, h.Get(pagination.HeaderLink))
		})
	}
}

func TestHeaders_Counts(t *testing.T) {
	h := pagination.Headers(base, pageAt(1, 10, 31))

	assert.Equal(t, "31", h.Get(pagination.HeaderTotalCount))
	assert.Equal(t, "4", h.Get(pagination.HeaderTotalPages))
	assert.Equal(t, "1", h.Get(pagination.HeaderPageNumber))
	assert.Equal(t, "10", h.Get(pagination.HeaderPageSize))
}

func TestHeaders_KeepsExistingQuery(t *testing.T) {
	h := pagination.Headers(base+"?sort=id,desc", pageAt(0, 5, 1))

	assert.Equal(t,
		`</api/customer-orders?page=0&size=5&sort=id%2Cdesc>; rel="last",`+
			`</api/customer-orders?page=0&size=5&sort=id%2Cdesc>; rel="first"`,
		h.Get(pagination.HeaderLink))
}

func TestHeaders_HugePageIndexBeyondEnd(t *testing.T) {
	h := pagination.Headers(base, pageAt(1<<62, 4, 3))

	assert.Equal(t, "4611686018427387904", h.Get(pagination.HeaderPageNumber))
	assert.Equal(t, "1", h.Get(pagination.HeaderTotalPages))
	assert.Equal(t,
		`</api/customer-orders?page=4611686018427387903&size=4>; rel="prev",`+
			`</api/customer-orders?page=0&size=4>; rel="last",`+
			`</api/customer-orders?page=0&size=4>; rel="first"`,
		h.Get(pagination.HeaderLink))
}
