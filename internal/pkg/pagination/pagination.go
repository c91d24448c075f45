// Package pagination derives HTTP paging headers from a kernel.Page.
// Everything here is a pure function of the page index, the page size and
// the total element count.
package pagination

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"shop/internal/core/domain/model/kernel"
)

const (
	HeaderTotalCount = "X-Total-Count"
	HeaderTotalPages = "X-Total-Pages"
	HeaderPageNumber = "X-Page-Number"
	HeaderPageSize   = "X-Page-Size"
	HeaderLink       = "Link"
)

// Headers returns the count headers and a Link header with next and prev
// (when they exist), last and first relations, each pointing at baseURL.
// Query parameters already present on baseURL are kept.
//
//	Link: </api/customer-orders?page=1&size=20>; rel="next",</api/customer-orders?page=2&size=20>; rel="last",
//	      </api/customer-orders?page=0&size=20>; rel="first"
func Headers[T any](baseURL string, page kernel.Page[T]) http.Header {
	h := http.Header{}
	totalPages := page.TotalPages()

	h.Set(HeaderTotalCount, strconv.FormatInt(page.TotalElements, 10))
	h.Set(HeaderTotalPages, strconv.Itoa(totalPages))
	h.Set(HeaderPageNumber, strconv.Itoa(page.Number))
	h.Set(HeaderPageSize, strconv.Itoa(page.Size))

	links := make([]string, 0, 4)
	if page.HasNext() {
		links = append(links, link(baseURL, page.Number+1, page.Size, "next"))
	}
	if page.HasPrevious() {
		links = append(links, link(baseURL, page.Number-1, page.Size, "prev"))
	}
	lastPage := max(totalPages-1, 0)
	links = append(links,
		link(baseURL, lastPage, page.Size, "last"),
		link(baseURL, 0, page.Size, "first"),
	)
	h.Set(HeaderLink, strings.Join(links, ","))

	return h
}

func link(baseURL string, page, size int, rel string) string {
	return "<" + pageURI(baseURL, page, size) + `>; rel="` + rel + `"`
}

func pageURI(baseURL string, page, size int) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL + "?page=" + strconv.Itoa(page) + "&size=" + strconv.Itoa(size)
	}

	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	u.RawQuery = q.Encode()
	return u.String()
}
