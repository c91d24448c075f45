package kernel

import (
	"math"
	"strings"

	"shop/internal/pkg/errs"
)

// Direction is the ordering applied to a sort property.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortOrder pairs a property name with its direction.
type SortOrder struct {
	Property  string
	Direction Direction
}

// ParseSort decodes one "sort" value of the form "property[,property...][,asc|desc]".
// The trailing direction, when present, applies to every listed property.
//
//	ParseSort("customerId,desc")   // [{customerId desc}]
//	ParseSort("createTime,id")     // [{createTime asc} {id asc}]
func ParseSort(raw string) ([]SortOrder, error) {
	parts := strings.Split(raw, ",")
	direction := Asc
	if last := strings.ToLower(strings.TrimSpace(parts[len(parts)-1])); last == string(Asc) || last == string(Desc) {
		direction = Direction(last)
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return nil, errs.NewValueIsRequiredError("sort property")
	}

	orders := make([]SortOrder, 0, len(parts))
	for _, p := range parts {
		property := strings.TrimSpace(p)
		if property == "" {
			return nil, errs.NewValueIsInvalidError("sort")
		}
		orders = append(orders, SortOrder{Property: property, Direction: direction})
	}
	return orders, nil
}

// PageRequest selects a zero-based page of the given size.
type PageRequest struct {
	page int
	size int
	sort []SortOrder
}

// NewPageRequest validates page >= 0 and size >= 1.
func NewPageRequest(page, size int, sort ...SortOrder) (PageRequest, error) {
	if page < 0 {
		return PageRequest{}, errs.NewValueIsOutOfRangeError("page", page, 0, "unbounded")
	}
	if size < 1 {
		return PageRequest{}, errs.NewValueIsOutOfRangeError("size", size, 1, "unbounded")
	}
	return PageRequest{page: page, size: size, sort: sort}, nil
}

func (r PageRequest) Page() int {
	return r.page
}

func (r PageRequest) Size() int {
	return r.size
}

// Sort returns a copy of the requested orderings.
func (r PageRequest) Sort() []SortOrder {
	return append([]SortOrder(nil), r.sort...)
}

// Offset is the number of elements preceding the page. It saturates at
// math.MaxInt instead of overflowing for very large page indexes.
func (r PageRequest) Offset() int {
	if r.page > math.MaxInt/r.size {
		return math.MaxInt
	}
	return r.page * r.size
}

// IsBeyond reports whether the page starts past the end of a collection of
// total elements. It divides instead of multiplying so huge pages stay exact.
func (r PageRequest) IsBeyond(total int64) bool {
	if total <= 0 {
		return true
	}
	lastPage := (total - 1) / int64(r.size)
	return int64(r.page) > lastPage
}

// Page is one slice of a larger collection.
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
}

// NewPage builds the page answering req. A nil content slice is normalized to empty.
func NewPage[T any](content []T, req PageRequest, totalElements int64) Page[T] {
	if content == nil {
		content = make([]T, 0)
	}
	return Page[T]{
		Content:       content,
		Number:        req.Page(),
		Size:          req.Size(),
		TotalElements: totalElements,
	}
}

// TotalPages is ceil(TotalElements / Size), 0 for an empty collection.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages()-1
}

func (p Page[T]) HasPrevious() bool {
	return p.Number > 0
}
