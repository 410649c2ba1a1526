package query

import (
	"fmt"

	"github.com/Domenick1991/airfleet/internal/domain"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is a skip/limit window. A zero Limit means unbounded and is only
// produced internally through All.
type Page struct {
	Skip  int64
	Limit int64
}

// All fetches every matching document.
var All = Page{}

// NewPage validates 0 <= skip and 1 <= limit <= MaxLimit.
func NewPage(skip, limit int) (Page, error) {
	if skip < 0 {
		return Page{}, fmt.Errorf("offset %d must not be negative: %w", skip, domain.ErrInvalidPagination)
	}
	if limit < 1 || limit > MaxLimit {
		return Page{}, fmt.Errorf("limit %d must be between 1 and %d: %w", limit, MaxLimit, domain.ErrInvalidPagination)
	}
	return Page{Skip: int64(skip), Limit: int64(limit)}, nil
}

func (p Page) Unbounded() bool {
	return p.Limit == 0
}
