// Package views owns the fetch lifecycle for the dashboard views: loading
// and error state, translation of filter state into API query parameters,
// pagination, and in-memory filtering and sorting where the view is
// client-filtered.
package views

import (
	"net/url"
	"strconv"
)

// Location is the deep-link state a view's page number is kept in sync
// with. The location, not the controller, is the single source of truth for
// the current page; browser-style back/forward navigation changes the
// location and the controller resynchronizes from it.
type Location interface {
	Page() int
	SetPage(page int)
}

// QueryLocation is a Location backed by URL query values.
type QueryLocation struct {
	values url.Values
}

// NewQueryLocation wraps existing query values; nil starts empty.
func NewQueryLocation(values url.Values) *QueryLocation {
	if values == nil {
		values = url.Values{}
	}
	return &QueryLocation{values: values}
}

// Page returns the page query parameter, defaulting to 1 when absent or
// unparsable.
func (l *QueryLocation) Page() int {
	page, err := strconv.Atoi(l.values.Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// SetPage writes the page back to the query values.
func (l *QueryLocation) SetPage(page int) {
	l.values.Set("page", strconv.Itoa(page))
}

// Values exposes the underlying query values for URL construction.
func (l *QueryLocation) Values() url.Values {
	return l.values
}

// clampPage bounds a requested page to [1, totalPages]. A non-positive
// totalPages leaves only the lower bound in force.
func clampPage(page, totalPages int) int {
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	return page
}
