package views

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tmarques/hiredash/internal/api"
	"github.com/tmarques/hiredash/internal/types"
)

// displayDateFormat is the DD/MM/YYYY format listing dates are shown in.
// Sorting parses it back into an orderable value.
const displayDateFormat = "02/01/2006"

// Sortable listing fields.
const (
	SortByID      = "id"
	SortByTitle   = "title"
	SortByCompany = "company"
	SortByPosted  = "posted"
	SortByAge     = "age"
)

// ListingsAPI is the subset of the API client the listings view needs.
type ListingsAPI interface {
	Jobs(ctx context.Context) ([]types.JobListingRecord, error)
}

// ListingsFilter is the client-side filter state of the listings view.
// Search matches title, company or id case-insensitively; Company and
// AgeCategory are exact matches. Empty fields are inactive.
type ListingsFilter struct {
	Search      string
	Company     string
	AgeCategory types.AgeCategory
}

// ListingsController owns the job listings view. The entire listing set is
// fetched once; filtering and sorting are applied in memory, recomputed from
// the full unfiltered set on every call to Visible.
type ListingsController struct {
	mu  sync.Mutex
	api ListingsAPI
	log zerolog.Logger

	all       []types.JobListingRecord
	filter    ListingsFilter
	sortField string
	sortAsc   bool
	loaded    bool
	fetchErr  error
}

// NewListingsController creates an unloaded controller.
func NewListingsController(listingsAPI ListingsAPI, log zerolog.Logger) *ListingsController {
	return &ListingsController{api: listingsAPI, log: log}
}

// Load fetches the listing set if it has not been fetched yet.
func (c *ListingsController) Load(ctx context.Context) error {
	c.mu.Lock()
	loaded := c.loaded
	c.mu.Unlock()
	if loaded {
		return nil
	}
	return c.Refetch(ctx)
}

// Refetch replaces the full listing set from the backend.
func (c *ListingsController) Refetch(ctx context.Context) error {
	records, err := c.api.Jobs(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.fetchErr = err
		c.log.Warn().Err(err).Msg(api.UserMessage(err, "job listings"))
		return err
	}
	c.fetchErr = nil
	c.all = records
	c.loaded = true
	return nil
}

// Err returns the last fetch error, if any.
func (c *ListingsController) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchErr
}

// SetFilter replaces the filter state.
func (c *ListingsController) SetFilter(filter ListingsFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = filter
}

// SortBy sorts by the given field. A repeated sort on the current field
// toggles the direction; a new field resets to ascending.
func (c *ListingsController) SortBy(field string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sortField == field {
		c.sortAsc = !c.sortAsc
		return
	}
	c.sortField = field
	c.sortAsc = true
}

// Visible recomputes the filtered, sorted records from the full set. The
// full set is never mutated, so clearing a filter restores everything.
func (c *ListingsController) Visible() []types.JobListingRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	visible := make([]types.JobListingRecord, 0, len(c.all))
	for _, record := range c.all {
		if c.matchesLocked(record) {
			visible = append(visible, record)
		}
	}

	if c.sortField != "" {
		sortListings(visible, c.sortField, c.sortAsc)
	}
	return visible
}

func (c *ListingsController) matchesLocked(record types.JobListingRecord) bool {
	if c.filter.Search != "" {
		needle := strings.ToLower(c.filter.Search)
		if !strings.Contains(strings.ToLower(record.Title), needle) &&
			!strings.Contains(strings.ToLower(record.Company), needle) &&
			!strings.Contains(strings.ToLower(record.ID), needle) {
			return false
		}
	}
	if c.filter.Company != "" && !strings.EqualFold(c.filter.Company, record.Company) {
		return false
	}
	if c.filter.AgeCategory != "" && c.filter.AgeCategory != record.AgeCategory {
		return false
	}
	return true
}

// sortListings sorts records by field. The sort is stable so repeated sorts
// on a tied field exactly reverse each other.
func sortListings(records []types.JobListingRecord, field string, asc bool) {
	less := func(a, b types.JobListingRecord) bool {
		switch field {
		case SortByTitle:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case SortByCompany:
			return strings.ToLower(a.Company) < strings.ToLower(b.Company)
		case SortByPosted:
			return parseDisplayDate(a.Posted).Before(parseDisplayDate(b.Posted))
		case SortByAge:
			return a.AgeDays < b.AgeDays
		default:
			return strings.ToLower(a.ID) < strings.ToLower(b.ID)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		if asc {
			return less(records[i], records[j])
		}
		return less(records[j], records[i])
	})
}

// parseDisplayDate parses a DD/MM/YYYY display date; unparsable dates order
// first.
func parseDisplayDate(display string) time.Time {
	parsed, err := time.Parse(displayDateFormat, display)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
