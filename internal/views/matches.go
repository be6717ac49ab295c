package views

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tmarques/hiredash/internal/api"
	"github.com/tmarques/hiredash/internal/types"
)

// Sentinel errors surfaced by the matches controller.
var (
	// ErrToggleInFlight rejects a status toggle for a match whose previous
	// toggle has not resolved yet. The duplicate is rejected, never queued.
	ErrToggleInFlight = errors.New("status toggle already in flight for this match")
	// ErrMatchNotFound indicates no candidate with the given match id exists
	// in the currently held job list.
	ErrMatchNotFound = errors.New("match not found in current results")
	// ErrControllerClosed indicates the controller was torn down.
	ErrControllerClosed = errors.New("controller is closed")
)

// MatchesAPI is the subset of the API client the matches view needs.
type MatchesAPI interface {
	Matches(ctx context.Context, q api.MatchQuery) (*api.MatchesPage, error)
	ToggleMatchStatus(ctx context.Context, matchID string, status types.MatchStatus) error
}

// MatchesFilters is the server-side filter state of the matches view. The
// zero value of each field means the filter is unset; MinScore is a pointer
// so a zero threshold remains expressible.
type MatchesFilters struct {
	CompanyName   string
	CandidateName string
	AddedSince    time.Time
	MinScore      *float64
	PageSize      int
}

// MatchesSnapshot is a point-in-time copy of the view state.
type MatchesSnapshot struct {
	Jobs       []types.JobMatchRecord
	Page       int
	TotalPages int
	Loading    bool
	Err        error
}

// MatchesController owns the matches view: every filter or page change
// issues exactly one new fetch, filtering happens server-side, and the
// displayed set is exactly the page the server returned. Fetches are tagged
// with a monotonically increasing sequence number; a response whose sequence
// is not the latest issued is discarded, so a slow stale response can never
// overwrite newer data.
type MatchesController struct {
	mu  sync.Mutex
	api MatchesAPI
	loc Location
	log zerolog.Logger

	filters    MatchesFilters
	jobs       []types.JobMatchRecord
	totalPages int
	loading    bool
	fetchErr   error
	seq        uint64
	busy       map[string]struct{}
	closed     bool
}

// NewMatchesController creates a controller bound to a location. No fetch is
// issued until the first filter/page change or Refresh.
func NewMatchesController(matchesAPI MatchesAPI, loc Location, log zerolog.Logger) *MatchesController {
	return &MatchesController{
		api:  matchesAPI,
		loc:  loc,
		log:  log,
		busy: make(map[string]struct{}),
	}
}

// Snapshot returns the current view state.
func (c *MatchesController) Snapshot() MatchesSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	jobs := make([]types.JobMatchRecord, len(c.jobs))
	copy(jobs, c.jobs)
	return MatchesSnapshot{
		Jobs:       jobs,
		Page:       c.loc.Page(),
		TotalPages: c.totalPages,
		Loading:    c.loading,
		Err:        c.fetchErr,
	}
}

// SetFilters replaces the filter state and issues exactly one fetch.
func (c *MatchesController) SetFilters(ctx context.Context, filters MatchesFilters) error {
	c.mu.Lock()
	c.filters = filters
	c.mu.Unlock()
	return c.fetch(ctx)
}

// SetPage requests a page change. The page is clamped to the known bounds
// and written back to the location before the fetch is issued.
func (c *MatchesController) SetPage(ctx context.Context, page int) error {
	c.mu.Lock()
	c.loc.SetPage(clampPage(page, c.totalPages))
	c.mu.Unlock()
	return c.fetch(ctx)
}

// SyncFromLocation re-fetches for the page currently held by the location.
// Call after back/forward style navigation changed the location externally.
func (c *MatchesController) SyncFromLocation(ctx context.Context) error {
	return c.fetch(ctx)
}

// Refresh re-fetches the current page with the current filters.
func (c *MatchesController) Refresh(ctx context.Context) error {
	return c.fetch(ctx)
}

// Close tears the controller down. Responses resolving after Close never
// update state.
func (c *MatchesController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// fetch issues one sequence-tagged request for the current filter and page
// state.
func (c *MatchesController) fetch(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrControllerClosed
	}
	c.seq++
	seq := c.seq
	c.loading = true
	query := api.MatchQuery{
		Page:          c.loc.Page(),
		PageSize:      c.filters.PageSize,
		CompanyName:   c.filters.CompanyName,
		CandidateName: c.filters.CandidateName,
		AddedSince:    c.filters.AddedSince,
		MinScore:      c.filters.MinScore,
	}
	c.mu.Unlock()

	page, err := c.api.Matches(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || seq != c.seq {
		c.log.Debug().Uint64("seq", seq).Uint64("latest", c.seq).Msg("discarding stale matches response")
		return nil
	}
	c.loading = false
	if err != nil {
		c.fetchErr = err
		c.log.Warn().Err(err).Msg(api.UserMessage(err, "matches"))
		return err
	}
	c.fetchErr = nil
	c.jobs = page.Jobs
	c.totalPages = page.TotalPages

	if current := c.loc.Page(); current != clampPage(current, c.totalPages) {
		c.loc.SetPage(clampPage(current, c.totalPages))
	}
	return nil
}

// ToggleStatus flips the status of the match with the given id. A toggle for
// a match that is already in flight is rejected; on success exactly the one
// matching candidate is patched in place, and on failure no state changes.
// The in-flight marker is cleared whether or not the call succeeds.
func (c *MatchesController) ToggleStatus(ctx context.Context, matchID string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrControllerClosed
	}
	if _, inFlight := c.busy[matchID]; inFlight {
		c.mu.Unlock()
		return ErrToggleInFlight
	}
	current, found := c.statusLocked(matchID)
	if !found {
		c.mu.Unlock()
		return ErrMatchNotFound
	}
	c.busy[matchID] = struct{}{}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.busy, matchID)
		c.mu.Unlock()
	}()

	next := current.Toggled()
	if err := c.api.ToggleMatchStatus(ctx, matchID, next); err != nil {
		return fmt.Errorf("failed to update match %s: %w", matchID, err)
	}

	// State is updated only after server confirmation.
	c.mu.Lock()
	c.patchStatusLocked(matchID, next)
	c.mu.Unlock()
	return nil
}

// ToggleInFlight reports whether a toggle for the match id is pending.
func (c *MatchesController) ToggleInFlight(matchID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, inFlight := c.busy[matchID]
	return inFlight
}

func (c *MatchesController) statusLocked(matchID string) (types.MatchStatus, bool) {
	for i := range c.jobs {
		for j := range c.jobs[i].MatchedCandidates {
			if c.jobs[i].MatchedCandidates[j].Meta.MatchID == matchID {
				return c.jobs[i].MatchedCandidates[j].Status, true
			}
		}
	}
	return "", false
}

func (c *MatchesController) patchStatusLocked(matchID string, status types.MatchStatus) {
	for i := range c.jobs {
		for j := range c.jobs[i].MatchedCandidates {
			if c.jobs[i].MatchedCandidates[j].Meta.MatchID == matchID {
				c.jobs[i].MatchedCandidates[j].Status = status
				return
			}
		}
	}
}
