package views

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmarques/hiredash/internal/api"
	"github.com/tmarques/hiredash/internal/types"
)

type fakeListingsAPI struct {
	records []types.JobListingRecord
	err     error
	calls   int
}

func (f *fakeListingsAPI) Jobs(context.Context) ([]types.JobListingRecord, error) {
	f.calls++
	return f.records, f.err
}

func listing(id, title, company, posted string, ageDays int) types.JobListingRecord {
	return types.JobListingRecord{
		ID:          id,
		Title:       title,
		Company:     company,
		Posted:      posted,
		AgeDays:     ageDays,
		AgeCategory: types.AgeCategoryFor(ageDays),
	}
}

func loadedListings(t *testing.T, records ...types.JobListingRecord) (*ListingsController, *fakeListingsAPI) {
	t.Helper()
	fake := &fakeListingsAPI{records: records}
	c := NewListingsController(fake, zerolog.Nop())
	require.NoError(t, c.Load(context.Background()))
	return c, fake
}

func TestLoad_FetchesOnce(t *testing.T) {
	c, fake := loadedListings(t, listing("a", "Engineer", "Acme", "01/02/2026", 3))

	require.NoError(t, c.Load(context.Background()))
	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, 1, fake.calls, "the listing set is fetched once")

	require.NoError(t, c.Refetch(context.Background()))
	assert.Equal(t, 2, fake.calls, "explicit refetch hits the backend again")
}

func TestLoad_ErrorSurfaced(t *testing.T) {
	fake := &fakeListingsAPI{err: &api.NetworkError{Endpoint: "/jobs"}}
	c := NewListingsController(fake, zerolog.Nop())

	require.Error(t, c.Load(context.Background()))
	assert.Error(t, c.Err())
}

func TestVisible_FreeTextSearchIsCaseInsensitive(t *testing.T) {
	c, _ := loadedListings(t,
		listing("j-1", "Backend Engineer", "Acme", "01/02/2026", 1),
		listing("j-2", "Designer", "Globex", "02/02/2026", 2),
		listing("j-3", "Frontend Engineer", "Initech", "03/02/2026", 3),
	)

	c.SetFilter(ListingsFilter{Search: "ENGINEER"})
	visible := c.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "j-1", visible[0].ID)
	assert.Equal(t, "j-3", visible[1].ID)

	// Search also matches company and id.
	c.SetFilter(ListingsFilter{Search: "globex"})
	assert.Len(t, c.Visible(), 1)
	c.SetFilter(ListingsFilter{Search: "J-3"})
	assert.Len(t, c.Visible(), 1)
}

func TestVisible_ExactFilters(t *testing.T) {
	c, _ := loadedListings(t,
		listing("j-1", "Engineer", "Acme", "01/02/2026", 1),
		listing("j-2", "Engineer", "Acme Labs", "02/02/2026", 10),
		listing("j-3", "Engineer", "acme", "03/02/2026", 20),
	)

	c.SetFilter(ListingsFilter{Company: "Acme"})
	visible := c.Visible()
	require.Len(t, visible, 2, "company match is exact but case-insensitive")
	assert.Equal(t, "j-1", visible[0].ID)
	assert.Equal(t, "j-3", visible[1].ID)

	c.SetFilter(ListingsFilter{AgeCategory: types.AgeStale})
	visible = c.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "j-2", visible[0].ID)
}

func TestVisible_ClearingFilterRestoresFullSet(t *testing.T) {
	c, _ := loadedListings(t,
		listing("j-1", "Engineer", "Acme", "01/02/2026", 1),
		listing("j-2", "Designer", "Globex", "02/02/2026", 2),
	)

	c.SetFilter(ListingsFilter{Search: "engineer"})
	assert.Len(t, c.Visible(), 1)

	c.SetFilter(ListingsFilter{})
	assert.Len(t, c.Visible(), 2, "filtering recomputes from the full unfiltered set")
}

func TestSortBy_SecondClickExactlyReverses(t *testing.T) {
	c, _ := loadedListings(t,
		listing("j-1", "Engineer", "Globex", "01/02/2026", 1),
		listing("j-2", "Engineer", "Acme", "02/02/2026", 2),
		listing("j-3", "Engineer", "Initech", "03/02/2026", 3),
	)

	c.SortBy(SortByCompany)
	asc := c.Visible()
	require.Equal(t, []string{"j-2", "j-1", "j-3"}, ids(asc))

	c.SortBy(SortByCompany)
	desc := c.Visible()
	require.Equal(t, []string{"j-3", "j-1", "j-2"}, ids(desc))
}

func TestSortBy_NewFieldResetsToAscending(t *testing.T) {
	c, _ := loadedListings(t,
		listing("j-1", "Zookeeper", "Globex", "01/02/2026", 5),
		listing("j-2", "Analyst", "Acme", "02/02/2026", 1),
	)

	c.SortBy(SortByCompany)
	c.SortBy(SortByCompany) // now descending
	c.SortBy(SortByTitle)   // new field resets to ascending
	visible := c.Visible()
	assert.Equal(t, []string{"j-2", "j-1"}, ids(visible))
}

func TestSortBy_StableOnTies(t *testing.T) {
	c, _ := loadedListings(t,
		listing("j-1", "Engineer", "Acme", "01/02/2026", 1),
		listing("j-2", "Engineer", "Acme", "02/02/2026", 2),
		listing("j-3", "Engineer", "Acme", "03/02/2026", 3),
	)

	c.SortBy(SortByCompany)
	assert.Equal(t, []string{"j-1", "j-2", "j-3"}, ids(c.Visible()),
		"tied records keep their relative order")

	c.SortBy(SortByCompany)
	assert.Equal(t, []string{"j-1", "j-2", "j-3"}, ids(c.Visible()),
		"direction flip does not shuffle tied records")
}

func TestSortBy_PostedParsesDisplayDates(t *testing.T) {
	// DD/MM/YYYY: lexical order would put 02/01/2026 before 15/12/2025.
	c, _ := loadedListings(t,
		listing("j-1", "Engineer", "Acme", "02/01/2026", 1),
		listing("j-2", "Engineer", "Acme", "15/12/2025", 2),
		listing("j-3", "Engineer", "Acme", "30/12/2025", 3),
	)

	c.SortBy(SortByPosted)
	assert.Equal(t, []string{"j-2", "j-3", "j-1"}, ids(c.Visible()))
}

func TestSortBy_AgeSortsNumerically(t *testing.T) {
	c, _ := loadedListings(t,
		listing("j-1", "Engineer", "Acme", "01/02/2026", 20),
		listing("j-2", "Engineer", "Acme", "02/02/2026", 3),
		listing("j-3", "Engineer", "Acme", "03/02/2026", 100),
	)

	c.SortBy(SortByAge)
	assert.Equal(t, []string{"j-2", "j-1", "j-3"}, ids(c.Visible()))
}

func ids(records []types.JobListingRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
