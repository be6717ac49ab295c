package api

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmarques/hiredash/internal/types"
)

var testBase = mustParse("https://api.hiredash.test")

func mustParse(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}

func TestTransformJobs_MissingFieldFallbacks(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	raw := []RawJob{
		{},
		{ID: "j-2", JobTitle: "Go Engineer", CompanyName: "Acme", DateAdded: "2026-01-05"},
	}

	records := TransformJobs(raw, testBase, now)
	require.Len(t, records, 2)

	assert.Equal(t, "job-0", records[0].ID)
	assert.Equal(t, UnknownPosition, records[0].JobTitle)
	assert.Equal(t, UnknownCompany, records[0].Company)
	assert.Equal(t, "2026-03-14", records[0].DateAdded)
	assert.Empty(t, records[0].Link)

	assert.Equal(t, "j-2", records[1].ID)
	assert.Equal(t, "Go Engineer", records[1].JobTitle)
	assert.Equal(t, "Acme", records[1].Company)
	assert.Equal(t, "2026-01-05", records[1].DateAdded)
}

func TestTransformJobs_LinkResolutionOrder(t *testing.T) {
	now := time.Now()

	explicit := TransformJobs([]RawJob{{
		Link:              "https://jobs.example.com/1",
		MatchedCandidates: []RawCandidate{{Link: "https://other.example.com/2"}},
	}}, testBase, now)
	assert.Equal(t, "https://jobs.example.com/1", explicit[0].Link)

	fromMatch := TransformJobs([]RawJob{{
		MatchedCandidates: []RawCandidate{{Link: "https://other.example.com/2"}},
	}}, testBase, now)
	assert.Equal(t, "https://other.example.com/2", fromMatch[0].Link)

	none := TransformJobs([]RawJob{{}}, testBase, now)
	assert.Empty(t, none[0].Link)
}

func TestTransformJobs_CandidateFallbacks(t *testing.T) {
	raw := []RawJob{{
		MatchedCandidates: []RawCandidate{
			{MMR: true, CVLink: "/cv/42.pdf", MatchID: "m-1"},
			{Name: "Dana", Score: 0.91, MMR: false, CVLink: "https://cdn.example.com/cv/7.pdf", Status: "sent"},
		},
	}}

	records := TransformJobs(raw, testBase, time.Now())
	require.Len(t, records[0].MatchedCandidates, 2)

	first := records[0].MatchedCandidates[0]
	assert.Equal(t, "Candidate 1", first.Name)
	assert.Zero(t, first.Score)
	assert.Equal(t, "YES", first.MMR)
	assert.Equal(t, types.StatusPending, first.Status)
	assert.Equal(t, "https://api.hiredash.test/cv/42.pdf", first.CVLink)

	second := records[0].MatchedCandidates[1]
	assert.Equal(t, "Dana", second.Name)
	assert.Equal(t, 0.91, second.Score)
	assert.Equal(t, "NO", second.MMR)
	assert.Equal(t, types.StatusSent, second.Status)
	assert.Equal(t, "https://cdn.example.com/cv/7.pdf", second.CVLink, "absolute links pass through unchanged")
}

func TestTransformJobs_StripsDescriptionMarkup(t *testing.T) {
	raw := []RawJob{{
		JobTitle:       "Platform Engineer",
		JobDescription: `<p>Run the fleet.</p><script>alert(1)</script>`,
	}}

	records := TransformJobs(raw, testBase, time.Now())
	assert.Equal(t, "Run the fleet.", records[0].JobDescription)
}

func TestTransformJobs_Idempotent(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	raw := []RawJob{
		{JobTitle: "Backend Engineer", MatchedCandidates: []RawCandidate{{Name: "Lee", MMR: true}}},
		{},
	}

	first := TransformJobs(raw, testBase, now)
	second := TransformJobs(raw, testBase, now)
	assert.Equal(t, first, second)
}

func TestTransformJobListings_AgeCategories(t *testing.T) {
	raw := []RawListing{
		{ID: "a", DaysOld: 1},
		{ID: "b", DaysOld: 5},
		{ID: "c", DaysOld: 14},
		{ID: "d", DaysOld: 15},
	}

	records := TransformJobListings(raw)
	require.Len(t, records, 4)
	assert.Equal(t, types.AgeNew, records[0].AgeCategory)
	assert.Equal(t, types.AgeFresh, records[1].AgeCategory)
	assert.Equal(t, types.AgeStale, records[2].AgeCategory)
	assert.Equal(t, types.AgeOld, records[3].AgeCategory)
}

func TestTransformCompanies_PreservesOrderAndAssignsIDs(t *testing.T) {
	raw := json.RawMessage(`{"Acme":3,"Globex":0}`)

	records, err := TransformCompanies(raw)
	require.NoError(t, err)
	assert.Equal(t, []types.CompanyRecord{
		{ID: 1, Name: "Acme", JobsCount: 3},
		{ID: 2, Name: "Globex", JobsCount: 0},
	}, records)
}

func TestTransformCompanies_Idempotent(t *testing.T) {
	raw := json.RawMessage(`{"Initech":2,"Hooli":5,"Acme":1}`)

	first, err := TransformCompanies(raw)
	require.NoError(t, err)
	second, err := TransformCompanies(raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTransformCompanies_RejectsNonObject(t *testing.T) {
	_, err := TransformCompanies(json.RawMessage(`[1,2,3]`))
	assert.Error(t, err)
}

func TestTransformStats_MissingCountersDefaultToZero(t *testing.T) {
	stats := TransformStats(RawStats{TotalJobs: 12})
	assert.Equal(t, types.Stats{TotalJobs: 12}, stats)
}

func TestStripDescriptionHTML(t *testing.T) {
	html := `<div><h1>Senior Go Engineer</h1><script>alert(1)</script><p>Build  things.</p></div>`
	text := StripDescriptionHTML(html)
	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "Build  things.")
	assert.NotContains(t, text, "alert")

	plain := "No markup here"
	assert.Equal(t, plain, StripDescriptionHTML(plain))
}
