package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmarques/hiredash/internal/types"
)

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStats(types.Stats{TotalJobs: 12, TotalMatches: 34})

	out := buf.String()
	assert.Contains(t, out, "DASHBOARD")
	assert.Contains(t, out, "Jobs:        12")
	assert.Contains(t, out, "Matches:     34")
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	jobs := []types.JobMatchRecord{{
		JobTitle: "Platform Engineer",
		Company:  "Acme",
		MatchedCandidates: []types.CandidateMatch{
			{Name: "Dana", Score: 0.91, MMR: "YES", Status: types.StatusPending, Meta: types.CandidateMeta{MatchID: "42"}},
		},
	}}
	NewPrinter(&buf).PrintMatches(jobs, 2, 7)

	out := buf.String()
	assert.Contains(t, out, "Platform Engineer")
	assert.Contains(t, out, "Dana")
	assert.Contains(t, out, "match:42")
	assert.Contains(t, out, "page 2 of 7")
}

func TestPrintListings_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintListings(nil)
	assert.Contains(t, buf.String(), "no listings")
}

func TestPrintCompanies(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCompanies([]types.CompanyRecord{{ID: 1, Name: "Acme", JobsCount: 3}})
	assert.Contains(t, buf.String(), "Acme")
	assert.Contains(t, buf.String(), "3 jobs")
}
