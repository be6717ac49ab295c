package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/tmarques/hiredash/internal/types"
)

// Placeholder values used when the backend omits a field. These fallbacks
// are part of the documented transform contract, not incidental defaults.
const (
	UnknownPosition = "Unknown Position"
	UnknownCompany  = "Unknown Company"
)

// RawCandidate is a candidate entry as the backend ships it. Every field is
// optional on the wire.
type RawCandidate struct {
	Name        string   `json:"name"`
	Score       float64  `json:"score"`
	CV          bool     `json:"cv"`
	CVLink      string   `json:"cv_link"`
	MMR         bool     `json:"mmr"`
	Status      string   `json:"status"`
	Link        string   `json:"link"`
	MatchID     string   `json:"match_id"`
	CandidateID string   `json:"candidate_id"`
	CoverLetter string   `json:"cover_letter"`
	CreatedAt   string   `json:"created_at"`
	Overview    string   `json:"overview"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
}

// RawJob is a job entry from the matches endpoint.
type RawJob struct {
	ID                string         `json:"id"`
	JobTitle          string         `json:"job_title"`
	CompanyName       string         `json:"company_name"`
	DateAdded         string         `json:"date_added"`
	JobDescription    string         `json:"job_description"`
	Link              string         `json:"link"`
	MatchedCandidates []RawCandidate `json:"matched_candidates"`
}

// RawListing is a job entry from the listings endpoint.
type RawListing struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Posted  string `json:"posted"`
	DaysOld int    `json:"days_old"`
}

// RawStats is the sparse counters payload from the stats endpoint.
type RawStats struct {
	TotalJobs       int `json:"total_jobs"`
	TotalMatches    int `json:"total_matches"`
	TotalCompanies  int `json:"total_companies"`
	TotalCandidates int `json:"total_candidates"`
	CVsUploaded     int `json:"cvs_uploaded"`
}

// TransformJobs maps raw job entries to JobMatchRecords, applying the
// documented fallback contract: missing id becomes job-<index>, missing
// title and company become placeholders, a missing discovery date becomes
// now, and the job link falls back to the first candidate's link. base is
// used to rewrite relative CV links to absolute URLs; absolute links pass
// through unchanged. Descriptions are reduced to plain text. The transform
// is idempotent for a given raw payload and clock.
func TransformJobs(raw []RawJob, base *url.URL, now time.Time) []types.JobMatchRecord {
	records := make([]types.JobMatchRecord, 0, len(raw))
	for i, job := range raw {
		record := types.JobMatchRecord{
			ID:             job.ID,
			JobTitle:       job.JobTitle,
			Company:        job.CompanyName,
			DateAdded:      job.DateAdded,
			JobDescription: job.JobDescription,
			Link:           job.Link,
		}
		if record.ID == "" {
			record.ID = fmt.Sprintf("job-%d", i)
		}
		record.JobDescription = StripDescriptionHTML(record.JobDescription)
		if record.JobTitle == "" {
			record.JobTitle = UnknownPosition
		}
		if record.Company == "" {
			record.Company = UnknownCompany
		}
		if record.DateAdded == "" {
			record.DateAdded = now.Format("2006-01-02")
		}
		if record.Link == "" && len(job.MatchedCandidates) > 0 {
			record.Link = job.MatchedCandidates[0].Link
		}

		record.MatchedCandidates = make([]types.CandidateMatch, 0, len(job.MatchedCandidates))
		for j, cand := range job.MatchedCandidates {
			record.MatchedCandidates = append(record.MatchedCandidates, transformCandidate(cand, j, base))
		}
		records = append(records, record)
	}
	return records
}

// transformCandidate maps one raw candidate entry, applying the candidate
// sub-contract: missing name becomes Candidate N, missing score stays 0, the
// mmr boolean is recast to "YES"/"NO" and relative CV links are made
// absolute.
func transformCandidate(raw RawCandidate, index int, base *url.URL) types.CandidateMatch {
	cand := types.CandidateMatch{
		Name:   raw.Name,
		Score:  raw.Score,
		HasCV:  raw.CV,
		CVLink: resolveLink(raw.CVLink, base),
		MMR:    "NO",
		Status: types.MatchStatus(raw.Status),
		Meta: types.CandidateMeta{
			MatchID:     raw.MatchID,
			CandidateID: raw.CandidateID,
			CoverLetter: raw.CoverLetter,
			CreatedAt:   raw.CreatedAt,
			Overview:    raw.Overview,
			Strengths:   raw.Strengths,
			Weaknesses:  raw.Weaknesses,
		},
	}
	if cand.Name == "" {
		cand.Name = fmt.Sprintf("Candidate %d", index+1)
	}
	if raw.MMR {
		cand.MMR = "YES"
	}
	if cand.Status == "" {
		cand.Status = types.StatusPending
	}
	return cand
}

// resolveLink rewrites a relative link against base; absolute links pass
// through unchanged.
func resolveLink(link string, base *url.URL) string {
	if link == "" || base == nil {
		return link
	}
	ref, err := url.Parse(link)
	if err != nil {
		return link
	}
	if ref.IsAbs() {
		return link
	}
	return base.ResolveReference(ref).String()
}

// TransformJobListings maps raw listing entries to JobListingRecords,
// recomputing the age category from days-old on every call.
func TransformJobListings(raw []RawListing) []types.JobListingRecord {
	records := make([]types.JobListingRecord, 0, len(raw))
	for _, listing := range raw {
		records = append(records, types.JobListingRecord{
			ID:          listing.ID,
			Title:       listing.Title,
			Company:     listing.Company,
			Posted:      listing.Posted,
			AgeDays:     listing.DaysOld,
			AgeCategory: types.AgeCategoryFor(listing.DaysOld),
		})
	}
	return records
}

// TransformCompanies maps a {companyName: jobCount} JSON object to an
// ordered sequence of CompanyRecords, assigning 1-based ids in the object's
// own key order. The decode walks tokens rather than a Go map so the
// server's ordering survives; the resulting ids are positional and not
// stable across reloads.
func TransformCompanies(data json.RawMessage) ([]types.CompanyRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to decode companies payload: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("companies payload is not a JSON object")
	}

	var records []types.CompanyRecord
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to decode company name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("company name is not a string")
		}

		var count int
		if err := dec.Decode(&count); err != nil {
			return nil, fmt.Errorf("failed to decode job count for %q: %w", name, err)
		}

		records = append(records, types.CompanyRecord{
			ID:        len(records) + 1,
			Name:      name,
			JobsCount: count,
		})
	}
	return records, nil
}

// TransformStats maps the sparse raw counters to the fixed-shape stats
// record. Counters absent from the payload are zero.
func TransformStats(raw RawStats) types.Stats {
	return types.Stats{
		TotalJobs:       raw.TotalJobs,
		TotalMatches:    raw.TotalMatches,
		TotalCompanies:  raw.TotalCompanies,
		TotalCandidates: raw.TotalCandidates,
		CVsUploaded:     raw.CVsUploaded,
	}
}
