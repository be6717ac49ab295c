// Package types provides the view-model records shared across the hiredash client.
package types

// Role values carried by an authenticated identity.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity represents the authenticated user as held by the session store.
// Role is omitted from the persisted form for non-admin users so a stale
// cache can never escalate privileges.
type Identity struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	HasCV bool   `json:"has_cv"`
	Token string `json:"token,omitempty"`
}

// EffectiveRole returns the identity's role, defaulting to "user" when the
// backend payload carried none.
func (id *Identity) EffectiveRole() string {
	if id == nil || id.Role == "" {
		return RoleUser
	}
	return id.Role
}

// IsAdmin reports whether the identity carries the admin role.
func (id *Identity) IsAdmin() bool {
	return id != nil && id.Role == RoleAdmin
}

// AgeCategory is the bucketed freshness label derived from a job listing's
// days-since-posted value.
type AgeCategory string

// Age categories, from freshest to stalest.
const (
	AgeNew   AgeCategory = "New"
	AgeFresh AgeCategory = "Fresh"
	AgeStale AgeCategory = "Stale"
	AgeOld   AgeCategory = "Old"
)

// AgeCategoryFor buckets a days-old value into its category. The function is
// pure and total: every non-negative input maps to exactly one category, and
// the boundary values 1, 5 and 14 map to the lower category. Negative inputs
// are treated as zero.
func AgeCategoryFor(daysOld int) AgeCategory {
	switch {
	case daysOld <= 1:
		return AgeNew
	case daysOld <= 5:
		return AgeFresh
	case daysOld <= 14:
		return AgeStale
	default:
		return AgeOld
	}
}

// MatchStatus is the review state of a candidate-to-job match.
type MatchStatus string

// Match statuses.
const (
	StatusPending MatchStatus = "pending"
	StatusSent    MatchStatus = "sent"
)

// Toggled returns the opposite status.
func (s MatchStatus) Toggled() MatchStatus {
	if s == StatusSent {
		return StatusPending
	}
	return StatusSent
}

// CandidateMeta carries the secondary fields of a candidate match. MatchID is
// the external identity used for status-mutation calls and is unique within a
// job's candidate list.
type CandidateMeta struct {
	MatchID     string   `json:"match_id"`
	CandidateID string   `json:"candidate_id"`
	CoverLetter string   `json:"cover_letter"`
	CreatedAt   string   `json:"created_at"`
	Overview    string   `json:"overview"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
}

// CandidateMatch is a candidate paired to a job with a relevance score.
// MMR holds "YES" or "NO"; CVLink is empty when the candidate has no CV on
// file, and is always an absolute URL otherwise.
type CandidateMatch struct {
	Name   string        `json:"name"`
	Score  float64       `json:"score"`
	HasCV  bool          `json:"cv"`
	CVLink string        `json:"cv_link,omitempty"`
	MMR    string        `json:"mmr"`
	Status MatchStatus   `json:"status"`
	Meta   CandidateMeta `json:"metadata"`
}

// JobMatchRecord is a job posting together with its matched candidates, as
// shown on the matches view. Link is empty when neither the job nor any of
// its matches carried one. Records are immutable once constructed and are
// replaced wholesale on re-fetch; only a candidate's Status is ever patched
// in place.
type JobMatchRecord struct {
	ID                string           `json:"id"`
	JobTitle          string           `json:"job_title"`
	Company           string           `json:"company"`
	DateAdded         string           `json:"date_added"`
	JobDescription    string           `json:"job_description"`
	Link              string           `json:"link,omitempty"`
	MatchedCandidates []CandidateMatch `json:"matched_candidates"`
}

// JobListingRecord is a single job posting on the listings view. AgeCategory
// is derived from AgeDays on every transform and is never trusted from the
// server.
type JobListingRecord struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Company     string      `json:"company"`
	Posted      string      `json:"posted"`
	AgeDays     int         `json:"age_days"`
	AgeCategory AgeCategory `json:"age_category"`
}

// CompanyRecord is a company with its open-jobs count. ID is a 1-based
// enumeration index assigned in server map order; it is not stable across
// reloads and must never be persisted as a durable key.
type CompanyRecord struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	JobsCount int    `json:"jobs_count"`
}

// Stats is the fixed-shape aggregate counters record. Counters missing from
// the raw payload default to zero.
type Stats struct {
	TotalJobs       int `json:"total_jobs"`
	TotalMatches    int `json:"total_matches"`
	TotalCompanies  int `json:"total_companies"`
	TotalCandidates int `json:"total_candidates"`
	CVsUploaded     int `json:"cvs_uploaded"`
}
