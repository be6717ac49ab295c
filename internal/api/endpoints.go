package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tmarques/hiredash/internal/types"
)

// wireDateFormat is the MM-DD-YYYY format the matches endpoint expects for
// the added-since filter.
const wireDateFormat = "01-02-2006"

// MatchQuery is the filter and pagination state sent to the matches
// endpoint. Zero values mean "filter not set"; MinScore is a pointer so a
// zero threshold is distinguishable from no threshold.
type MatchQuery struct {
	Page          int
	PageSize      int
	CompanyName   string
	CandidateName string
	AddedSince    time.Time
	MinScore      *float64
}

// Values encodes the query as URL parameters. The added-since date is
// reformatted to the MM-DD-YYYY wire format.
func (q MatchQuery) Values() url.Values {
	values := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	values.Set("page", strconv.Itoa(page))
	if q.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.CompanyName != "" {
		values.Set("company_name", q.CompanyName)
	}
	if q.CandidateName != "" {
		values.Set("candidate_name", q.CandidateName)
	}
	if !q.AddedSince.IsZero() {
		values.Set("added_since", q.AddedSince.Format(wireDateFormat))
	}
	if q.MinScore != nil {
		values.Set("min_score", strconv.FormatFloat(*q.MinScore, 'f', -1, 64))
	}
	return values
}

// MatchesPage is one page of transformed match results.
type MatchesPage struct {
	Jobs        []types.JobMatchRecord
	CurrentPage int
	TotalPages  int
}

// Matches fetches one page of job/match results with the given filters. The
// returned page is exactly what the server produced for that page/filter
// combination; no client-side re-filtering is applied.
func (c *Client) Matches(ctx context.Context, q MatchQuery) (*MatchesPage, error) {
	var payload struct {
		Jobs       []RawJob `json:"jobs"`
		Pagination struct {
			CurrentPage int `json:"current_page"`
			TotalPages  int `json:"total_pages"`
		} `json:"pagination"`
	}
	if err := c.Get(ctx, "/matches2", q.Values(), &payload); err != nil {
		return nil, err
	}
	return &MatchesPage{
		Jobs:        TransformJobs(payload.Jobs, c.base, time.Now()),
		CurrentPage: payload.Pagination.CurrentPage,
		TotalPages:  payload.Pagination.TotalPages,
	}, nil
}

// Jobs fetches the flat job listings set.
func (c *Client) Jobs(ctx context.Context) ([]types.JobListingRecord, error) {
	var raw []RawListing
	if err := c.Get(ctx, "/jobs", nil, &raw); err != nil {
		return nil, err
	}
	return TransformJobListings(raw), nil
}

// Companies fetches the company-name to job-count mapping as ordered
// records.
func (c *Client) Companies(ctx context.Context) ([]types.CompanyRecord, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, "/companies", nil, &raw); err != nil {
		return nil, err
	}
	records, err := TransformCompanies(raw)
	if err != nil {
		return nil, &ParseError{Endpoint: "/companies", Cause: err}
	}
	return records, nil
}

// Stats fetches the aggregate counters.
func (c *Client) Stats(ctx context.Context) (types.Stats, error) {
	var raw RawStats
	if err := c.Get(ctx, "/stats", nil, &raw); err != nil {
		return types.Stats{}, err
	}
	return TransformStats(raw), nil
}

// loginResponse is the credential-exchange payload. UserAuthenticated is the
// explicit success flag; without it a 200 response is still a failed login.
type loginResponse struct {
	UserAuthenticated bool   `json:"user_authenticated"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	HasCV             bool   `json:"has_cv"`
	Token             string `json:"token"`
}

// Login exchanges credentials for an identity. Success requires HTTP 200 and
// the explicit user_authenticated flag in the payload; a well-formed refusal
// surfaces as *AuthError.
func (c *Client) Login(ctx context.Context, email, password string) (*types.Identity, error) {
	req := types.LoginRequest{Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Field: "credentials", Message: err.Error()}
	}

	var payload loginResponse
	if err := c.Post(ctx, "/login", req, &payload); err != nil {
		return nil, err
	}
	if !payload.UserAuthenticated {
		return nil, &AuthError{Reason: "server did not authenticate the user"}
	}

	return &types.Identity{
		Email: payload.Email,
		Role:  payload.Role,
		HasCV: payload.HasCV,
		Token: payload.Token,
	}, nil
}

// SessionProbe asks the backend whether the held session cookie still
// represents a valid identity. A valid session returns the identity; an
// empty payload returns (nil, nil).
func (c *Client) SessionProbe(ctx context.Context) (*types.Identity, error) {
	var payload struct {
		Email string `json:"email"`
		Role  string `json:"role"`
		HasCV bool   `json:"has_cv"`
	}
	if err := c.Get(ctx, "/session", nil, &payload); err != nil {
		return nil, err
	}
	if payload.Email == "" {
		return nil, nil
	}
	return &types.Identity{Email: payload.Email, Role: payload.Role, HasCV: payload.HasCV}, nil
}

// Logout notifies the backend that the session should end.
func (c *Client) Logout(ctx context.Context) error {
	return c.Post(ctx, "/logout", nil, nil)
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req types.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return &ValidationError{Field: "registration", Message: err.Error()}
	}
	return c.Post(ctx, "/register", req, nil)
}

// ResetPassword starts the password-reset flow for an email address.
func (c *Client) ResetPassword(ctx context.Context, email string) error {
	req := types.ResetPasswordRequest{Email: email}
	if err := req.Validate(); err != nil {
		return &ValidationError{Field: "email", Message: err.Error()}
	}
	return c.Post(ctx, "/reset-password", req, nil)
}

// NewPassword completes the password-reset flow.
func (c *Client) NewPassword(ctx context.Context, email, password string) error {
	req := types.NewPasswordRequest{Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return &ValidationError{Field: "password", Message: err.Error()}
	}
	return c.Post(ctx, "/new-password", req, nil)
}

// ToggleMatchStatus sets the status of a single match, identified by its
// external match id.
func (c *Client) ToggleMatchStatus(ctx context.Context, matchID string, status types.MatchStatus) error {
	if matchID == "" {
		return &ValidationError{Field: "match_id", Message: "must not be empty"}
	}
	body := map[string]string{
		"match_id": matchID,
		"status":   string(status),
	}
	return c.Post(ctx, "/match-status", body, nil)
}

// DeleteCompany removes a company and its listings.
func (c *Client) DeleteCompany(ctx context.Context, name string) error {
	if name == "" {
		return &ValidationError{Field: "company", Message: "must not be empty"}
	}
	return c.Request(ctx, http.MethodDelete, "/companies/"+url.PathEscape(name), nil, nil, nil, nil)
}

// UploadCV uploads a CV file for the current user as multipart form data.
func (c *Client) UploadCV(ctx context.Context, filename string, content []byte) error {
	return c.postMultipart(ctx, "/upload-cv", "cv", filename, content)
}

// UploadJob submits a new job posting payload. Callers are expected to have
// validated the payload against the job-upload schema first.
func (c *Client) UploadJob(ctx context.Context, payload json.RawMessage) error {
	return c.Post(ctx, "/upload-job", payload, nil)
}

// postMultipart issues a multipart file upload, surfacing the same error
// taxonomy as Request.
func (c *Client) postMultipart(ctx context.Context, path, field, filename string, content []byte) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("failed to build upload form for %s: %w", path, err)
	}
	if _, err := part.Write(content); err != nil {
		return fmt.Errorf("failed to write upload content for %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize upload form for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base.JoinPath(path).String(), &buf)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Endpoint: path, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{Status: resp.StatusCode, Endpoint: path}
	}
	return nil
}
