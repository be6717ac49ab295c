package views

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tmarques/hiredash/internal/api"
	"github.com/tmarques/hiredash/internal/types"
)

// ErrDeleteNotConfirmed indicates the destructive company delete was aborted
// at the confirmation step.
var ErrDeleteNotConfirmed = errors.New("company deletion not confirmed")

// CompaniesAPI is the subset of the API client the companies view needs.
type CompaniesAPI interface {
	Companies(ctx context.Context) ([]types.CompanyRecord, error)
	DeleteCompany(ctx context.Context, name string) error
}

// CompaniesController owns the companies view: the company list plus the
// guarded destructive delete.
type CompaniesController struct {
	mu  sync.Mutex
	api CompaniesAPI
	log zerolog.Logger

	records  []types.CompanyRecord
	fetchErr error
}

// NewCompaniesController creates an unloaded controller.
func NewCompaniesController(companiesAPI CompaniesAPI, log zerolog.Logger) *CompaniesController {
	return &CompaniesController{api: companiesAPI, log: log}
}

// Load replaces the company list from the backend.
func (c *CompaniesController) Load(ctx context.Context) error {
	records, err := c.api.Companies(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.fetchErr = err
		c.log.Warn().Err(err).Msg(api.UserMessage(err, "companies"))
		return err
	}
	c.fetchErr = nil
	c.records = records
	return nil
}

// Records returns the current company list.
func (c *CompaniesController) Records() []types.CompanyRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := make([]types.CompanyRecord, len(c.records))
	copy(records, c.records)
	return records
}

// Delete removes a company after the confirm callback approves it. The list
// is reloaded after a successful delete so positional ids stay consistent.
func (c *CompaniesController) Delete(ctx context.Context, name string, confirm func(name string) bool) error {
	if confirm == nil || !confirm(name) {
		return ErrDeleteNotConfirmed
	}
	if err := c.api.DeleteCompany(ctx, name); err != nil {
		return fmt.Errorf("failed to delete company %s: %w", name, err)
	}
	return c.Load(ctx)
}
