// Package observability provides formatted terminal output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/tmarques/hiredash/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxCandidatesToShow is the number of candidates displayed per job
	maxCandidatesToShow = 5
)

// Printer handles formatted output for the dashboard views.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStats outputs the aggregate dashboard counters.
func (p *Printer) PrintStats(stats types.Stats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs:        %d\n", stats.TotalJobs))
	sb.WriteString(fmt.Sprintf("Matches:     %d\n", stats.TotalMatches))
	sb.WriteString(fmt.Sprintf("Companies:   %d\n", stats.TotalCompanies))
	sb.WriteString(fmt.Sprintf("Candidates:  %d\n", stats.TotalCandidates))
	sb.WriteString(fmt.Sprintf("CVs:         %d", stats.CVsUploaded))

	p.printBox("DASHBOARD", sb.String())
}

// PrintMatches outputs one page of job/match results.
func (p *Printer) PrintMatches(jobs []types.JobMatchRecord, page, totalPages int) {
	for _, job := range jobs {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
		sb.WriteString(fmt.Sprintf("Added:    %s\n", job.DateAdded))
		if job.Link != "" {
			sb.WriteString(fmt.Sprintf("Link:     %s\n", job.Link))
		}
		if desc := firstLine(job.JobDescription); desc != "" {
			sb.WriteString(fmt.Sprintf("About:    %s\n", truncate(desc, boxWidth-16)))
		}
		sb.WriteString("\n")

		count := min(len(job.MatchedCandidates), maxCandidatesToShow)
		for i := 0; i < count; i++ {
			cand := job.MatchedCandidates[i]
			sb.WriteString(fmt.Sprintf("• %s  (%.2f)  mmr:%s  [%s]\n", cand.Name, cand.Score, cand.MMR, cand.Status))
			if cand.Meta.MatchID != "" {
				sb.WriteString(fmt.Sprintf("  match:%s\n", cand.Meta.MatchID))
			}
		}
		if len(job.MatchedCandidates) > maxCandidatesToShow {
			sb.WriteString(fmt.Sprintf("... and %d more candidates\n", len(job.MatchedCandidates)-maxCandidatesToShow))
		}

		p.printBox(job.JobTitle, strings.TrimSuffix(sb.String(), "\n"))
	}

	//nolint:errcheck // writing to stdout; errors are not recoverable
	fmt.Fprintf(p.out, "page %d of %d\n", page, totalPages)
}

// PrintListings outputs job listings as rows.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintListings(records []types.JobListingRecord) {
	if len(records) == 0 {
		fmt.Fprintln(p.out, "no listings match the current filters")
		return
	}
	for _, record := range records {
		fmt.Fprintf(p.out, "%-12s %-30s %-20s %-12s %s\n",
			record.ID, truncate(record.Title, 30), truncate(record.Company, 20), record.Posted, record.AgeCategory)
	}
	fmt.Fprintf(p.out, "%d listings\n", len(records))
}

// PrintCompanies outputs company records as rows.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCompanies(records []types.CompanyRecord) {
	for _, record := range records {
		fmt.Fprintf(p.out, "%3d  %-30s %d jobs\n", record.ID, truncate(record.Name, 30), record.JobsCount)
	}
}

// firstLine returns the text up to the first newline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// truncate shortens a string to at most n runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
