// This file adds a lightweight linter for Pipeline values. It performs
// static checks over a decoded Pipeline and returns a list of issues
// (errors and warnings) that callers can surface in a CLI or tests.
package config

import (
	"fmt"
	"strings"
	"time"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a finding that should be surfaced to users
	// but does not necessarily block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding. Path is a dotted path into
// the config (e.g. "storage.kind"); Message is human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a
// single error where convenient.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// ValidatePipeline performs static validation of a Pipeline. It does not
// mutate the pipeline; callers decide whether warnings are fatal.
func ValidatePipeline(p Pipeline) []Issue {
	var issues []Issue

	if strings.TrimSpace(p.Job) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "job",
			Message:  "job must not be empty; it labels metrics and run logs",
		})
	}
	issues = append(issues, validateSource(p.Source)...)
	issues = append(issues, validateTransform(p.Transform)...)
	issues = append(issues, validateStorage(p.Storage)...)

	return issues
}

func validateSource(s Source) []Issue {
	var issues []Issue
	if strings.TrimSpace(s.Orders.Path) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "source.orders.path",
			Message:  "orders source requires a non-empty path",
		})
	}
	if strings.TrimSpace(s.Products.Path) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "source.products.path",
			Message:  "products source requires a non-empty path",
		})
	}
	return issues
}

func validateTransform(t Transform) []Issue {
	var issues []Issue
	if t.DateLayout != "" {
		// The layout must round-trip the reference date with year, month
		// and day intact, or it cannot represent an order date.
		ref := time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC)
		parsed, err := time.Parse(t.DateLayout, ref.Format(t.DateLayout))
		if err != nil || parsed.Year() != 2006 || parsed.Month() != time.January || parsed.Day() != 2 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "transform.date_layout",
				Message:  fmt.Sprintf("%q is not a full calendar-date layout", t.DateLayout),
			})
		}
	}
	return issues
}

func validateStorage(s Storage) []Issue {
	var issues []Issue

	if strings.TrimSpace(s.Kind) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.kind",
			Message:  "storage.kind must not be empty",
		})
		return issues
	}

	known := map[string]struct{}{
		"sqlite":   {},
		"postgres": {},
		"mysql":    {},
		"mssql":    {},
	}
	if _, ok := known[s.Kind]; !ok {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "storage.kind",
			Message:  fmt.Sprintf("unknown storage kind %q; ensure a matching backend is registered", s.Kind),
		})
	}

	if strings.TrimSpace(s.DB.DSN) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.db.dsn",
			Message:  "storage.db.dsn must not be empty",
		})
	}

	return issues
}
