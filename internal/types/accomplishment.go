// Package types provides type definitions for structured data used throughout the resume-tailor engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
	"time"
)

// Accomplishment is a single user-authored statement tied to one prior role.
// Dates use "YYYY-MM" or "YYYY-MM-DD"; an empty EndDate means the role has no recorded end.
type Accomplishment struct {
	ID        string `json:"id" validate:"required"`
	Text      string `json:"text"`
	CompanyID string `json:"company_id" validate:"max=200"`
	JobTitle  string `json:"job_title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	IsCurrent bool   `json:"is_current"`
}

// AccomplishmentSet is the on-disk shape used by the CLI loader.
type AccomplishmentSet struct {
	Accomplishments []Accomplishment `json:"accomplishments"`
}

var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// ParseDate parses the date formats accepted on Accomplishment.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
