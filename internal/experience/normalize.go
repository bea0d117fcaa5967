package experience

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Normalize trims every field in place and checks ids and dates. Blank text
// is allowed; such accomplishments score zero.
func Normalize(accs []types.Accomplishment) error {
	validate := validator.New()
	seen := make(map[string]bool, len(accs))

	for i := range accs {
		a := &accs[i]
		a.ID = strings.TrimSpace(a.ID)
		a.Text = strings.TrimSpace(a.Text)
		a.CompanyID = strings.TrimSpace(a.CompanyID)
		a.JobTitle = strings.TrimSpace(a.JobTitle)
		a.StartDate = strings.TrimSpace(a.StartDate)
		a.EndDate = strings.TrimSpace(a.EndDate)

		if err := validate.Struct(a); err != nil {
			return &NormalizationError{Message: fmt.Sprintf("accomplishment %d is invalid", i), Cause: err}
		}
		if seen[a.ID] {
			return &NormalizationError{Message: fmt.Sprintf("duplicate accomplishment id '%s'", a.ID)}
		}
		seen[a.ID] = true

		if err := checkDates(a); err != nil {
			return &NormalizationError{Message: fmt.Sprintf("accomplishment '%s' has bad dates", a.ID), Cause: err}
		}
	}
	return nil
}

func checkDates(a *types.Accomplishment) error {
	var start, end time.Time
	var err error
	if a.StartDate != "" {
		if start, err = types.ParseDate(a.StartDate); err != nil {
			return err
		}
	}
	if a.EndDate != "" {
		if end, err = types.ParseDate(a.EndDate); err != nil {
			return err
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return fmt.Errorf("end date %s is before start date %s", a.EndDate, a.StartDate)
	}
	return nil
}
