//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// SelectionConfig controls thresholds and quotas for a tailoring request.
type SelectionConfig struct {
	MinimumScore        float64 `json:"minimum_score" mapstructure:"minimum-score" validate:"gte=0,lte=1"`
	MaxTotal            int     `json:"max_total" mapstructure:"max-total" validate:"gte=1"`
	MaxPerCompany       int     `json:"max_per_company" mapstructure:"max-per-company" validate:"gte=1"`
	CurrentRoleFloor    float64 `json:"current_role_floor" mapstructure:"current-role-floor" validate:"gte=0,lte=1"`
	UseRemoteExtraction bool    `json:"use_remote_extraction" mapstructure:"use-remote-extraction"`
}

// DefaultSelectionConfig returns the documented defaults.
func DefaultSelectionConfig() SelectionConfig {
	return SelectionConfig{
		MinimumScore:        0.5,
		MaxTotal:            25,
		MaxPerCompany:       6,
		CurrentRoleFloor:    0.7,
		UseRemoteExtraction: false,
	}
}

// Validate validates the SelectionConfig using the validator.
func (c *SelectionConfig) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
