// Package experience loads a user's accomplishments for CLI runs. The
// engine itself never reads files; hosts pass accomplishments in memory.
package experience

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/types"
)

// LoadAccomplishments loads and normalizes an accomplishment set from a JSON file
func LoadAccomplishments(path string) ([]types.Accomplishment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var set types.AccomplishmentSet
	if err := json.Unmarshal(content, &set); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := Normalize(set.Accomplishments); err != nil {
		return nil, err
	}
	if set.Accomplishments == nil {
		set.Accomplishments = []types.Accomplishment{}
	}
	return set.Accomplishments, nil
}
