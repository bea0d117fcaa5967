package schemas

import (
	_ "embed"
)

//go:embed remote_requirements.schema.json
var remoteRequirementsSchema string

// RemoteRequirementsSchema returns the schema a remote extraction response
// must satisfy before it is trusted.
func RemoteRequirementsSchema() string {
	return remoteRequirementsSchema
}

// ValidateRemoteRequirements validates a raw remote extraction response.
func ValidateRemoteRequirements(raw string) error {
	return ValidateJSONString(remoteRequirementsSchema, raw)
}
