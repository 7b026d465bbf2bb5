package validator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UUID validates the canonical 36-character UUID form.
func UUID() Validator[string] {
	return Rule(Failure{
		Message: "must be a valid UUID",
		Key:     "validation.uuid",
	}, func(value string) bool {
		_, ok := parseCanonicalUUID(value)
		return ok
	})
}

// NonNilUUID rejects uuid.Nil.
func NonNilUUID() Validator[uuid.UUID] {
	return Rule(Failure{
		Message: "UUID cannot be nil",
		Key:     "validation.uuid_not_nil",
	}, func(value uuid.UUID) bool {
		return value != uuid.Nil
	})
}

// UUIDVersion validates a canonical UUID string of the given version.
func UUIDVersion(version uuid.Version) Validator[string] {
	return Rule(Failure{
		Message: fmt.Sprintf("must be a valid UUID version %d", int(version)),
		Key:     "validation.uuid_version",
		Params:  map[string]any{"version": int(version)},
	}, func(value string) bool {
		id, ok := parseCanonicalUUID(value)
		return ok && id.Version() == version
	})
}

// parseCanonicalUUID rejects non-canonical forms that uuid.Parse accepts (braces, urn prefix)
// and checks hyphen positions before paying for a full parse.
func parseCanonicalUUID(value string) (uuid.UUID, bool) {
	if strings.TrimSpace(value) == "" || len(value) != 36 {
		return uuid.Nil, false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
