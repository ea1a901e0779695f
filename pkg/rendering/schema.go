package rendering

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// SchemaVersion is the version of the command schema documented in the
// package comment. Renderers declare the version they were written against.
const SchemaVersion = "v1.0.0"

// CheckSchema reports whether a renderer written against version v can
// consume commands produced by this package: v must be valid semver with
// the same major version and must not be newer than SchemaVersion.
func CheckSchema(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid schema version %q", v)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return fmt.Errorf("schema %s is incompatible with %s", v, SchemaVersion)
	}
	if semver.Compare(v, SchemaVersion) > 0 {
		return fmt.Errorf("schema %s is newer than supported %s", v, SchemaVersion)
	}
	return nil
}
