// Package version exposes the build version of cbamquest.
package version

// version is set at build time:
//
//	go build -ldflags "-X github.com/rshade/cbamquest/pkg/version.version=v1.2.3" ./cmd/cbamquest
var version = "dev" //nolint:gochecknoglobals // Overridden via ldflags.

// GetVersion returns the build version, "dev" for local builds.
func GetVersion() string {
	return version
}
