package version

import "strings"

// DefaultPreReleaseMarkers are the identifier substrings that classify a
// release as not-yet-stable.
var DefaultPreReleaseMarkers = []string{"alpha", "beta", "rc"}

// IsPreRelease reports whether a release identifier is tagged as a
// pre-release. The check is a case-insensitive substring match, so both
// "rust-v0.93.0-alpha.1" and "RC1" classify as pre-releases. Custom
// markers replace the default set when provided.
func IsPreRelease(identifier string, markers ...string) bool {
	if len(markers) == 0 {
		markers = DefaultPreReleaseMarkers
	}

	id := strings.ToLower(identifier)
	for _, marker := range markers {
		if marker == "" {
			continue
		}
		if strings.Contains(id, strings.ToLower(marker)) {
			return true
		}
	}

	return false
}
