package version

import "sort"

// Latest returns the latest stable release: the first non-pre-release entry
// in the feed's native (newest first) order. Returns nil when every entry
// is a pre-release or the feed is empty.
func Latest(releases []Release) *Release {
	for i := range releases {
		if !IsPreRelease(releases[i].Identifier) {
			return &releases[i]
		}
	}
	return nil
}

// NewerThan returns the stable releases strictly newer than the given
// version, in ascending version order. Pre-releases are excluded and
// duplicate or out-of-order feed entries are tolerated.
func NewerThan(releases []Release, version string) []Release {
	seen := make(map[string]bool)
	var newer []Release

	for _, r := range releases {
		if IsPreRelease(r.Identifier) {
			continue
		}
		if Compare(r.Version, version) <= 0 {
			continue
		}
		if seen[r.Version] {
			continue
		}
		seen[r.Version] = true
		newer = append(newer, r)
	}

	sort.SliceStable(newer, func(i, j int) bool {
		return Compare(newer[i].Version, newer[j].Version) < 0
	})

	return newer
}
