package version

import "time"

// Release represents one versioned publication event from the changelog feed
type Release struct {
	Version     string    // dotted numeric version, e.g. "0.92.0"
	Identifier  string    // tag or title as published, e.g. "rust-v0.92.0"
	Body        string    // raw release notes, markdown or HTML
	URL         string
	PublishedAt time.Time
}
