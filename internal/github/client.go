package github

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	gh "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/btraut/codex-changelog/internal/version"
)

// Client wraps the GitHub API client used as the release feed source
type Client struct {
	gh    *gh.Client
	Owner string
	Repo  string
}

// NewClient creates a new GitHub release feed client. An empty token means
// unauthenticated requests.
func NewClient(token, owner, repo string) *Client {
	var client *gh.Client

	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc := oauth2.NewClient(context.Background(), ts)
		client = gh.NewClient(tc)
	} else {
		client = gh.NewClient(nil)
	}

	return &Client{
		gh:    client,
		Owner: owner,
		Repo:  repo,
	}
}

// ListReleases fetches releases in the feed's native order (newest first).
// Drafts are skipped. Pre-releases are kept: classifying them is the
// selection layer's job, not the feed's.
func (c *Client) ListReleases(ctx context.Context) ([]version.Release, error) {
	var all []version.Release

	opts := &gh.ListOptions{PerPage: 100}

	for page := 1; page <= 10; page++ { // Safety limit of 10 pages
		opts.Page = page

		releases, resp, err := c.gh.Repositories.ListReleases(ctx, c.Owner, c.Repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list releases (page %d): %w", page, err)
		}

		for _, ghRelease := range releases {
			if ghRelease.GetDraft() {
				continue
			}

			release, err := parseRelease(ghRelease)
			if err != nil {
				// Skip releases without a usable tag
				continue
			}

			all = append(all, *release)
		}

		if resp.NextPage == 0 {
			break
		}
	}

	return all, nil
}

// parseRelease converts a GitHub release to our Release type
func parseRelease(ghRelease *gh.RepositoryRelease) (*version.Release, error) {
	tag := ghRelease.GetTagName()
	if tag == "" {
		return nil, fmt.Errorf("release has no tag name")
	}

	identifier := tag
	if name := ghRelease.GetName(); name != "" {
		identifier = name
	}

	return &version.Release{
		Version:     NormalizeTag(tag),
		Identifier:  identifier,
		Body:        ghRelease.GetBody(),
		URL:         ghRelease.GetHTMLURL(),
		PublishedAt: ghRelease.GetPublishedAt().Time,
	}, nil
}

var versionPattern = regexp.MustCompile(`\d+(?:\.\d+)+`)

// NormalizeTag reduces a release tag to its dotted numeric version.
// Semver-parseable tags ("v0.92.0") go through semver so prefixes and
// build metadata are handled; prefixed tags like "rust-v0.92.0" fall back
// to the first dotted run of digits.
func NormalizeTag(tag string) string {
	if v, err := semver.NewVersion(tag); err == nil {
		return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
	}

	if m := versionPattern.FindString(tag); m != "" {
		return m
	}

	return strings.TrimSpace(tag)
}

// MockClient is a mock implementation for testing
type MockClient struct {
	Releases []version.Release
	Error    error
}

// ListReleases returns the mocked releases
func (m *MockClient) ListReleases(ctx context.Context) ([]version.Release, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Releases, nil
}
