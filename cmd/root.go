package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	colour "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/btraut/codex-changelog/internal/changelog"
	"github.com/btraut/codex-changelog/internal/checkpoint"
	"github.com/btraut/codex-changelog/internal/config"
	"github.com/btraut/codex-changelog/internal/github"
	"github.com/btraut/codex-changelog/internal/thread"
	"github.com/btraut/codex-changelog/internal/twitter"
	"github.com/btraut/codex-changelog/internal/version"
)

var (
	configPath     string
	repoFlag       string
	githubToken    string
	checkpointPath string
	tierFlag       string
	dryRun         bool
	processAll     bool
	numbered       bool
	showVersion    bool

	// Version information (set via SetVersionInfo from main)
	appVersion = "dev"
	buildTime  = "unknown"
	gitCommit  = "unknown"

	// Colours for output
	green  = colour.New(colour.FgGreen, colour.Bold)
	yellow = colour.New(colour.FgYellow, colour.Bold)
	cyan   = colour.New(colour.FgCyan)
	grey   = colour.New(colour.FgHiBlack)
)

// SetVersionInfo sets the version information from the main package
func SetVersionInfo(version, build, commit string) {
	appVersion = version
	buildTime = build
	gitCommit = commit
}

var rootCmd = &cobra.Command{
	Use:   "codex-changelog",
	Short: "Post release-note threads for new changelog entries",
	Long: `Watch a repository's release feed and post each new release as a
thread of length-bounded segments, with the release notes parsed into
features, bug fixes, documentation changes and chores.

The last posted version is tracked in a checkpoint file, so the command is
safe to run from cron: a failed run leaves the checkpoint untouched and the
next run picks the release up again.`,
	Example: `  # Preview the thread for the latest release without posting
  codex-changelog --dry-run

  # Post every release newer than the checkpoint, oldest first
  codex-changelog --all

  # Watch a different repository on the long-form tier
  codex-changelog -r owner/repo --tier long --dry-run`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.Flags().StringVarP(&repoFlag, "repo", "r", "", "repository to watch (owner/repo or URL)")
	rootCmd.Flags().StringVarP(&githubToken, "token", "t", os.Getenv("GITHUB_TOKEN"), "GitHub token (or GITHUB_TOKEN env var)")
	rootCmd.Flags().StringVar(&checkpointPath, "checkpoint", "", "path to the checkpoint file")
	rootCmd.Flags().StringVar(&tierFlag, "tier", "", "posting tier: short (280) or long (4000)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the thread instead of posting it")
	rootCmd.Flags().BoolVar(&processAll, "all", false, "process every release newer than the checkpoint, not just the newest")
	rootCmd.Flags().BoolVarP(&numbered, "number", "n", false, "append (i/N) numbering to every segment")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "show version information")
}

func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	// Disable automatic usage printing on error
	cmd.SilenceUsage = true

	if showVersion {
		fmt.Printf("codex-changelog %s\n", appVersion)
		fmt.Printf("Build time: %s\n", buildTime)
		fmt.Printf("Git commit: %s\n", gitCommit)
		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	budget, err := cfg.Budget()
	if err != nil {
		return err
	}

	client := github.NewClient(cfg.GitHubToken, cfg.Owner, cfg.Repo)
	releases, err := client.ListReleases(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch release feed for %s: %w", cfg.FullName(), err)
	}
	if len(releases) == 0 {
		yellow.Printf("No releases found for %s\n", cfg.FullName())
		return nil
	}

	store := checkpoint.New(cfg.CheckpointPath)
	lastVersion, err := store.Read()
	if err != nil {
		return err
	}

	work := selectWork(releases, lastVersion, processAll)
	if len(work) == 0 {
		green.Printf("Nothing newer than %s for %s\n", lastVersion, cfg.FullName())
		return nil
	}

	var poster twitter.Poster
	if !dryRun {
		if !cfg.HasTwitterCredentials() {
			return fmt.Errorf("posting credentials are required unless --dry-run is set")
		}
		poster = twitter.NewClient(cfg.TwitterCredentials())
	}

	for _, release := range work {
		th, err := buildThread(budget, release)
		if err != nil {
			return err
		}

		if dryRun {
			printThread(release, th)
			continue
		}

		ids, err := poster.PostThread(cmd.Context(), th.Segments)
		if err != nil {
			// Checkpoint deliberately not advanced: the next scheduled run
			// reprocesses this release from scratch.
			return fmt.Errorf("failed to post thread for %s: %w", release.Version, err)
		}
		green.Printf("Posted %d segment(s) for %s (root tweet %s)\n", len(ids), release.Version, ids[0])

		if err := store.Write(release.Version); err != nil {
			return err
		}
	}

	if dryRun {
		grey.Printf("\nDry run: checkpoint %s not updated\n", store.Path())
	}

	return nil
}

// applyFlags layers command-line flags over the loaded configuration
func applyFlags(cfg *config.Config) error {
	if repoFlag != "" {
		owner, repo, err := config.ParseRepositoryString(repoFlag)
		if err != nil {
			return err
		}
		cfg.Owner = owner
		cfg.Repo = repo
	}
	if githubToken != "" {
		cfg.GitHubToken = githubToken
	}
	if checkpointPath != "" {
		cfg.CheckpointPath = checkpointPath
	}
	if tierFlag != "" {
		cfg.Tier = tierFlag
	}
	if numbered {
		cfg.Numbered = true
	}
	return nil
}

// selectWork picks the releases to process. With a checkpoint set the run
// covers the stable releases strictly newer than it (all of them with
// --all, otherwise just the newest); without one it covers only the latest
// stable release.
func selectWork(releases []version.Release, lastVersion string, all bool) []version.Release {
	if lastVersion == "" {
		latest := version.Latest(releases)
		if latest == nil {
			return nil
		}
		return []version.Release{*latest}
	}

	newer := version.NewerThan(releases, lastVersion)
	if len(newer) == 0 {
		return nil
	}
	if all {
		return newer
	}
	return newer[len(newer)-1:]
}

// buildThread runs one release through the extract-then-pack pipeline
func buildThread(budget thread.Budget, release version.Release) (thread.Thread, error) {
	parsed := changelog.Extract(release.Body)
	return thread.Pack(budget, release.Version, parsed.Features, release.URL, secondaryCategories(parsed))
}

// secondaryCategories renders the parsed secondary sections in the fixed
// packing order.
func secondaryCategories(parsed changelog.ParsedRelease) []thread.Category {
	return []thread.Category{
		{Title: "Bug Fixes", Items: parsed.BugFixes},
		{Title: "Documentation", Items: parsed.Docs},
		{Title: "Chores", Items: parsed.Chores},
	}
}

func printThread(release version.Release, th thread.Thread) {
	published := ""
	if !release.PublishedAt.IsZero() {
		daysAgo := int(time.Since(release.PublishedAt).Hours() / 24)
		published = fmt.Sprintf(" - published %s (%s)", formatUKDate(release.PublishedAt), formatDaysAgo(daysAgo))
	}

	fmt.Println()
	cyan.Printf("%s [%s]%s\n", release.Version, release.Identifier, published)
	cyan.Println(strings.Repeat("─", 56))

	for i, segment := range th.Segments {
		grey.Printf("[%d/%d] %d chars\n", i+1, len(th.Segments), utf8.RuneCountInString(segment))
		fmt.Println(segment)
		fmt.Println()
	}
}
