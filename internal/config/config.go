// Package config loads bot settings from an optional YAML file and
// CODEX_CHANGELOG_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/btraut/codex-changelog/internal/thread"
	"github.com/btraut/codex-changelog/internal/twitter"
)

const envPrefix = "CODEX_CHANGELOG"

// Config holds one bot deployment's settings
type Config struct {
	Owner          string `mapstructure:"owner"`
	Repo           string `mapstructure:"repo"`
	GitHubToken    string `mapstructure:"github_token"`
	CheckpointPath string `mapstructure:"checkpoint"`
	Tier           string `mapstructure:"tier"` // "short" or "long"
	Numbered       bool   `mapstructure:"numbered"`

	Twitter TwitterConfig `mapstructure:"twitter"`
}

// TwitterConfig holds the posting credentials
type TwitterConfig struct {
	ConsumerKey    string `mapstructure:"consumer_key"`
	ConsumerSecret string `mapstructure:"consumer_secret"`
	AccessToken    string `mapstructure:"access_token"`
	AccessSecret   string `mapstructure:"access_secret"`
}

// Load reads configuration from the given file (optional) and the
// environment. Environment variables use the CODEX_CHANGELOG prefix with
// underscores, e.g. CODEX_CHANGELOG_TWITTER_CONSUMER_KEY.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults double as env-var bindings: AutomaticEnv only surfaces
	// keys viper already knows about.
	v.SetDefault("owner", "openai")
	v.SetDefault("repo", "codex")
	v.SetDefault("github_token", "")
	v.SetDefault("checkpoint", "last_version.txt")
	v.SetDefault("tier", "short")
	v.SetDefault("numbered", false)
	v.SetDefault("twitter.consumer_key", "")
	v.SetDefault("twitter.consumer_secret", "")
	v.SetDefault("twitter.access_token", "")
	v.SetDefault("twitter.access_secret", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings needed by every run
func (c *Config) Validate() error {
	if c.Owner == "" || c.Repo == "" {
		return fmt.Errorf("repository owner and name are required")
	}
	if _, err := c.Budget(); err != nil {
		return err
	}
	return nil
}

// Budget maps the configured tier onto packing constants
func (c *Config) Budget() (thread.Budget, error) {
	var b thread.Budget

	switch c.Tier {
	case "", "short":
		b = thread.ShortForm
	case "long":
		b = thread.LongForm
	default:
		return b, fmt.Errorf("unknown tier %q (expected short or long)", c.Tier)
	}

	b.Numbered = c.Numbered
	return b, nil
}

// HasTwitterCredentials reports whether all four posting keys are set
func (c *Config) HasTwitterCredentials() bool {
	return c.Twitter.ConsumerKey != "" &&
		c.Twitter.ConsumerSecret != "" &&
		c.Twitter.AccessToken != "" &&
		c.Twitter.AccessSecret != ""
}

// TwitterCredentials converts the config block into client credentials
func (c *Config) TwitterCredentials() twitter.Credentials {
	return twitter.Credentials{
		ConsumerKey:    c.Twitter.ConsumerKey,
		ConsumerSecret: c.Twitter.ConsumerSecret,
		AccessToken:    c.Twitter.AccessToken,
		AccessSecret:   c.Twitter.AccessSecret,
	}
}

// FullName returns the full repository name (owner/repo)
func (c *Config) FullName() string {
	return fmt.Sprintf("%s/%s", c.Owner, c.Repo)
}

// ParseRepositoryString parses "owner/repo" format or a github.com URL
func ParseRepositoryString(repoStr string) (owner, repo string, err error) {
	// Check if it's a GitHub URL
	if strings.Contains(repoStr, "github.com") {
		// https://github.com/owner/repo -> owner/repo
		parts := strings.Split(repoStr, "github.com/")
		if len(parts) == 2 {
			repoStr = strings.TrimSuffix(parts[1], "/")
			repoStr = strings.Split(repoStr, "/releases")[0]
			repoStr = strings.Split(repoStr, "/tags")[0]
		}
	}

	parts := strings.Split(repoStr, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository format: %s (expected owner/repo)", repoStr)
	}

	return parts[0], parts[1], nil
}
