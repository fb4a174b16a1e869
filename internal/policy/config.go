package policy

import (
	"fmt"
	"regexp"
	"strings"
)

// Limits bounds the size of a single change-set.
type Limits struct {
	// MaxAdded is the maximum number of newly added files per commit.
	MaxAdded int `koanf:"max_added"`

	// MaxChanged is the maximum number of non-added changes per commit
	// (modified, deleted, renamed and copied files share this pool).
	MaxChanged int `koanf:"max_changed"`
}

// Config configures the classifier. All pattern lists are regular expressions
// matched case-insensitively and unanchored unless the pattern itself anchors
// with ^. Validate compiles every pattern exactly once; after that the config
// must be treated as immutable.
type Config struct {
	// BlockedPaths are patterns whose match anywhere in a path blocks it.
	BlockedPaths []string `koanf:"blocked_paths"`

	// AllowedPaths are exemptions consulted only after a blocked pattern
	// matched. Anchored patterns encode "exempt only at the repository root".
	AllowedPaths []string `koanf:"allowed_paths"`

	// ContentPatterns are prohibited content tokens, compiled into a single
	// alternation applied line by line. There is no content allowlist.
	ContentPatterns []string `koanf:"content_patterns"`

	// SkipContentPaths are paths whose content is never scanned (binary and
	// generated formats). Path blocking still applies to them.
	SkipContentPaths []string `koanf:"skip_content_paths"`

	// Limits bounds the change-set size.
	Limits Limits `koanf:"limits"`

	// SecureRemotes are upstream URLs presumed never to be made public. When
	// every configured remote is in this set, all checks are skipped.
	SecureRemotes []string `koanf:"secure_remotes"`

	// ExceptionContact is named in violation messages as the person to ask
	// for a policy exception.
	ExceptionContact string `koanf:"exception_contact"`

	// compiled patterns (populated by Validate)
	blocked       []*regexp.Regexp
	allowed       []*regexp.Regexp
	skipContent   []*regexp.Regexp
	content       *regexp.Regexp
	secureRemotes map[string]struct{}
}

// Validate validates and compiles the configuration.
func (c *Config) Validate() error {
	var err error

	if c.blocked, err = compileList("blocked_paths", c.BlockedPaths); err != nil {
		return err
	}
	if c.allowed, err = compileList("allowed_paths", c.AllowedPaths); err != nil {
		return err
	}
	if c.skipContent, err = compileList("skip_content_paths", c.SkipContentPaths); err != nil {
		return err
	}

	if len(c.ContentPatterns) > 0 {
		for i, p := range c.ContentPatterns {
			if _, err := regexp.Compile(p); err != nil {
				return fmt.Errorf("content_patterns[%d]: invalid pattern %q: %w", i, p, err)
			}
		}
		c.content, err = regexp.Compile("(?i)(?:" + strings.Join(c.ContentPatterns, "|") + ")")
		if err != nil {
			return fmt.Errorf("content_patterns: invalid alternation: %w", err)
		}
	} else {
		c.content = nil
	}

	if c.Limits.MaxAdded < 0 || c.Limits.MaxChanged < 0 {
		return fmt.Errorf("limits must not be negative: max_added=%d max_changed=%d",
			c.Limits.MaxAdded, c.Limits.MaxChanged)
	}

	c.secureRemotes = make(map[string]struct{}, len(c.SecureRemotes))
	for _, url := range c.SecureRemotes {
		c.secureRemotes[url] = struct{}{}
	}

	return nil
}

// compileList compiles a pattern list case-insensitively.
func compileList(name string, patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for i, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: invalid pattern %q: %w", name, i, p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}
