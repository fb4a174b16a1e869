package policy

import (
	"go.uber.org/zap"
)

// Classifier evaluates paths, content and change-sets against a compiled
// policy. It holds no mutable state; the same input always yields the same
// verdict.
type Classifier struct {
	config *Config
	log    *zap.Logger
}

// New creates a Classifier from the given configuration. If cfg is nil,
// DefaultConfig() is used. If log is nil, decisions are not traced.
func New(cfg *Config, log *zap.Logger) (*Classifier, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Classifier{config: cfg, log: log}, nil
}

// MustNew creates a Classifier, panicking on error.
func MustNew(cfg *Config, log *zap.Logger) *Classifier {
	c, err := New(cfg, log)
	if err != nil {
		panic(err)
	}
	return c
}

// Config returns the classifier's configuration.
func (c *Classifier) Config() *Config {
	return c.config
}

// IsBlocked reports whether the path is blocked by the path patterns. The
// first blocked match tentatively blocks; the first allowed match then
// overrides it. A path no blocked pattern matches is allowed without the
// allowlist being consulted at all.
func (c *Classifier) IsBlocked(path string) bool {
	blocked := false
	for _, re := range c.config.blocked {
		if re.MatchString(path) {
			blocked = true
			c.log.Debug("path matches blocked pattern",
				zap.String("path", path),
				zap.String("pattern", re.String()))
			break
		}
	}
	if blocked {
		for _, re := range c.config.allowed {
			if re.MatchString(path) {
				blocked = false
				c.log.Debug("path matches allowed pattern",
					zap.String("path", path),
					zap.String("pattern", re.String()))
				break
			}
		}
	}
	return blocked
}

// BlockedPath returns a violation when the path is blocked, nil otherwise.
func (c *Classifier) BlockedPath(path string) *Violation {
	if c.IsBlocked(path) {
		return blockedPathViolation(path)
	}
	return nil
}

// SkipsContent reports whether the path is exempt from content scanning.
func (c *Classifier) SkipsContent(path string) bool {
	for _, re := range c.config.skipContent {
		if re.MatchString(path) {
			c.log.Debug("skipping content check",
				zap.String("path", path),
				zap.String("pattern", re.String()))
			return true
		}
	}
	return false
}

// ScanContent tests every line against the prohibited-content alternation
// and returns a violation for the first offending line. The whole content is
// scanned regardless of which lines a change touched: a prohibited token may
// have been introduced earlier and merely carried forward. There is no
// allowlist for content.
func (c *Classifier) ScanContent(path string, lines []string) *Violation {
	if c.config.content == nil {
		return nil
	}
	for i, line := range lines {
		if c.config.content.MatchString(line) {
			return blockedContentViolation(path, i+1, line)
		}
	}
	return nil
}

// CheckLimits compares a change-set against the configured size limits. The
// boundary is strictly greater-than: a change-set exactly at a limit passes.
func (c *Classifier) CheckLimits(changes []Change) []Violation {
	added, changed := CountChanges(changes)

	var violations []Violation
	if added > c.config.Limits.MaxAdded {
		violations = append(violations, *tooManyAddedViolation(added, c.config.Limits.MaxAdded))
	}
	if changed > c.config.Limits.MaxChanged {
		violations = append(violations, *tooManyChangedViolation(changed, c.config.Limits.MaxChanged))
	}
	return violations
}

// AllRemotesSecure reports whether every configured remote points at a secure
// upstream. An empty remote list is never secure: the absence of information
// must not be interpreted as trust.
func (c *Classifier) AllRemotesSecure(remotes []Remote) bool {
	if len(remotes) == 0 {
		return false
	}
	for _, r := range remotes {
		if _, ok := c.config.secureRemotes[r.URL]; !ok {
			c.log.Debug("remote is not secure",
				zap.String("name", r.Name),
				zap.String("url", r.URL))
			return false
		}
	}
	return true
}
