package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.Validate())
		assert.Len(t, cfg.blocked, len(cfg.BlockedPaths))
		assert.Len(t, cfg.allowed, len(cfg.AllowedPaths))
		assert.Len(t, cfg.skipContent, len(cfg.SkipContentPaths))
		assert.NotNil(t, cfg.content)
		assert.Len(t, cfg.secureRemotes, 2)
	})

	t.Run("empty config is valid", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, cfg.Validate())
		assert.Nil(t, cfg.content)
	})

	t.Run("invalid allowed pattern is named in the error", func(t *testing.T) {
		cfg := &Config{AllowedPaths: []string{`ok`, `(bad`}}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "allowed_paths[1]")
	})

	t.Run("invalid skip pattern is named in the error", func(t *testing.T) {
		cfg := &Config{SkipContentPaths: []string{`[bad`}}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "skip_content_paths[0]")
	})

	t.Run("invalid content pattern reports its index", func(t *testing.T) {
		cfg := &Config{ContentPatterns: []string{`fine`, `*bad`}}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content_patterns[1]")
	})
}
