package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("with nil config uses defaults", func(t *testing.T) {
		c, err := New(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 10, c.Config().Limits.MaxAdded)
		assert.Equal(t, 50, c.Config().Limits.MaxChanged)
	})

	t.Run("with invalid blocked pattern", func(t *testing.T) {
		cfg := &Config{BlockedPaths: []string{`[invalid`}}
		_, err := New(cfg, nil)
		assert.Error(t, err)
	})

	t.Run("with invalid content pattern", func(t *testing.T) {
		cfg := &Config{ContentPatterns: []string{`(unclosed`}}
		_, err := New(cfg, nil)
		assert.Error(t, err)
	})

	t.Run("with negative limits", func(t *testing.T) {
		cfg := &Config{Limits: Limits{MaxAdded: -1}}
		_, err := New(cfg, nil)
		assert.Error(t, err)
	})
}

func TestIsBlocked(t *testing.T) {
	c := MustNew(nil, nil)

	blocked := []string{
		"dir/some_gf12_data",
		"flow/platforms/7nm",
		"foo.v",
		"foo.gds2",
		"foo.lef.gz",
		"foo.cal",
		"a/b/foo.cdl",
		"foo.lib",
		"tsmc65lp",
		"sc9mcpp84_12lp_base_rvt",
		// The flow/designs allowlist entry anchors to the path start, so a
		// nested copy cannot spoof the exemption.
		"gf14/flow/designs",
	}
	for _, path := range blocked {
		t.Run("blocks "+path, func(t *testing.T) {
			assert.True(t, c.IsBlocked(path))
		})
	}

	allowed := []string{
		"flow/platforms/nangate45/netlist.v",
		"flow/designs/foo.v",
		"flow/scripts/synth.tcl",
		"README.md",
		"src/main.go",
		"docs/index.html",
	}
	for _, path := range allowed {
		t.Run("allows "+path, func(t *testing.T) {
			assert.False(t, c.IsBlocked(path))
		})
	}

	t.Run("matching is case-insensitive", func(t *testing.T) {
		assert.True(t, c.IsBlocked("FOO.V"))
		assert.True(t, c.IsBlocked("TSMC65LP"))
		assert.False(t, c.IsBlocked("FLOW/DESIGNS/foo.v"))
	})

	t.Run("verdict is idempotent", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			assert.True(t, c.IsBlocked("foo.v"))
			assert.False(t, c.IsBlocked("flow/designs/foo.v"))
		}
	})

	t.Run("allowlist never consulted without a block match", func(t *testing.T) {
		// A config whose allowlist would match everything must not turn an
		// unmatched path into anything other than allowed.
		cfg := &Config{
			BlockedPaths: []string{`secret`},
			AllowedPaths: []string{``}, // matches any path
		}
		cc := MustNew(cfg, nil)
		assert.False(t, cc.IsBlocked("ordinary.txt"))
		assert.False(t, cc.IsBlocked("secret.txt"))
	})
}

func TestBlockedPath(t *testing.T) {
	c := MustNew(nil, nil)

	v := c.BlockedPath("foo.v")
	require.NotNil(t, v)
	assert.Equal(t, KindBlockedPath, v.Kind)
	assert.Equal(t, "foo.v", v.Path)
	assert.Equal(t, "File name is blocked: foo.v", v.String())

	assert.Nil(t, c.BlockedPath("flow/designs/foo.v"))
}

func TestAllRemotesSecure(t *testing.T) {
	c := MustNew(nil, nil)
	secure := "/home/zf4_projects/OpenROAD-guest/platforms/gf12.git"

	t.Run("empty remote list is never secure", func(t *testing.T) {
		assert.False(t, c.AllRemotesSecure(nil))
		assert.False(t, c.AllRemotesSecure([]Remote{}))
	})

	t.Run("all secure", func(t *testing.T) {
		assert.True(t, c.AllRemotesSecure([]Remote{
			{Name: "origin", URL: secure},
		}))
	})

	t.Run("one insecure remote spoils the set", func(t *testing.T) {
		assert.False(t, c.AllRemotesSecure([]Remote{
			{Name: "origin", URL: secure},
			{Name: "github", URL: "https://github.com/example/public.git"},
		}))
	})
}
