package gitx

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/repoguard/internal/policy"
)

func TestParseNameStatus(t *testing.T) {
	t.Run("valid lines", func(t *testing.T) {
		cases := []struct {
			line string
			want policy.Change
		}{
			{"A\tfoo.txt", policy.Change{Status: policy.StatusAdded, Path: "foo.txt"}},
			{"M\tdir/bar.go", policy.Change{Status: policy.StatusModified, Path: "dir/bar.go"}},
			{"D\told file.txt", policy.Change{Status: policy.StatusDeleted, Path: "old file.txt"}},
			{"R100\told.txt\tnew.txt", policy.Change{Status: policy.StatusRenamed, Path: "new.txt"}},
			{"R87\ta/b\tc/d", policy.Change{Status: policy.StatusRenamed, Path: "c/d"}},
			{"C75\tsrc.txt\tcopy.txt", policy.Change{Status: policy.StatusCopied, Path: "copy.txt"}},
		}
		for _, tc := range cases {
			got, err := parseNameStatus(tc.line)
			require.NoError(t, err, "line %q", tc.line)
			assert.Equal(t, tc.want, got, "line %q", tc.line)
		}
	})

	t.Run("unparseable lines fail hard", func(t *testing.T) {
		bad := []string{
			"",
			"A",
			"AM\tfoo.txt",
			"Z\tfoo.txt",
			"A\tfoo\textra",
			"R\told.txt",
			"Rxx\told.txt\tnew.txt",
			"C\tonly-one-path",
		}
		for _, line := range bad {
			_, err := parseNameStatus(line)
			require.Error(t, err, "line %q", line)
			assert.ErrorIs(t, err, ErrBadStatusLine, "line %q", line)
		}
	})
}

func TestStagedChanges(t *testing.T) {
	requireGit(t)

	t.Run("nothing staged", func(t *testing.T) {
		repo, _ := initTestRepo(t)
		_, err := repo.StagedChanges(context.Background())
		assert.ErrorIs(t, err, ErrNothingStaged)
	})

	t.Run("added files", func(t *testing.T) {
		repo, fx := initTestRepo(t)
		fx.stage(t, "a.txt", "hello")
		fx.stage(t, "dir/b.txt", "world")

		changes, err := repo.StagedChanges(context.Background())
		require.NoError(t, err)
		assert.ElementsMatch(t, []policy.Change{
			{Status: policy.StatusAdded, Path: "a.txt"},
			{Status: policy.StatusAdded, Path: "dir/b.txt"},
		}, changes)
	})

	t.Run("modification after a commit", func(t *testing.T) {
		repo, fx := initTestRepo(t)
		fx.stage(t, "a.txt", "v1")
		fx.commit(t, "initial")
		fx.stage(t, "a.txt", "v2")

		changes, err := repo.StagedChanges(context.Background())
		require.NoError(t, err)
		require.Len(t, changes, 1)
		assert.Equal(t, policy.StatusModified, changes[0].Status)
		assert.Equal(t, "a.txt", changes[0].Path)
	})
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}
