// Package guard orchestrates the commit checks: remote trust, change-set
// limits, path blocking and staged-content scanning, plus the whole-tree
// audit mode used before publishing a private tree.
package guard

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/repoguard/internal/policy"
)

// Repository is the slice of git access the guard needs. *gitx.Repository
// satisfies it; tests substitute fixtures.
type Repository interface {
	Root() string
	Remotes() ([]policy.Remote, error)
	StagedChanges(ctx context.Context) ([]policy.Change, error)
	StagedContent(path string) ([]string, bool, error)
}

// Options controls optional guard behavior.
type Options struct {
	// Report prints the added/changed counts and the added file names
	// before the limits are applied.
	Report bool

	// ReportWriter receives report output. Defaults to stdout.
	ReportWriter io.Writer
}

// Guard runs the policy checks against one repository.
type Guard struct {
	repo       Repository
	classifier *policy.Classifier
	log        *zap.Logger
	opts       Options
}

// New creates a Guard. If log is nil, nothing is logged.
func New(repo Repository, classifier *policy.Classifier, log *zap.Logger, opts Options) *Guard {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.ReportWriter == nil {
		opts.ReportWriter = os.Stdout
	}
	return &Guard{
		repo:       repo,
		classifier: classifier,
		log:        log,
		opts:       opts,
	}
}

// CheckStaged checks the staged change-set. It returns the full list of
// policy violations rather than stopping at the first, and a non-nil error
// only for environment failures (no staged changes, unreadable repository
// state).
//
// When every configured remote is secure the repository is presumed private
// and confidential, and all checks are skipped.
func (g *Guard) CheckStaged(ctx context.Context) ([]policy.Violation, error) {
	remotes, err := g.repo.Remotes()
	if err != nil {
		return nil, err
	}
	if g.classifier.AllRemotesSecure(remotes) {
		g.log.Info("all git remotes are secure, checking skipped")
		return nil, nil
	}

	changes, err := g.repo.StagedChanges(ctx)
	if err != nil {
		return nil, err
	}

	if g.opts.Report {
		g.writeReport(changes)
	}

	violations := g.classifier.CheckLimits(changes)

	// Deleted entries are exempt from both checks: the name is gone and
	// there is no staged blob behind it.
	for _, change := range changes {
		if change.Status == policy.StatusDeleted {
			continue
		}
		if v := g.classifier.BlockedPath(change.Path); v != nil {
			violations = append(violations, *v)
		}
	}

	for _, change := range changes {
		if change.Status == policy.StatusDeleted {
			continue
		}
		v, err := g.checkStagedContent(change.Path)
		if err != nil {
			return nil, err
		}
		if v != nil {
			violations = append(violations, *v)
		}
	}

	return violations, nil
}

// checkStagedContent scans the staged blob of one path.
func (g *Guard) checkStagedContent(path string) (*policy.Violation, error) {
	if g.classifier.SkipsContent(path) {
		return nil, nil
	}

	lines, ok, err := g.repo.StagedContent(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Submodule pointer: its content was checked when the submodule
		// itself was committed to.
		g.log.Info("skipping content check on submodule", zap.String("path", path))
		return nil, nil
	}

	return g.classifier.ScanContent(path, lines), nil
}

// writeReport prints the change-set summary the way --report asks for.
func (g *Guard) writeReport(changes []policy.Change) {
	added, changed := policy.CountChanges(changes)
	limits := g.classifier.Config().Limits

	fmt.Fprintf(g.opts.ReportWriter, "Added %d (limit: %d)\n", added, limits.MaxAdded)
	for _, c := range changes {
		if c.Status == policy.StatusAdded {
			fmt.Fprintf(g.opts.ReportWriter, "    %s\n", c.Path)
		}
	}
	fmt.Fprintf(g.opts.ReportWriter, "Changed %d (limit: %d)\n", changed, limits.MaxChanged)
}
