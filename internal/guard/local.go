package guard

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/repoguard/internal/gitx"
	"github.com/fyrsmithlabs/repoguard/internal/policy"
)

// AuditTree checks every file under root against the path and content rules,
// reading content from disk instead of the staging area. This audits an
// entire private tree before publication; remotes and limits do not apply.
func (g *Guard) AuditTree(ctx context.Context, root string) ([]policy.Violation, error) {
	var violations []policy.Violation

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if v := g.classifier.BlockedPath(rel); v != nil {
			violations = append(violations, *v)
		}

		if !d.Type().IsRegular() {
			g.log.Debug("skipping content check on irregular file", zap.String("path", rel))
			return nil
		}
		if g.classifier.SkipsContent(rel) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", rel, err)
		}
		if v := g.classifier.ScanContent(rel, gitx.SplitLines(string(content))); v != nil {
			violations = append(violations, *v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return violations, nil
}
