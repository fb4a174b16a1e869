package gitx

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/fyrsmithlabs/repoguard/internal/policy"
)

// StagedChanges returns the staged change list with rename and copy
// detection. The old path of a rename or copy is discarded; only the path the
// content will live at matters for rule evaluation.
func (r *Repository) StagedChanges(ctx context.Context) ([]policy.Change, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", r.root,
		"diff", "--cached", "--name-status", "-M", "-C")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git diff --cached --name-status: %w", err)
	}

	text := strings.TrimRight(string(out), "\n")
	if text == "" {
		return nil, ErrNothingStaged
	}

	lines := strings.Split(text, "\n")
	changes := make([]policy.Change, 0, len(lines))
	for _, line := range lines {
		change, err := parseNameStatus(line)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}
	return changes, nil
}

// parseNameStatus parses one tab-separated name-status line. Plain statuses
// come as "<letter>\t<path>"; renames and copies come as
// "<letter><score>\t<old>\t<new>" where score is the similarity percentage.
func parseNameStatus(line string) (policy.Change, error) {
	fields := strings.Split(line, "\t")
	letter := fields[0]
	if letter == "" {
		return policy.Change{}, fmt.Errorf("%w: %q", ErrBadStatusLine, line)
	}

	status, err := policy.ParseStatus(letter[0])
	if err != nil {
		return policy.Change{}, fmt.Errorf("%w: %q: %v", ErrBadStatusLine, line, err)
	}

	switch status {
	case policy.StatusRenamed, policy.StatusCopied:
		if len(fields) != 3 {
			return policy.Change{}, fmt.Errorf("%w: %q: want status, old path and new path", ErrBadStatusLine, line)
		}
		if len(letter) > 1 {
			if _, err := strconv.Atoi(letter[1:]); err != nil {
				return policy.Change{}, fmt.Errorf("%w: %q: bad similarity score %q", ErrBadStatusLine, line, letter[1:])
			}
		}
		return policy.Change{Status: status, Path: fields[2]}, nil

	default:
		if len(letter) != 1 || len(fields) != 2 {
			return policy.Change{}, fmt.Errorf("%w: %q: want single status letter and path", ErrBadStatusLine, line)
		}
		return policy.Change{Status: status, Path: fields[1]}, nil
	}
}
