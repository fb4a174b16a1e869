package gitx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/format/index"
)

// StagedContent returns the staged version of a file split into lines. It
// reads the blob recorded in the index, not the working tree, so uncommitted
// edits on disk cannot hide a violation that is actually staged.
//
// The boolean is false when the index entry has no scannable blob: a
// submodule-pointer update shows up in the change list as a regular path but
// is a gitlink, not file content.
func (r *Repository) StagedContent(path string) ([]string, bool, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, false, fmt.Errorf("read index: %w", err)
	}

	entry, err := idx.Entry(path)
	if err != nil {
		if errors.Is(err, index.ErrEntryNotFound) {
			return nil, false, fmt.Errorf("staged file %s has no index entry: %w", path, err)
		}
		return nil, false, fmt.Errorf("index entry for %s: %w", path, err)
	}

	if entry.Mode == filemode.Submodule {
		return nil, false, nil
	}

	blob, err := r.repo.BlobObject(entry.Hash)
	if err != nil {
		return nil, false, fmt.Errorf("staged blob for %s: %w", path, err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, false, fmt.Errorf("read staged blob for %s: %w", path, err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, false, fmt.Errorf("read staged blob for %s: %w", path, err)
	}

	return SplitLines(string(content)), true, nil
}

// SplitLines splits content into lines without trailing newline artifacts.
func SplitLines(content string) []string {
	return strings.Split(strings.TrimRight(content, "\n"), "\n")
}
