package policy

import "fmt"

// Status is the staged state of a single file in a change-set.
type Status byte

const (
	StatusAdded    Status = 'A'
	StatusModified Status = 'M'
	StatusDeleted  Status = 'D'
	StatusRenamed  Status = 'R'
	StatusCopied   Status = 'C'
)

// ParseStatus maps a git name-status letter to a Status.
func ParseStatus(letter byte) (Status, error) {
	switch s := Status(letter); s {
	case StatusAdded, StatusModified, StatusDeleted, StatusRenamed, StatusCopied:
		return s, nil
	default:
		return 0, fmt.Errorf("unknown change status %q", string(letter))
	}
}

func (s Status) String() string {
	return string(byte(s))
}

// Change is one staged file change. Renames and copies carry only the new
// path; the old path is irrelevant to rule evaluation.
type Change struct {
	Status Status
	Path   string
}

// Remote is one configured upstream of a repository. A remote with several
// URLs produces one Remote per URL.
type Remote struct {
	Name string
	URL  string
}

// CountChanges splits a change-set into its added count and everything-else
// count. Modifications, deletions, renames and copies pool into "changed".
func CountChanges(changes []Change) (added, changed int) {
	for _, c := range changes {
		if c.Status == StatusAdded {
			added++
		}
	}
	return added, len(changes) - added
}
