package policy

import "fmt"

// Kind classifies a policy violation.
type Kind string

const (
	KindBlockedPath    Kind = "blocked_path"
	KindBlockedContent Kind = "blocked_content"
	KindTooManyAdded   Kind = "too_many_added"
	KindTooManyChanged Kind = "too_many_changed"
)

// Violation is one policy failure. Classifier operations return violations as
// values instead of aborting, so the driver can aggregate several into a
// single report.
type Violation struct {
	Kind Kind

	// Path is the offending path, empty for limit violations.
	Path string

	// Line is the 1-based offending line number, 0 when not applicable.
	Line int

	// Text is the offending line's text, empty when not applicable.
	Text string

	// Detail is the human-readable message.
	Detail string
}

func (v Violation) String() string {
	return v.Detail
}

func blockedPathViolation(path string) *Violation {
	return &Violation{
		Kind:   KindBlockedPath,
		Path:   path,
		Detail: fmt.Sprintf("File name is blocked: %s", path),
	}
}

func blockedContentViolation(path string, line int, text string) *Violation {
	return &Violation{
		Kind: KindBlockedContent,
		Path: path,
		Line: line,
		Text: text,
		Detail: fmt.Sprintf("File %s contains blocked content on line %d :\n  %s",
			path, line, text),
	}
}

func tooManyAddedViolation(added, limit int) *Violation {
	return &Violation{
		Kind:   KindTooManyAdded,
		Detail: fmt.Sprintf("too many files added: %d vs limit %d", added, limit),
	}
}

func tooManyChangedViolation(changed, limit int) *Violation {
	return &Violation{
		Kind:   KindTooManyChanged,
		Detail: fmt.Sprintf("too many files changed: %d vs limit %d", changed, limit),
	}
}
