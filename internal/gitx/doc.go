// Package gitx reads the state the guard needs from a git repository: the
// worktree root, the configured remotes, the staged change list and the
// staged content of individual files. The repository is never mutated.
//
// Everything is served through go-git except the staged change list, which
// comes from `git diff --cached --name-status -M -C` because go-git's status
// carries no rename or copy detection. Lines that do not parse into the
// expected shapes are contract violations and fail hard; silently skipping an
// unparseable change would undermine the entire guarantee.
package gitx
