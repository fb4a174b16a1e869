// Package policy implements the classification engine for the commit guard.
//
// A Classifier is built once from an immutable, validated Config and decides
// whether a path or a file's content is permitted, whether a change-set stays
// within its size limits, and whether a repository's remotes exempt it from
// checking entirely. Path blocking can be overridden by allowlist patterns;
// content blocking is absolute. Content is always scanned in full, not just
// the changed region, because a prohibited token may have been introduced in
// an earlier commit and merely carried forward.
package policy
