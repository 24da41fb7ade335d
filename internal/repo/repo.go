// Package repo declares the repository adapter girt consumes but never
// implements (spec §6 "Repository adapter (external)"): opening the host
// VCS, reading its configuration, and streaming a commit diff for
// ShowCommit. girt ships only the interface and a test fake; a real
// adapter is out of scope (spec Non-goals: "producing diffs itself").
package repo

import "context"

// Repo is an opaque handle returned by OpenFromEnv.
type Repo interface{}

// DiffPartKind discriminates the DiffPart tagged union.
type DiffPartKind int

const (
	DiffCommit DiffPartKind = iota
	DiffFileStatus
	DiffDelta
	DiffLine
)

// CommitInfo is the synchronous overview DiffPart: hash/author/date/
// subject, enough for ShowCommit to render before the rest of the diff
// streams in (SPEC_FULL.md §4.2 expansion).
type CommitInfo struct {
	Hash    string
	Author  string
	Date    string
	Subject string
	Body    string
}

// FileStatusInfo names one changed file and its change kind (added,
// modified, deleted, renamed, ...).
type FileStatusInfo struct {
	Path       string
	OldPath    string // set only for renames/copies
	ChangeKind string
}

// DeltaInfo introduces one hunk within the file named by the preceding
// FileStatus part.
type DeltaInfo struct {
	OldStart, OldLines int
	NewStart, NewLines int
	Header             string
}

// LineInfo is one line of a hunk body.
type LineInfo struct {
	Origin  byte // '+', '-', or ' '
	Content string
}

// DiffPart is one element of the incremental stream load_commit_diff
// produces (spec §6). Exactly one of the typed fields is meaningful,
// selected by Kind.
type DiffPart struct {
	Kind DiffPartKind

	Commit     CommitInfo
	FileStatus FileStatusInfo
	Delta      DeltaInfo
	Line       LineInfo
}

// DiffOptions configures load_commit_diff (context lines, whitespace
// handling, etc. left to the adapter).
type DiffOptions struct {
	ContextLines int
}

// Repository is the read-only external collaborator ShowCommit depends
// on. girt's core only ever calls these three operations.
type Repository interface {
	OpenFromEnv(ctx context.Context) (Repo, error)
	ReadConfig(ctx context.Context, r Repo) (map[string]string, error)
	LoadCommitDiff(ctx context.Context, r Repo, hash string, opts DiffOptions) (<-chan DiffPart, <-chan error)
}
