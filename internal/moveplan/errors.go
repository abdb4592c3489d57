package moveplan

import "fmt"

// MixedTorrentError reports a torrent whose files straddle the source set:
// some inside, some outside. Moving it would silently split a torrent
// across two locations, so it's fatal.
type MixedTorrentError struct {
	TorrentID string
}

func (e *MixedTorrentError) Error() string {
	return fmt.Sprintf("torrent %s has files both inside and outside the source set", e.TorrentID)
}

// DidNotMatchAllSourceFilesError reports that, after selecting every
// torrent whose files lie entirely within the source set, some source
// files were still left uncovered by any torrent.
type DidNotMatchAllSourceFilesError struct {
	Matched int
	Total   int
}

func (e *DidNotMatchAllSourceFilesError) Error() string {
	return fmt.Sprintf("only %d of %d source files are covered by a torrent", e.Matched, e.Total)
}

// IncompleteError reports a torrent selected for the move whose progress
// is not 1.0; moving an incomplete torrent risks splitting downloaded and
// undownloaded pieces across the rename boundary.
type IncompleteError struct {
	TorrentID string
	Progress  float64
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("torrent %s is incomplete (progress=%.4f)", e.TorrentID, e.Progress)
}

// NotAPrefixError reports a calculate_new_base_path step where a path that
// was expected to be a prefix of another was not.
type NotAPrefixError struct {
	Prefix string
	Full   string
}

func (e *NotAPrefixError) Error() string {
	return fmt.Sprintf("%q is not a prefix of %q", e.Prefix, e.Full)
}

// NoFileNameError reports a path with no final component to use as a
// basename (e.g. "/" or ".").
type NoFileNameError struct {
	Path string
}

func (e *NoFileNameError) Error() string {
	return fmt.Sprintf("path %q has no file name component", e.Path)
}

// NoParentError reports a path with no parent to ascend to.
type NoParentError struct {
	Path string
}

func (e *NoParentError) Error() string {
	return fmt.Sprintf("path %q has no parent", e.Path)
}

// NonExistentTargetError reports that the move's target directory
// precondition failed: it must already exist.
type NonExistentTargetError struct {
	Path string
}

func (e *NonExistentTargetError) Error() string {
	return fmt.Sprintf("target directory %q does not exist", e.Path)
}

// TargetIsDescendantError reports that the target directory is nested
// inside the source, which would make a copy-and-unlink destroy data.
type TargetIsDescendantError struct {
	Source string
	Target string
}

func (e *TargetIsDescendantError) Error() string {
	return fmt.Sprintf("target %q is a descendant of source %q", e.Target, e.Source)
}

// NonFileEntryError reports an entry in the source tree that is neither a
// regular file nor a directory.
type NonFileEntryError struct {
	Path string
}

func (e *NonFileEntryError) Error() string {
	return fmt.Sprintf("non-file, non-directory entry encountered: %q", e.Path)
}
