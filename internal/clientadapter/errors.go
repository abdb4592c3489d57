package clientadapter

import "fmt"

// ExitError reports a non-zero exit from the client binary, with stderr
// captured as the message per spec §6.
type ExitError struct {
	Args   []string
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("client adapter: %v failed: %s", e.Args, e.Stderr)
}

// JoinMismatchError reports that a torrent's joined file set failed the
// spec §6 post-processing validation: sizes must sum to the torrent's
// reported size, and the file count must match.
type JoinMismatchError struct {
	TorrentID    string
	WantSize     uint64
	GotSize      uint64
	WantCount    int
	GotCount     int
}

func (e *JoinMismatchError) Error() string {
	return fmt.Sprintf("client adapter: torrent %s file join mismatch: size want=%d got=%d, count want=%d got=%d",
		e.TorrentID, e.WantSize, e.GotSize, e.WantCount, e.GotCount)
}

// NonUTF8PathError reports a move destination path that cannot be
// represented as UTF-8, which spec §6 calls out as a fatal error for the
// move subcommand specifically.
type NonUTF8PathError struct {
	Path string
}

func (e *NonUTF8PathError) Error() string {
	return fmt.Sprintf("client adapter: path is not valid UTF-8: %q", e.Path)
}
