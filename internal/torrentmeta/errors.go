package torrentmeta

import "errors"

// ErrInvalidAnnounce is returned when the top-level announce URL is missing,
// unparseable, or has no host.
var ErrInvalidAnnounce = errors.New("invalid announce url")

// ErrNoAnnounceHost is returned by AnnounceHost when the announce URL has no
// host component. Decode rejects such torrents up front, so in practice this
// only fires if a Torrent value was constructed by hand.
var ErrNoAnnounceHost = errors.New("announce url has no host")

// ErrLayoutMismatch is returned when the declared file lengths and the
// pieces blob cannot be reconciled by the deterministic walk in §4.1:
// either hashes remain after files are exhausted, or bytes remain after
// hashes are exhausted. Decode also returns it for a pieces blob that is not
// a positive multiple of DigestLen, a zero piece length, or an empty files
// list.
var ErrLayoutMismatch = errors.New("torrent layout mismatch")
