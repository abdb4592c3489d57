// Package clientadapter is the narrow interface the importer and mover use
// to talk to the torrent client, plus a default implementation that shells
// out to an external binary and parses its JSON output, per spec §4.9/§6.
package clientadapter

import "context"

// ClientTorrent is one torrent as reported by the client, with its files
// joined in (keyed by the metainfo-relative path the client reports).
type ClientTorrent struct {
	ID          string
	Name        string
	BasePath    string
	Progress    float64
	TrackerURLs []string
	Size        uint64
	Files       map[string]uint64
}

// Client is the full set of operations the importer and mover need from a
// torrent client. Implementations must serialize operations against the
// same torrent: the client has no per-operation idempotency guarantee.
type Client interface {
	ListTorrents(ctx context.Context) ([]ClientTorrent, error)
	PauseTorrent(ctx context.Context, id string) error
	ResumeTorrent(ctx context.Context, id string) error
	MoveTorrent(ctx context.Context, id, newBasePath string) error
	AddTorrent(ctx context.Context, metainfoPath, seedRoot string) error
}
