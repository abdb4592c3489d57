// Package torrentmeta decodes bencoded .torrent files into the immutable
// value types the rest of the importer works with, synthesizing the
// piece-to-file-slice layout that the wire format leaves implicit.
package torrentmeta

import (
	"crypto/sha1" //nolint:gosec // torrent piece hashes are SHA-1 by format, not a security boundary
	"fmt"
	"io"
	"net/url"

	"github.com/anacrolix/torrent/metainfo"
)

// DigestLen is the length in bytes of a torrent piece hash.
const DigestLen = sha1.Size

// Digest is a SHA-1 piece hash.
type Digest [DigestLen]byte

func (d Digest) String() string {
	return fmt.Sprintf("%x", [DigestLen]byte(d))
}

// File is one file declared (or synthesized) by a torrent's info dictionary.
// Path is already prefixed with info.name for multi-file torrents.
type File struct {
	Path   []string
	Length uint64
}

// FileSlice is a contiguous byte range within one File contributing to a Piece.
type FileSlice struct {
	Path   []string
	Offset uint64
	Length uint64
}

// Piece is one fixed-size (except possibly the last) span of the torrent's
// logical byte stream, whose SHA-1 over the concatenated slice bytes equals Hash.
type Piece struct {
	Hash   Digest
	Slices []FileSlice
}

// Info is the decoded, laid-out info dictionary of a torrent.
type Info struct {
	Name         string
	Files        []File
	Pieces       []Piece
	PieceLength  uint64
	IsSingleFile bool
}

// Torrent is a fully decoded .torrent file.
type Torrent struct {
	Announce string
	Info     Info
}

// AnnounceHost returns the host component of the announce URL. Decode already
// guarantees this is non-empty, so this never returns an error in practice;
// it is kept as a function (rather than a precomputed field) so callers see
// where the value comes from.
func (t *Torrent) AnnounceHost() (string, error) {
	u, err := url.Parse(t.Announce)
	if err != nil {
		return "", fmt.Errorf("parse announce url: %w", err)
	}
	if u.Host == "" {
		return "", ErrNoAnnounceHost
	}
	return u.Host, nil
}

// Decode parses a bencoded .torrent file and synthesizes its piece layout.
func Decode(r io.Reader) (*Torrent, error) {
	mi, err := metainfo.Load(r)
	if err != nil {
		return nil, fmt.Errorf("decode metainfo: %w", err)
	}

	u, err := url.Parse(mi.Announce)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAnnounce, mi.Announce)
	}

	rawInfo, err := mi.UnmarshalInfo()
	if err != nil {
		return nil, fmt.Errorf("unmarshal info dict: %w", err)
	}

	if rawInfo.Name == "" {
		return nil, fmt.Errorf("decode metainfo: empty info.name")
	}

	if len(rawInfo.Pieces)%DigestLen != 0 || len(rawInfo.Pieces) == 0 {
		return nil, fmt.Errorf("%w: pieces blob length %d is not a positive multiple of %d", ErrLayoutMismatch, len(rawInfo.Pieces), DigestLen)
	}

	files, isSingleFile, err := buildFiles(rawInfo)
	if err != nil {
		return nil, err
	}

	hashes := splitDigests(rawInfo.Pieces)

	pieces, err := layoutPieces(files, uint64(rawInfo.PieceLength), hashes)
	if err != nil {
		return nil, err
	}

	return &Torrent{
		Announce: mi.Announce,
		Info: Info{
			Name:         rawInfo.Name,
			Files:        files,
			Pieces:       pieces,
			PieceLength:  uint64(rawInfo.PieceLength),
			IsSingleFile: isSingleFile,
		},
	}, nil
}

func buildFiles(info metainfo.Info) ([]File, bool, error) {
	switch {
	case info.IsDir():
		files := make([]File, 0, len(info.Files))
		for _, f := range info.Files {
			path := append([]string{info.Name}, f.Path...)
			files = append(files, File{Path: path, Length: uint64(f.Length)})
		}
		if len(files) == 0 {
			return nil, false, fmt.Errorf("%w: torrent declares files but the list is empty", ErrLayoutMismatch)
		}
		return files, false, nil
	default:
		return []File{{Path: []string{info.Name}, Length: uint64(info.Length)}}, true, nil
	}
}

func splitDigests(raw []byte) []Digest {
	out := make([]Digest, len(raw)/DigestLen)
	for i := range out {
		copy(out[i][:], raw[i*DigestLen:(i+1)*DigestLen])
	}
	return out
}

// layoutPieces performs the deterministic walk described in spec §4.1: it
// consumes piece_length bytes (or less, for the final piece) from files in
// declared order, emitting one FileSlice per file boundary crossed.
func layoutPieces(files []File, pieceLength uint64, hashes []Digest) ([]Piece, error) {
	if pieceLength == 0 {
		return nil, fmt.Errorf("%w: piece length is zero", ErrLayoutMismatch)
	}

	var total uint64
	for _, f := range files {
		total += f.Length
	}

	fileIdx := 0
	var fileRemaining uint64
	if len(files) > 0 {
		fileRemaining = files[0].Length
	}

	remaining := total
	pieces := make([]Piece, 0, len(hashes))

	for _, hash := range hashes {
		if remaining == 0 {
			return nil, fmt.Errorf("%w: remaining hashes but all bytes consumed", ErrLayoutMismatch)
		}

		pieceRemaining := min(remaining, pieceLength)
		var slices []FileSlice

		for pieceRemaining > 0 {
			if fileIdx >= len(files) {
				return nil, fmt.Errorf("%w: remaining hashes but all files consumed", ErrLayoutMismatch)
			}
			current := files[fileIdx]

			take := min(fileRemaining, pieceRemaining)
			if take == 0 {
				// A zero-length file contributes no bytes; advance past it.
				fileIdx++
				if fileIdx < len(files) {
					fileRemaining = files[fileIdx].Length
				}
				continue
			}

			slices = append(slices, FileSlice{
				Path:   current.Path,
				Offset: current.Length - fileRemaining,
				Length: take,
			})

			fileRemaining -= take
			remaining -= take
			pieceRemaining -= take

			if fileRemaining == 0 {
				fileIdx++
				if fileIdx < len(files) {
					fileRemaining = files[fileIdx].Length
				}
			}
		}

		pieces = append(pieces, Piece{Hash: hash, Slices: slices})
	}

	if remaining != 0 {
		return nil, fmt.Errorf("%w: %d bytes remain after hashes exhausted", ErrLayoutMismatch, remaining)
	}

	return pieces, nil
}
