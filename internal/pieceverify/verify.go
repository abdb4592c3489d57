// Package pieceverify checks torrent piece hashes against files chosen by
// the candidate selector, in parallel across a bounded worker pool, per spec
// §4.5.
package pieceverify

import (
	"context"
	"crypto/sha1" //nolint:gosec // torrent piece hashes are SHA-1 by format, not a security boundary
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/torrentreconcile/xseed/internal/torrentmeta"
)

// Progress is a shared, concurrency-safe counter of bytes hashed so far,
// polled by callers that want to report progress during a full verify.
type Progress struct {
	bytesHashed atomic.Uint64
}

// BytesHashed returns the current count.
func (p *Progress) BytesHashed() uint64 { return p.bytesHashed.Load() }

// Report is the outcome of verifying a set of pieces: the Mapping used, and
// the set of distinct metainfo paths that failed verification (via any of
// their contributing pieces).
type Report struct {
	Mapping *Mapping
	Failed  [][]string
}

// Verify checks each piece in pieces against mapping, dispatching pieces to
// a worker pool sized to GOMAXPROCS (capped at 16, as in the corpus's own
// piece hashers). Workers share read-only access to mapping; each opens its
// own file handles and uses positioned reads (os.File.ReadAt), so no seek
// state is shared across goroutines. If progress is non-nil its counter is
// advanced as pieces complete. The returned error is non-nil for conditions
// that abort the whole run: context cancellation, an UnmappedSliceError, a
// SliceShortReadError, or a mapped source that cannot be opened; individual
// piece hash mismatches are reported via Report.Failed, not as an error.
func Verify(ctx context.Context, pieces []torrentmeta.Piece, mapping *Mapping, progress *Progress) (*Report, error) {
	workers := runtime.GOMAXPROCS(0)
	if workers > 16 {
		workers = 16
	}
	if workers < 1 {
		workers = 1
	}

	type job struct {
		piece torrentmeta.Piece
	}

	jobs := make(chan job, workers*2)
	failedKeys := make(map[string][]string)
	var failedMu sync.Mutex

	var firstErr error
	var errOnce sync.Once
	recordErr := func(err error) {
		errOnce.Do(func() { firstErr = err })
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			files := make(map[string]*os.File)
			defer func() {
				for _, f := range files {
					f.Close()
				}
			}()

			for j := range jobs {
				select {
				case <-ctx.Done():
					recordErr(ctx.Err())
					continue
				default:
				}

				ok, failPaths, err := verifyOne(j.piece, mapping, files)
				if err != nil {
					recordErr(err)
					continue
				}
				if progress != nil {
					for _, s := range j.piece.Slices {
						progress.bytesHashed.Add(s.Length)
					}
				}
				if !ok {
					failedMu.Lock()
					for _, p := range failPaths {
						failedKeys[strings.Join(p, "/")] = p
					}
					failedMu.Unlock()
				}
			}
		}()
	}

feed:
	for _, p := range pieces {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{piece: p}:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	keys := make([]string, 0, len(failedKeys))
	for k := range failedKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	failed := make([][]string, len(keys))
	for i, k := range keys {
		failed[i] = failedKeys[k]
	}

	return &Report{Mapping: mapping, Failed: failed}, nil
}

// verifyOne hashes one piece's contributing slices and compares the result
// to piece.Hash. It returns ok=false (not an error) on a hash mismatch;
// UnmappedSliceError and SliceShortReadError are returned as errors since
// they indicate the run itself cannot proceed for that piece.
func verifyOne(piece torrentmeta.Piece, mapping *Mapping, files map[string]*os.File) (bool, [][]string, error) {
	h := sha1.New() //nolint:gosec

	for _, slice := range piece.Slices {
		src, ok := mapping.Resolve(slice.Path)
		if !ok {
			return false, nil, &UnmappedSliceError{Path: slice.Path}
		}

		f, ok := files[src]
		if !ok {
			var err error
			f, err = os.Open(src)
			if err != nil {
				return false, nil, fmt.Errorf("open mapped source %q: %w", src, err)
			}
			files[src] = f
		}

		buf := make([]byte, slice.Length)
		n, err := f.ReadAt(buf, int64(slice.Offset))
		if err != nil && uint64(n) != slice.Length {
			return false, nil, &SliceShortReadError{Path: slice.Path, Offset: slice.Offset, Got: n, Want: slice.Length}
		}
		if uint64(n) != slice.Length {
			return false, nil, &SliceShortReadError{Path: slice.Path, Offset: slice.Offset, Got: n, Want: slice.Length}
		}

		h.Write(buf)
	}

	var got torrentmeta.Digest
	copy(got[:], h.Sum(nil))
	if got != piece.Hash {
		paths := make([][]string, 0, len(piece.Slices))
		seen := make(map[string]bool)
		for _, s := range piece.Slices {
			k := strings.Join(s.Path, "/")
			if seen[k] {
				continue
			}
			seen[k] = true
			paths = append(paths, s.Path)
		}
		log.Debug().Str("want", piece.Hash.String()).Str("got", got.String()).Msg("piece verify: hash mismatch")
		return false, paths, nil
	}

	return true, nil, nil
}
