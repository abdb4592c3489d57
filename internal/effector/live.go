package effector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/torrentreconcile/xseed/pkg/reflinktree"
)

// Live performs each operation against the real filesystem.
type Live struct{}

func NewLive() *Live { return &Live{} }

func (Live) Mkdirp(_ context.Context, path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("mkdirp %q: %w", path, err)
	}
	return nil
}

func (Live) Symlink(_ context.Context, link, target string) error {
	if err := os.Symlink(target, link); err != nil {
		return fmt.Errorf("symlink %q -> %q: %w", link, target, err)
	}
	return nil
}

// CreateOrUpdateSymlink matches the teacher's create_or_update_symlink:
// it does not try to preserve the old link on failure.
func (Live) CreateOrUpdateSymlink(_ context.Context, link, target string) error {
	if existing, err := os.Readlink(link); err == nil && existing == target {
		return nil
	}
	err := os.Symlink(target, link)
	if errors.Is(err, os.ErrExist) {
		if rmErr := os.Remove(link); rmErr != nil {
			return fmt.Errorf("replace symlink %q: remove old: %w", link, rmErr)
		}
		err = os.Symlink(target, link)
	}
	if err != nil {
		return fmt.Errorf("create_or_update_symlink %q -> %q: %w", link, target, err)
	}
	return nil
}

func (Live) Rename(_ context.Context, src, dst string) error {
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("rename %q -> %q: %w", src, dst, err)
	}
	return nil
}

func (l Live) CopyTree(ctx context.Context, src, dst string, progress func(uint64)) error {
	var copied uint64
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if d.Type()&os.ModeSymlink != 0 {
			linkTarget, err := os.Readlink(path)
			if err != nil {
				return fmt.Errorf("readlink %q: %w", path, err)
			}
			return os.Symlink(linkTarget, target)
		}
		var fileBytes uint64
		err = l.CopyFile(ctx, path, target, func(n uint64) {
			fileBytes = n
			if progress != nil {
				progress(copied + n)
			}
		})
		copied += fileBytes
		return err
	})
}

func (Live) CopyFile(_ context.Context, src, dst string, progress func(uint64)) error {
	if err := reflinktree.CloneFile(src, dst); err == nil {
		if progress != nil {
			if info, statErr := os.Stat(dst); statErr == nil {
				progress(uint64(info.Size()))
			}
		}
		return nil
	}

	srcF, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %q: %w", src, err)
	}
	defer srcF.Close()

	info, err := srcF.Stat()
	if err != nil {
		return fmt.Errorf("stat %q: %w", src, err)
	}

	dstF, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return fmt.Errorf("create %q: %w", dst, err)
	}
	defer dstF.Close()

	var written uint64
	buf := make([]byte, 4<<20)
	for {
		n, readErr := srcF.Read(buf)
		if n > 0 {
			if _, writeErr := dstF.Write(buf[:n]); writeErr != nil {
				return fmt.Errorf("write %q: %w", dst, writeErr)
			}
			written += uint64(n)
			if progress != nil {
				progress(written)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("read %q: %w", src, readErr)
		}
	}
	return nil
}

func (Live) RemoveFile(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove_file %q: %w", path, err)
	}
	return nil
}

func (Live) RemoveTree(_ context.Context, path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove_tree %q: %w", path, err)
	}
	return nil
}

// IsCrossDevice reports whether err is the platform's cross-device rename
// failure, the signal the move planner uses to fall back to copy-and-unlink.
func IsCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return false
	}
	return isCrossDeviceErrno(linkErr.Err)
}
