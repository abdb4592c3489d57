package moveplan

import (
	"io/fs"
	"os"
	"path/filepath"
)

// CollectSource scans source (a file or a directory tree) into a map of
// absolute path to size. Unlike the candidate index's tolerant walk, any
// entry that is neither a regular file nor a directory is fatal here: the
// move planner needs an exact, complete accounting of what it's about to
// move, per spec §4.7 step 1.
func CollectSource(source string) (files map[string]uint64, isFile bool, err error) {
	info, err := os.Lstat(source)
	if err != nil {
		return nil, false, err
	}

	if info.Mode().IsRegular() {
		return map[string]uint64{source: uint64(info.Size())}, true, nil
	}
	if !info.IsDir() {
		return nil, false, &NonFileEntryError{Path: source}
	}

	files = make(map[string]uint64)
	walkErr := filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return &NonFileEntryError{Path: path}
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		files[path] = uint64(fi.Size())
		return nil
	})
	if walkErr != nil {
		return nil, false, walkErr
	}
	return files, false, nil
}
