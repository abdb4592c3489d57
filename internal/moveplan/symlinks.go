package moveplan

import (
	"io/fs"
	"os"
	"path/filepath"
)

// CollectSymlinks walks each symlink-farm root and returns every symlink
// whose resolved target lies in sourceFiles, as link -> current_target.
// Per original_source's collect_symlinks, every symlink in the roots is
// visited; here only those pointing into the source set are kept.
func CollectSymlinks(roots []string, sourceFiles map[string]uint64) (map[string]string, error) {
	out := make(map[string]string)

	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type()&fs.ModeSymlink == 0 {
				return nil
			}

			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			if !filepath.IsAbs(target) {
				target = filepath.Join(filepath.Dir(path), target)
			}

			if _, ok := sourceFiles[target]; ok {
				out[path] = target
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
