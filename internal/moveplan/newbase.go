package moveplan

import (
	"path/filepath"
	"strings"

	"github.com/torrentreconcile/xseed/internal/clientadapter"
)

// CalculateNewBasePath implements spec §4.7's calculate_new_base_path: the
// new base_path a torrent should report after its files land under target.
func CalculateNewBasePath(source string, sourceIsFile bool, target string, torrent clientadapter.ClientTorrent) (string, error) {
	if sourceIsFile {
		return target, nil
	}

	if isEffectivelySingleFile(torrent) {
		remainder, err := stripPrefix(torrent.BasePath, source)
		if err != nil {
			return "", err
		}
		base := filepath.Base(source)
		if base == "" || base == "/" || base == "." {
			return "", &NoFileNameError{Path: source}
		}
		return filepath.Join(target, base, remainder), nil
	}

	original := filepath.Join(torrent.BasePath, torrentName(torrent))
	parentOfSource := filepath.Dir(source)
	suffix, err := stripPrefix(original, parentOfSource)
	if err != nil {
		return "", err
	}
	if suffix == "" || suffix == "." {
		return "", &NoParentError{Path: original}
	}

	joined := filepath.Join(target, suffix)
	parent := filepath.Dir(joined)
	if parent == "" || parent == "." {
		return "", &NoParentError{Path: joined}
	}
	return parent, nil
}

// isEffectivelySingleFile reports whether torrent has exactly one file
// whose relative path has exactly one component (no directory nesting).
func isEffectivelySingleFile(torrent clientadapter.ClientTorrent) bool {
	if len(torrent.Files) != 1 {
		return false
	}
	for rel := range torrent.Files {
		return !strings.Contains(filepath.ToSlash(rel), "/")
	}
	return false
}

// torrentName recovers the leaf directory name a multi-file torrent's
// base_path was joined with. ClientTorrent doesn't carry this separately
// from Name, which is what the client reports for both single- and
// multi-file torrents, so it is used directly.
func torrentName(torrent clientadapter.ClientTorrent) string {
	return torrent.Name
}

// stripPrefix removes prefix from full, component-wise (both are
// canonicalized with filepath.Clean first). Returns NotAPrefixError if
// prefix is not a path-prefix of full.
func stripPrefix(full, prefix string) (string, error) {
	full = filepath.Clean(full)
	prefix = filepath.Clean(prefix)

	if full == prefix {
		return "", nil
	}

	withSep := prefix
	if !strings.HasSuffix(withSep, string(filepath.Separator)) {
		withSep += string(filepath.Separator)
	}
	if !strings.HasPrefix(full, withSep) {
		return "", &NotAPrefixError{Prefix: prefix, Full: full}
	}
	return strings.TrimPrefix(full, withSep), nil
}
