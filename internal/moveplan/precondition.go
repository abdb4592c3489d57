package moveplan

import (
	"os"
	"path/filepath"
	"strings"
)

// CheckPreconditions enforces spec §4.7's preconditions: target must exist
// and be a directory, and must not be a descendant of source. source and
// target are returned canonicalized to absolute, cleaned paths.
func CheckPreconditions(source, target string) (absSource, absTarget string, err error) {
	absSource, err = filepath.Abs(source)
	if err != nil {
		return "", "", err
	}
	absTarget, err = filepath.Abs(target)
	if err != nil {
		return "", "", err
	}

	info, err := os.Stat(absTarget)
	if err != nil || !info.IsDir() {
		return "", "", &NonExistentTargetError{Path: absTarget}
	}

	if isDescendant(absTarget, absSource) {
		return "", "", &TargetIsDescendantError{Source: absSource, Target: absTarget}
	}

	return absSource, absTarget, nil
}

// isDescendant reports whether child lies under parent.
func isDescendant(child, parent string) bool {
	if child == parent {
		return true
	}
	withSep := parent
	if !strings.HasSuffix(withSep, string(filepath.Separator)) {
		withSep += string(filepath.Separator)
	}
	return strings.HasPrefix(child, withSep)
}
