//go:build !windows

package effector

import (
	"errors"
	"syscall"
)

func isCrossDeviceErrno(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
