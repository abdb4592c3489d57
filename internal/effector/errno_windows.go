//go:build windows

package effector

import "golang.org/x/sys/windows"

func isCrossDeviceErrno(err error) bool {
	return err == windows.ERROR_NOT_SAME_DEVICE
}
