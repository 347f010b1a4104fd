//go:build !linux

package deco

import "errors"

var errUnsupported = errors.New("memory limiting is only supported on linux")

func freeMemory() (uint64, error) {
	return 0, errUnsupported
}

func setAddressSpaceLimit(uint64) (rlimit, error) {
	return rlimit{}, errUnsupported
}

func restoreAddressSpaceLimit(rlimit) {}

func isOutOfMemory(error) bool {
	return false
}
