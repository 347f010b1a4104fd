//go:build linux

package deco

import (
	"bufio"
	"errors"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// freeMemory reports the currently reclaimable memory in bytes:
// MemFree plus Buffers plus Cached from /proc/meminfo.
func freeMemory() (uint64, error) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var kb uint64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "MemFree:", "Buffers:", "Cached:":
			n, perr := strconv.ParseUint(fields[1], 10, 64)
			if perr != nil {
				return 0, perr
			}
			kb += n
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return kb * 1024, nil
}

// setAddressSpaceLimit lowers the soft RLIMIT_AS to limit bytes,
// returning the previous limit for restoration.
func setAddressSpaceLimit(limit uint64) (rlimit, error) {
	var cur unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_AS, &cur); err != nil {
		return rlimit{}, err
	}
	next := unix.Rlimit{Cur: limit, Max: cur.Max}
	if err := unix.Setrlimit(unix.RLIMIT_AS, &next); err != nil {
		return rlimit{}, err
	}
	return rlimit{cur: cur.Cur, max: cur.Max}, nil
}

func restoreAddressSpaceLimit(prev rlimit) {
	restored := unix.Rlimit{Cur: prev.cur, Max: prev.max}
	_ = unix.Setrlimit(unix.RLIMIT_AS, &restored)
}

func isOutOfMemory(err error) bool {
	return errors.Is(err, unix.ENOMEM)
}
