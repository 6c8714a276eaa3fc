//go:build linux || darwin || freebsd || openbsd || netbsd

package main

import (
	"github.com/zeebo/errs"
	"golang.org/x/sys/unix"
)

// allocate returns a zeroed buffer of size bytes and a function to release
// it. With mapped set the buffer is an anonymous private mapping so that the
// pages are not owned by the go heap.
func allocate(size int, mapped bool) ([]byte, func() error, error) {
	if !mapped {
		return make([]byte, size), func() error { return nil }, nil
	}

	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, errs.Wrap(err)
	}

	return buf, func() error { return errs.Wrap(unix.Munmap(buf)) }, nil
}
