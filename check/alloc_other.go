//go:build !(linux || darwin || freebsd || openbsd || netbsd)

package main

import "github.com/zeebo/errs"

func allocate(size int, mapped bool) ([]byte, func() error, error) {
	if mapped {
		return nil, nil, errs.New("anonymous mappings are not supported on this platform")
	}
	return make([]byte, size), func() error { return nil }, nil
}
