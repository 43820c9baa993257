//go:build windows

package malloc

import "errors"

var errNotSupported = errors.New("malloc: page reservation not supported on windows")

func osreserve(size int) ([]byte, error) {
	return nil, errNotSupported
}

func osrelease(data []byte) error {
	return errNotSupported
}
