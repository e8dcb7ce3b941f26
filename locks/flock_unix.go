//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package locks

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

func tryLock(path string) (Unlock, error) {
	return flock(path, unix.LOCK_EX|unix.LOCK_NB)
}

func lock(path string) (Unlock, error) {
	return flock(path, unix.LOCK_EX)
}

func flock(path string, how int) (Unlock, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	for {
		err = unix.Flock(int(f.Fd()), how)
		if !errors.Is(err, unix.EINTR) {
			break
		}
	}
	if err != nil {
		f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, ErrBusy
		}
		return nil, err
	}
	return sync.OnceValue(func() error {
		// closing the descriptor releases the lock
		return f.Close()
	}), nil
}
