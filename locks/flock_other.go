//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package locks

func tryLock(path string) (Unlock, error) {
	return func() error {
		return nil
	}, nil
}

func lock(path string) (Unlock, error) {
	return tryLock(path)
}
