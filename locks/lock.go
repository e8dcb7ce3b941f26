package locks

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/pylaunch/logs"
)

var (
	ErrBusy        = errors.New("lock held by another process")
	ErrUnavailable = errors.New("lock file unavailable")
)

type Unlock func() error

// Acquire takes an exclusive advisory lock on path, creating the file if needed.
// When another process holds it, Acquire logs and blocks until it is released.
type Acquire func(ctx context.Context, path string) (Unlock, error)

func (Module) Acquire(
	logger logs.Logger,
) Acquire {
	return func(ctx context.Context, path string) (Unlock, error) {
		unlock, err := tryLock(path)
		if errors.Is(err, ErrBusy) {
			logger.InfoContext(ctx, "waiting for another launcher",
				"lock", path,
			)
			unlock, err = lock(path)
		}
		if err != nil {
			return nil, fmt.Errorf("lock %s: %w", path, err)
		}
		return unlock, nil
	}
}
