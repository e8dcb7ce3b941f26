//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package locks

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/pylaunch/modes"
)

func TestAcquire(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".pylaunch.lock")
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		acquire Acquire,
	) {
		unlock, err := acquire(t.Context(), path)
		if err != nil {
			t.Fatal(err)
		}

		if _, err := tryLock(path); !errors.Is(err, ErrBusy) {
			t.Fatalf("got %v", err)
		}

		acquired := make(chan Unlock)
		go func() {
			unlock2, err := acquire(t.Context(), path)
			if err != nil {
				panic(err)
			}
			acquired <- unlock2
		}()

		select {
		case <-acquired:
			t.Fatal("should block")
		case <-time.After(100 * time.Millisecond):
		}

		if err := unlock(); err != nil {
			t.Fatal(err)
		}
		// idempotent
		if err := unlock(); err != nil {
			t.Fatal(err)
		}

		select {
		case unlock2 := <-acquired:
			if err := unlock2(); err != nil {
				t.Fatal(err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("not acquired")
		}
	})
}

func TestAcquireUnavailable(t *testing.T) {
	// a directory cannot be opened for writing
	path := t.TempDir()
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		acquire Acquire,
	) {
		if _, err := acquire(t.Context(), path); !errors.Is(err, ErrUnavailable) {
			t.Fatalf("got %v", err)
		}
	})
}
