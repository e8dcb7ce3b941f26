package execs

import (
	"context"
	"slices"
	"sync"
)

// Fake records commands instead of running them. Handle decides the outcome of each command,
// a nil Handle makes every command exit 0.
type Fake struct {
	mu       sync.Mutex
	Commands []Command
	Handle   func(cmd Command) (int, error)
}

func (f *Fake) Run() Run {
	return func(ctx context.Context, cmd Command) (int, error) {
		f.mu.Lock()
		cmd.Args = slices.Clone(cmd.Args)
		f.Commands = append(f.Commands, cmd)
		handle := f.Handle
		f.mu.Unlock()
		if handle == nil {
			return 0, nil
		}
		return handle(cmd)
	}
}

// Args returns the argument vectors of recorded commands whose Name is name.
func (f *Fake) Args(name string) (ret [][]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, cmd := range f.Commands {
		if cmd.Name == name {
			ret = append(ret, cmd.Args)
		}
	}
	return
}
