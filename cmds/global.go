package cmds

import (
	"fmt"
	"os"
	"strings"
)

var GlobalExecutor = NewExecutor()

func init() {
	Define("-h", Func(func() {
		GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(0)
	}).Desc("print this usage").Alias("-help", "--help"))
}

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// ExecuteEnv runs the whitespace separated tokens of the environment variable key on the global executor.
func ExecuteEnv(key string) error {
	if err := GlobalExecutor.Execute(strings.Fields(os.Getenv(key))); err != nil {
		return fmt.Errorf("$%s: %w", key, err)
	}
	return nil
}

// Describe sets the usage text of a defined global command.
func Describe(name string, desc string) {
	command, ok := GlobalExecutor.commands[name]
	if !ok {
		panic(fmt.Errorf("no such command: %s", name))
	}
	command.Description = desc
}
