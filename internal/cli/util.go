package cli

import (
	"errors"
	"fmt"
	flag "github.com/spf13/pflag"
)

// Bool returns the value of a bool flag.
// It panics if the command didn't declare the flag, which is a programming error rather than a usage error.
func Bool(flags *flag.FlagSet, name string) bool {
	return mustFlag(flags.GetBool, name)
}

// StringSlice returns the value of a string slice flag, and panics like [Bool].
func StringSlice(flags *flag.FlagSet, name string) []string {
	return mustFlag(flags.GetStringSlice, name)
}

func mustFlag[T any](get func(string) (T, error), name string) T {
	val, err := get(name)
	if err != nil {
		panic(fmt.Errorf("flag --%s: %w", name, err))
	}
	return val
}

var ErrArgs = errors.New("invalid arguments")

// RequireArgs returns a [UsageError] if fewer than minArgs arguments are given.
func RequireArgs(args []string, minArgs int) error {
	if len(args) < minArgs {
		return NewUsageError("%w: got %d, need at least %d", ErrArgs, len(args), minArgs)
	}
	return nil
}

// NoArgs returns a [UsageError] if any arguments are given.
func NoArgs(args []string) error {
	if len(args) > 0 {
		return NewUsageError("%w: unexpected %q", ErrArgs, args)
	}
	return nil
}
