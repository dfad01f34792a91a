package cli

import (
	"errors"
	"fmt"
	flag "github.com/spf13/pflag"
	"slices"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	HelpPatterns      = []string{"--help", "-h", "help"} // HelpPatterns trigger the output of usage information when given as the first argument to a [CommandSet].
)

// CommandFunc executes a [Command] once its flags are parsed.
// Positional arguments are available with [flag.FlagSet.Args].
type CommandFunc = func(flags *flag.FlagSet, printer *Printer) error

// Command is a named sub-command of a [CommandSet].
type Command struct {
	set        *CommandSet
	flags      *flag.FlagSet
	exec       CommandFunc
	key        string
	shortUsage string
	usage      string
	aliases    []string
}

// Does specifies the [CommandFunc] that is executed by this [Command].
func (c *Command) Does(commandFunc CommandFunc) *Command {
	if commandFunc != nil {
		c.exec = commandFunc
	}
	return c
}

// Usage sets the invocation hint shown in the command's help text.
// The name of the [CommandSet] is prepended to it.
func (c *Command) Usage(format string, args ...any) *Command {
	c.usage = fmt.Sprintf(format, args...)
	return c
}

// Flags returns the [flag.FlagSet] for this [Command].
func (c *Command) Flags() *flag.FlagSet {
	return c.flags
}

// Key returns the normalized name of the command.
func (c *Command) Key() string {
	return c.key
}

// PrintUsage writes the help text of this command to the set's [Printer].
func (c *Command) PrintUsage() {
	var buf strings.Builder
	buf.WriteString(c.shortUsage)
	buf.WriteString("\n\nUSAGE:\n")
	buf.WriteString(c.set.name)
	buf.WriteString(" ")
	if len(c.usage) > 0 {
		buf.WriteString(c.usage)
	} else {
		buf.WriteString(c.key)
	}
	buf.WriteString("\n")
	if len(c.aliases) > 0 {
		buf.WriteString("\nALIASES: ")
		buf.WriteString(strings.Join(c.aliases, ", "))
		buf.WriteString("\n")
	}
	buf.WriteString("\nFLAGS\n")
	buf.WriteString(c.flags.FlagUsages())
	c.set.Printer().Print(buf.String())
}

func (c *Command) run(args []string) error {
	if err := c.flags.Parse(args); err != nil {
		return NewUsageError("%w", err)
	}
	if Bool(c.flags, "help") {
		c.PrintUsage()
		return nil
	}
	if c.exec == nil {
		c.PrintUsage()
		return nil
	}
	return c.exec(c.flags, c.set.Printer())
}

// CommandSet is the root of a CLI, and dispatches to its commands by name or alias.
type CommandSet struct {
	name     string
	summary  string
	commands map[string]*Command
	aliases  map[string]*Command
	printer  *Printer
}

// NewCommandSet creates a [CommandSet] for the executable with the given name.
// The summary is printed at the top of the set's usage information.
func NewCommandSet(name, summary string) *CommandSet {
	return &CommandSet{name: name, summary: summary, printer: NewPrinter()}
}

func cleanseKey(key string) string {
	return strings.Join(strings.Fields(strings.ToLower(key)), "")
}

// AddCommand adds a sub-command to this [CommandSet].
// Keys and aliases are matched case-insensitively.
func (s *CommandSet) AddCommand(key, shortUsage string, aliases ...string) *Command {
	key = cleanseKey(key)
	fs := flag.NewFlagSet(key, flag.ContinueOnError)
	fs.BoolP("help", "h", false, "Prints this usage information")
	fs.SetInterspersed(false)
	fs.SetOutput(s.Printer())
	fs.Usage = func() {}
	cmd := &Command{set: s, flags: fs, key: key, shortUsage: shortUsage}
	if s.commands == nil {
		s.commands = map[string]*Command{}
	}
	s.commands[key] = cmd
	for _, alias := range aliases {
		alias = cleanseKey(alias)
		if len(alias) == 0 {
			continue
		}
		if s.aliases == nil {
			s.aliases = map[string]*Command{}
		}
		s.aliases[alias] = cmd
		cmd.aliases = append(cmd.aliases, alias)
	}
	slices.Sort(cmd.aliases)
	return cmd
}

// Printer returns the [Printer] shared by this set and its commands.
func (s *CommandSet) Printer() *Printer {
	if s.printer == nil {
		s.printer = NewPrinter()
	}
	return s.printer
}

// Lookup finds a command by key or alias.
func (s *CommandSet) Lookup(key string) (*Command, bool) {
	key = cleanseKey(key)
	if cmd, ok := s.commands[key]; ok {
		return cmd, true
	}
	cmd, ok := s.aliases[key]
	return cmd, ok
}

// Exec runs the command named by the first argument with the remaining arguments.
// A [UsageError] returned from a command causes its usage to be printed after the error.
func (s *CommandSet) Exec(args []string) error {
	if len(args) == 0 {
		s.PrintUsage()
		return fmt.Errorf("%w: no arguments", ErrUnknownCommand)
	}
	if slices.Contains(HelpPatterns, args[0]) {
		s.PrintUsage()
		return nil
	}
	cmd, ok := s.Lookup(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	err := cmd.run(args[1:])
	if err != nil && errors.Is(err, new(UsageError)) {
		attribute(err, s.name+" "+cmd.key)
		s.Printer().Println(err)
		s.Printer().Println()
		cmd.PrintUsage()
	}
	return err
}

// PrintUsage writes the summary and the list of commands to the set's [Printer].
func (s *CommandSet) PrintUsage() {
	var buf strings.Builder
	if len(s.summary) > 0 {
		buf.WriteString(s.summary)
		buf.WriteString("\n\n")
	}
	buf.WriteString("USAGE:\n")
	buf.WriteString(s.name)
	buf.WriteString(" COMMAND [FLAGS...] [ARGS...]\n\nCOMMANDS\n")
	buf.WriteString(s.CommandUsages())
	s.Printer().Print(buf.String())
}

// CommandUsages lists each command with its aliases and short usage, sorted by key.
func (s *CommandSet) CommandUsages() string {
	keys := make([]string, 0, len(s.commands))
	for key := range s.commands {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	names := make([]string, len(keys))
	var maxLen int
	for i, key := range keys {
		names[i] = strings.Join(append([]string{key}, s.commands[key].aliases...), ", ")
		maxLen = max(maxLen, len(names[i]))
	}
	var buf strings.Builder
	for i, key := range keys {
		buf.WriteString(fmt.Sprintf("  %-*s\t%s\n", maxLen, names[i], s.commands[key].shortUsage))
	}
	return buf.String()
}
