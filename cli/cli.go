package cli

import (
	"errors"
	"fmt"
	flag "github.com/spf13/pflag"
	"regexp"
	"slices"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	HelpPatterns      = []string{"--help", "-h"} // HelpPatterns is a slice of flags that print usage information when passed to [CommandSet.Run].

	keyCleansePattern = regexp.MustCompile(`\s`)
)

// CommandFunc is a function that may be executed within a [Command].
// Flags have already been parsed when it's called.
type CommandFunc = func(flags *flag.FlagSet, printer *Printer) error

// Command is an executable function in a CLI.
// It should be linked to a [CommandSet] to establish a tree of commands available to the user.
type Command struct {
	CommandSet
	flags      *flag.FlagSet
	exec       CommandFunc
	key        string
	parent     string
	shortUsage string
	aliases    []string
}

func cleanseKey(key string) string {
	return keyCleansePattern.ReplaceAllString(strings.ToLower(key), "")
}

func newCommand(key, parent, shortUsage string, printer *Printer) *Command {
	key = cleanseKey(key)
	fs := flag.NewFlagSet(key, flag.ContinueOnError)
	fs.BoolP("help", "h", false, "Prints this usage information")
	fs.SetInterspersed(false)
	cmd := &Command{flags: fs, key: key, parent: parent, shortUsage: shortUsage}
	cmd.CommandSet.printer = printer
	if len(parent) > 0 {
		cmd.CommandSet.parent = parent + " " + key
	} else {
		cmd.CommandSet.parent = key
	}
	cmd.Usage("").Does(func(flags *flag.FlagSet, _ *Printer) error {
		flags.Usage()
		return nil
	})
	return cmd
}

// Does specifies the [CommandFunc] that should be executed by this [Command].
// A nil commandFunc is ignored, leaving the default behavior of printing usage.
func (c *Command) Does(commandFunc CommandFunc) *Command {
	if commandFunc == nil {
		return c
	}
	c.exec = commandFunc
	return c
}

// Parent retrieves the parent [Command] name.
func (c *Command) Parent() string {
	return c.parent
}

// CommandPath returns the reference chain for this [Command].
func (c *Command) CommandPath() string {
	return c.CommandSet.parent
}

// Flags returns the [flag.FlagSet] for this [Command].
func (c *Command) Flags() *flag.FlagSet {
	return c.flags
}

// Usage sets the invocation hint shown when usage is printed, like "sub-command [FLAGS] FILE".
// The parent command chain is prepended to it.
//
// The short description, flag usages, and sub-command usages are included along with it.
func (c *Command) Usage(format string, args ...any) *Command {
	text := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	if len(c.parent) > 0 && len(text) > 0 {
		text = c.parent + " " + text
	}
	c.flags.Usage = func() {
		var buf strings.Builder
		buf.WriteString(c.shortUsage + "\n")
		if len(text) > 0 {
			buf.WriteString("\nUSAGE:\n" + text + "\n")
		}
		buf.WriteString("\nFLAGS\n")
		buf.WriteString(c.flags.FlagUsages())
		if len(c.commands) > 0 {
			buf.WriteString("\nCOMMANDS\n")
			buf.WriteString(c.CommandUsages())
		}
		c.Printer().Print(buf.String())
	}
	return c
}

// Exec executes the command with given arguments, parsing flags.
// If the first argument names a sub-command, then that is executed instead.
//
// Flag parsing failures and any [UsageError] returned from the [CommandFunc] are printed along with usage information, and returned.
func (c *Command) Exec(args []string) error {
	if err := c.CommandSet.Exec(args); !errors.Is(err, ErrUnknownCommand) {
		return err
	}
	if err := c.flags.Parse(args); err != nil {
		return c.failUsage(&UsageError{wrapped: err})
	}
	if MustGet(c.flags.GetBool("help")) {
		c.flags.Usage()
		return nil
	}
	if err := c.exec(c.flags, c.Printer()); err != nil {
		if errors.Is(err, &UsageError{}) {
			return c.failUsage(err)
		}
		return err
	}
	return nil
}

func (c *Command) failUsage(err error) error {
	c.Printer().Println(err)
	c.Printer().Println()
	c.flags.Usage()
	return err
}

// CommandSet is a group of [Command].
type CommandSet struct {
	commands map[string]*Command
	aliases  map[string]*Command
	printer  *Printer
	parent   string
}

// NewCommandSet is used to set up a top level [CommandSet] as the root of a CLI's command structure.
//
// The parent(s) passed to this function are used to populate sub-command usage information.
// So they should only contain the commands used to invoke this [CommandSet], usually just the name of the tool.
func NewCommandSet(parent ...string) *CommandSet {
	return &CommandSet{printer: NewPrinter(), parent: strings.Join(parent, " ")}
}

// Parent retrieves the parent [CommandSet] name.
func (s *CommandSet) Parent() string {
	return s.parent
}

// AddCommand adds a sub-command to this [CommandSet].
// The key parameter will be cleansed to remove spaces, and normalize to lower-case.
// Aliases may be added as a way to support shorter variants of the same [Command].
func (s *CommandSet) AddCommand(key, shortUsage string, aliases ...string) *Command {
	key = cleanseKey(key)
	cmd := newCommand(key, s.parent, shortUsage, s.Printer())
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

// Printer returns the [Printer] shared by this [CommandSet] and its commands.
func (s *CommandSet) Printer() *Printer {
	if s.printer == nil {
		s.printer = NewPrinter()
	}
	return s.printer
}

// Exec executes the sub-command named by the first argument, passing it the rest.
// An error wrapping [ErrUnknownCommand] is returned if there is no such sub-command.
func (s *CommandSet) Exec(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no arguments", ErrUnknownCommand)
	}
	key := strings.ToLower(args[0])
	cmd, ok := s.commands[key]
	if !ok {
		cmd, ok = s.aliases[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
		}
	}
	return cmd.Exec(args[1:])
}

// Run is the entrypoint for a top level [CommandSet], and should be passed os.Args[1:].
//
// Usage information is printed if the first argument is one of [HelpPatterns].
// A missing or unknown sub-command is printed with usage information, and returned as a [UsageError] wrapping [ErrUnknownCommand].
func (s *CommandSet) Run(args []string) error {
	if len(args) > 0 && slices.Contains(HelpPatterns, args[0]) {
		s.PrintUsage()
		return nil
	}
	err := s.Exec(args)
	if errors.Is(err, ErrUnknownCommand) {
		err = &UsageError{wrapped: err}
		s.Printer().Println(err)
		s.Printer().Println()
		s.PrintUsage()
	}
	return err
}

// PrintUsage prints how to invoke this [CommandSet], and the usage of each sub-command.
func (s *CommandSet) PrintUsage() {
	s.Printer().Printf("USAGE:\n%s COMMAND [FLAGS...] [ARGS...]\n\nCOMMANDS\n%s", s.parent, s.CommandUsages())
}

// CommandUsages returns a string including the usage information for sub-commands in this [CommandSet].
//
// The sub-command keys will be sorted alphabetically before output.
func (s *CommandSet) CommandUsages() string {
	var (
		buf    strings.Builder
		keys   = make([]string, 0, len(s.commands))
		labels = make(map[string]string, len(s.commands))
		maxLen int
	)
	for key, cmd := range s.commands {
		keys = append(keys, key)
		labels[key] = strings.Join(append([]string{key}, cmd.aliases...), ", ")
		maxLen = max(maxLen, len(labels[key]))
	}
	slices.Sort(keys)
	fmtStr := fmt.Sprintf("  %%-%ds\t%%s\n", maxLen)
	for _, key := range keys {
		buf.WriteString(fmt.Sprintf(fmtStr, labels[key], s.commands[key].shortUsage))
	}
	return buf.String()
}
