/*
Package cli structures a command line tool as a [CommandSet] of [Command] values, each with its own [pflag] flags.

  - User-visible output goes to STDERR by default, through a [Printer] that can be redirected.
  - Flags are not interspersed with arguments, so everything after the first argument is passed through untouched.
  - Each command gets '-h' and '--help' flags, and prints a usage template built from [Command.Usage], its flags, and its sub-commands.

A tool is invoked in this form:

	CLI_NAME SUB-COMMAND... [FLAGS...] [ARGS...]

[CommandSet.Run] is the entrypoint for the top level [CommandSet].
A [UsageError] returned from a [Command] is printed along with the command's usage, and returned so the caller can pick an exit code.

[pflag]: https://github.com/spf13/pflag
*/
package cli
