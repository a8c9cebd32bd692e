package cli

import (
	"fmt"
	flag "github.com/spf13/pflag"
	"os"
)

func ExampleNewCommandSet() {
	// The string used should be the name used to invoke your CLI.
	tlc := NewCommandSet("my-cli")
	// Output goes to STDERR by default, this is redirected for the example.
	tlc.Printer().Redirect(os.Stdout)

	sub := tlc.AddCommand("sub-command", "Shows an example of a sub-command", "sub")
	sub.Flags().Bool("do-something", false, "Makes the sub-command do something")

	// Parent command references are prepended, so this is shown as 'my-cli sub-command [FLAGS]'.
	sub.Usage("sub-command [FLAGS]")

	sub.Does(func(flags *flag.FlagSet, out *Printer) error {
		if MustGet(flags.GetBool("do-something")) {
			out.Println("sub-command ran")
		}
		return nil
	})

	// Sub-commands are matched case-insensitive, and os.Args[1:] should be passed to Run.
	if err := tlc.Run([]string{"suB-ComMAnd", "--do-something"}); err != nil {
		fmt.Println("Something bad happened!")
	}
	fmt.Println()

	// Help flags are set up for each command.
	_ = tlc.Run([]string{"sub", "-h"})

	// Output:
	// sub-command ran
	//
	// Shows an example of a sub-command
	//
	// USAGE:
	// my-cli sub-command [FLAGS]
	//
	// FLAGS
	//       --do-something   Makes the sub-command do something
	//   -h, --help           Prints this usage information
}

func ExampleNewUsageError() {
	tlc := NewCommandSet("parent")
	tlc.Printer().Redirect(os.Stdout)
	cmd := tlc.AddCommand("command", "test command")
	cmd.Does(func(flags *flag.FlagSet, out *Printer) error {
		return NewUsageError("test usage error")
	})
	// Error not handled for brevity
	_ = tlc.Run([]string{"command"})

	// Output:
	// usage error: test usage error
	//
	// test command
	//
	// FLAGS
	//   -h, --help   Prints this usage information
}
