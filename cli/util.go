package cli

// MustGet is used with a [pflag.FlagSet] getter to panic if the flag is not defined, or is not the right type.
// Both are programming errors, so this keeps flag lookups inside a [CommandFunc] short.
//
// [pflag.FlagSet]: https://pkg.go.dev/github.com/spf13/pflag#FlagSet
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
