package cli

import (
	flag "github.com/spf13/pflag"
)

const FlagWithHeight = "with-height"

// FlagSetWithHeight returns the flag wrapping query output with the store height.
func FlagSetWithHeight() *flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Bool(FlagWithHeight, false, "Wrap the output with the height the store was read at")
	return fs
}
