package main

import (
	"fmt"

	"github.com/fwojciec/hellodict"
)

// entrySeparator separates entries in the output.
const entrySeparator = "\n"

// Run executes the word command.
func (c *WordCmd) Run(deps *Dependencies) error {
	entries, err := deps.Dictionary.FindWord(deps.Ctx, c.Word)
	if err != nil {
		reportError(deps, err)
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(deps.Stdout, "Unable to find %s.\n", c.Word)
		return nil
	}

	for i, entry := range entries {
		if i > 0 {
			fmt.Fprint(deps.Stdout, entrySeparator)
		}
		out := entry
		if deps.Converter != nil {
			out, err = deps.Converter.Convert(entry)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", hellodict.ErrorMessage(err))
				continue
			}
		}
		fmt.Fprintln(deps.Stdout, out)
	}
	return nil
}

// reportError prints a user-facing message for a failed query.
func reportError(deps *Dependencies, err error) {
	if hellodict.ErrorCode(err) == hellodict.EUNAVAILABLE {
		fmt.Fprintln(deps.Stderr, "Unable to load dictionary.")
		return
	}
	fmt.Fprintf(deps.Stderr, "error: %s\n", hellodict.ErrorMessage(err))
}
