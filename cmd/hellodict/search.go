package main

import (
	"fmt"
	"strings"
)

// DefaultSearchLimit is the number of matches displayed by default.
const DefaultSearchLimit = 1000

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	matches, err := deps.Dictionary.PatternMatch(deps.Ctx, c.Pattern)
	if err != nil {
		reportError(deps, err)
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintf(deps.Stdout, "There is no word matching %s.\n", c.Pattern)
		return nil
	}

	limit := c.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	total := len(matches)
	if total > limit {
		fmt.Fprintf(deps.Stdout, "Displaying the first %d out of %d matches:\n", limit, total)
		matches = matches[:limit]
	} else {
		fmt.Fprintf(deps.Stdout, "There are %d matches:\n", total)
	}

	fmt.Fprintln(deps.Stdout, strings.Join(matches, " "))
	if total > limit {
		fmt.Fprintln(deps.Stdout, "...")
	}
	return nil
}
