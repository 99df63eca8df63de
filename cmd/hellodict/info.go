package main

import "fmt"

// Run executes the info command. It waits for the corpus to load.
func (c *InfoCmd) Run(deps *Dependencies) error {
	stats, err := deps.Stats.Stats(deps.Ctx)
	state := deps.Dictionary.State()

	fmt.Fprintf(deps.Stdout, "source: %s\n", deps.Source.URL)
	if state.Settled() {
		fmt.Fprintf(deps.Stdout, "state: %s\n", state)
	} else {
		fmt.Fprintf(deps.Stdout, "state: %s (reloads on next query)\n", state)
	}
	if err != nil {
		reportError(deps, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "headwords: %d\n", stats.Headwords)
	fmt.Fprintf(deps.Stdout, "keys: %d\n", stats.Keys)
	fmt.Fprintf(deps.Stdout, "fingerprint: %016x\n", stats.Fingerprint)
	return nil
}
