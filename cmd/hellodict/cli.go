package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/hellodict"
	"github.com/fwojciec/hellodict/worker"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Source     hellodict.Source
	Dictionary hellodict.Dictionary
	Stats      StatsService

	// Converter renders entries for output. Nil prints entry HTML as is.
	Converter hellodict.Converter
}

// StatsService reports counters of the loaded corpus.
type StatsService interface {
	Stats(ctx context.Context) (worker.Stats, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Corpus    string        `env:"HELLODICT_CORPUS" default:"${default_corpus}" help:"Corpus URL or local path"`
	Integrity string        `env:"HELLODICT_INTEGRITY" help:"Subresource integrity of the corpus (required for https)"`
	Timeout   time.Duration `default:"2m" help:"Timeout for loading the corpus"`
	Verbose   bool          `short:"v" help:"Log fetch, load and query timings to stderr"`

	Word   WordCmd   `cmd:"" help:"Look up the entries of a word"`
	Search SearchCmd `cmd:"" help:"List words matching a pattern ('?' one character, '*' any run)"`
	Info   InfoCmd   `cmd:"" help:"Show corpus load state and counters"`
}

// Source returns the corpus source selected by the flags. The compiled-in
// integrity applies when the default corpus is used without an override.
func (c *CLI) Source() hellodict.Source {
	if c.Corpus == hellodict.DefaultSource.URL && c.Integrity == "" {
		return hellodict.DefaultSource
	}
	return hellodict.Source{URL: c.Corpus, Integrity: c.Integrity}
}

// WordCmd is the "word" subcommand.
type WordCmd struct {
	Word   string `arg:"" help:"Word to look up"`
	Format string `short:"f" enum:"html,markdown,text" default:"text" help:"Output format (html, markdown, text)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Pattern string `arg:"" help:"Wildcard pattern"`
	Limit   int    `short:"n" default:"1000" help:"Maximum number of matches to display"`
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct{}
