package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/hellodict"
	"github.com/fwojciec/hellodict/bluemonday"
	"github.com/fwojciec/hellodict/corpus"
	"github.com/fwojciec/hellodict/engine"
	"github.com/fwojciec/hellodict/fs"
	"github.com/fwojciec/hellodict/goquery"
	"github.com/fwojciec/hellodict/html2text"
	"github.com/fwojciec/hellodict/htmltomarkdown"
	hdhttp "github.com/fwojciec/hellodict/http"
	hdslog "github.com/fwojciec/hellodict/slog"
	"github.com/fwojciec/hellodict/worker"
	"github.com/fwojciec/hellodict/zstd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When Dictionary is set the corpus
	// pipeline is not wired.
	Dictionary hellodict.Dictionary
	Stats      StatsService

	// closers run in reverse order by Close.
	closers []func() error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var first error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	m.closers = nil
	return first
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hellodict"),
		kong.Description("Look up words in the GNU Collaborative International Dictionary of English."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"default_corpus": hellodict.DefaultSource.URL},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'hellodict --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Source = cli.Source()
	if err := deps.Source.Validate(); err != nil {
		fmt.Fprintln(stderr, "Hint: set --integrity or HELLODICT_INTEGRITY for https corpora")
		return err
	}

	switch cli.Word.Format {
	case "markdown":
		deps.Converter = htmltomarkdown.NewConverter()
	case "text":
		deps.Converter = html2text.NewConverter()
	}

	deps.Dictionary = m.Dictionary
	deps.Stats = m.Stats
	if deps.Dictionary == nil {
		d, err := m.openDictionary(ctx, cli, deps.Source, stderr)
		if err != nil {
			return err
		}
		defer m.Close()
		deps.Dictionary = d
		deps.Stats = d
	}

	if cli.Verbose {
		deps.Dictionary = hdslog.NewLoggingDictionary(deps.Dictionary, newLogger(stderr))
	}

	return kongCtx.Run(deps)
}

// openDictionary wires fetch → decompress → parse → worker → facade for src.
func (m *Main) openDictionary(ctx context.Context, cli *CLI, src hellodict.Source, stderr io.Writer) (*engine.Dictionary, error) {
	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = newLogger(stderr)
	}

	var fetcher hellodict.Fetcher
	if fs.IsLocal(src.URL) {
		fetcher = fs.NewFetcher("")
	} else {
		fetcher = hdhttp.NewFetcher(
			hdhttp.WithTimeout(cli.Timeout),
			hdhttp.WithRetryDelays(hdhttp.DefaultRetryDelays()...),
		)
	}
	if cli.Verbose {
		fetcher = hdslog.NewLoggingFetcher(fetcher, logger)
	}

	dec, err := zstd.NewDecompressor()
	if err != nil {
		return nil, fmt.Errorf("failed to create decompressor: %w", err)
	}
	m.closers = append(m.closers, dec.Close)

	var loader hellodict.Loader = &corpus.Loader{
		Fetcher:      fetcher,
		Decompressor: dec,
	}
	if cli.Verbose {
		loader = hdslog.NewLoggingLoader(loader, logger)
	}

	transformer := goquery.NewTransformer(bluemonday.NewSanitizer())
	w := worker.New(loader, transformer, worker.WithLogger(logger))

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(runCtx)
	}()
	m.closers = append(m.closers, func() error {
		cancel()
		<-done
		return nil
	})

	registry := engine.NewRegistry(w, engine.WithTimeout(cli.Timeout))
	m.closers = append(m.closers, registry.Close)

	return registry.Get(src), nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
