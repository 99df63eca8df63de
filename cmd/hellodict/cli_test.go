package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/hellodict"
	main "github.com/fwojciec/hellodict/cmd/hellodict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"default_corpus": hellodict.DefaultSource.URL},
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"word", "search", "info"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_Source(t *testing.T) {
	t.Parallel()

	t.Run("default corpus carries the compiled-in integrity", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{Corpus: hellodict.DefaultSource.URL}

		assert.Equal(t, hellodict.DefaultSource, cli.Source())
	})

	t.Run("explicit integrity overrides the default", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{Corpus: "https://example.com/gcide.json.zst", Integrity: "sha256-abc"}

		assert.Equal(t, hellodict.Source{URL: "https://example.com/gcide.json.zst", Integrity: "sha256-abc"}, cli.Source())
	})
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range []string{"word", "search", "info"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "Flags:")
}

func TestMain_Run_NoCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_RejectsHTTPSCorpusWithoutIntegrity(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--corpus", "https://example.com/gcide.json.zst", "word", "word"}, &bytes.Buffer{}, stderr)

	require.Error(t, err)
	assert.Equal(t, hellodict.EINVALID, hellodict.ErrorCode(err))
	assert.Contains(t, stderr.String(), "HELLODICT_INTEGRITY")
}
