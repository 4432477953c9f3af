package parsing_test

import (
	"path/filepath"
	"testing"

	"github.com/konstantinfoerster/card-stacks-go/internal/cards"
	"github.com/konstantinfoerster/card-stacks-go/internal/parsing"
	"github.com/konstantinfoerster/card-stacks-go/internal/stacks"
	"github.com/konstantinfoerster/card-stacks-go/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatKey(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{path: "deck.arena", want: "arena"},
		{path: "/tmp/collection.csv", want: "csv"},
		{path: "deck.v2.arena", want: "arena"},
		{path: "arena", want: "arena"},
		{path: "/tmp/arena", want: "arena"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, parsing.FormatKey(tc.path))
		})
	}
}

func TestLoadStackStampsSource(t *testing.T) {
	path := test.NewTmpFile(t, "deck.arena", "Deck\n2 Lightning Bolt\n\nSideboard\n")

	stack, err := parsing.NewDefaultRegistry().LoadStack(path)

	require.NoError(t, err)
	require.Equal(t, 2, stack.Len())
	for _, c := range stack.Cards() {
		assert.Equal(t, path, c.Source())
	}
}

func TestLoadStackSourceDoesNotSplitBuckets(t *testing.T) {
	path := test.NewTmpFile(t, "deck.arena", "3 Lightning Bolt\n")

	stack, err := parsing.NewDefaultRegistry().LoadStack(path)

	require.NoError(t, err)
	assert.Equal(t, 3, stack.Count(cards.MustNewCard("Lightning Bolt")))
}

func TestLoadStackUnsupportedFormat(t *testing.T) {
	path := test.NewTmpFile(t, "deck.toml", "ignored")

	_, err := parsing.NewDefaultRegistry().LoadStack(path)

	var uErr *parsing.UnsupportedFormatError
	require.ErrorAs(t, err, &uErr)
	assert.Equal(t, "toml", uErr.Format)
}

func TestLoadStackMissingFile(t *testing.T) {
	_, err := parsing.NewDefaultRegistry().LoadStack("does-not-exist.arena")

	assert.Error(t, err)
}

func TestLoadStackWrapsParseErrors(t *testing.T) {
	path := test.NewTmpFile(t, "deck.arena", "not a card line\n")

	_, err := parsing.NewDefaultRegistry().LoadStack(path)

	var fErr *parsing.FormatError
	require.ErrorAs(t, err, &fErr)
	assert.Contains(t, err.Error(), path)
}

func TestWriteStackRoundTrip(t *testing.T) {
	dir := test.NewTmpDirWithCleanup(t)
	path := filepath.Join(dir, "out.arena")
	registry := parsing.NewDefaultRegistry()

	stack := stacks.From(
		cards.MustNewCard("Lightning Bolt"),
		cards.MustNewCard("Lightning Bolt"),
		cards.MustNewCard("Counterspell"),
	)
	require.NoError(t, registry.WriteStack(stack, path))

	loaded, err := registry.LoadStack(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Count(cards.MustNewCard("Lightning Bolt")))
	assert.Equal(t, 1, loaded.Count(cards.MustNewCard("Counterspell")))
}

func TestWriteStackUnsupportedFormat(t *testing.T) {
	dir := test.NewTmpDirWithCleanup(t)

	err := parsing.NewDefaultRegistry().WriteStack(stacks.New(), filepath.Join(dir, "out.toml"))

	var uErr *parsing.UnsupportedFormatError
	require.ErrorAs(t, err, &uErr)
}

func TestRegistryCustomFormat(t *testing.T) {
	registry := parsing.NewRegistry()
	registry.RegisterReader("arena", parsing.ArenaReader{})

	_, err := registry.Reader("arena")
	require.NoError(t, err)

	_, err = registry.Writer("arena")
	var uErr *parsing.UnsupportedFormatError
	require.ErrorAs(t, err, &uErr)
}
