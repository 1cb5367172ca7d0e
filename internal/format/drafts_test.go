package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaia/checkme/internal/format"
)

func TestSplitDraftsDropsBlankLines(t *testing.T) {
	drafts := format.SplitDrafts("Item1\n\nItem2\n  \nItem3")
	require.Len(t, drafts, 3)
	assert.Equal(t, "Item1", drafts[0].Name)
	assert.Equal(t, "Item2", drafts[1].Name)
	assert.Equal(t, "Item3", drafts[2].Name)
}

func TestSplitDraftsTrimsNames(t *testing.T) {
	drafts := format.SplitDrafts("  Leite  \n\tPão\t")
	require.Len(t, drafts, 2)
	assert.Equal(t, "Leite", drafts[0].Name)
	assert.Equal(t, "Pão", drafts[1].Name)
}

func TestSplitDraftsBlankInputYieldsOneEmptyDraft(t *testing.T) {
	for _, input := range []string{"", "   ", "\n \n\t\n"} {
		drafts := format.SplitDrafts(input)
		require.Len(t, drafts, 1, "input %q", input)
		assert.Empty(t, drafts[0].Name)
		assert.NotEmpty(t, drafts[0].Key)
	}
}

func TestSplitDraftsKeysAreUnique(t *testing.T) {
	drafts := format.SplitDrafts("a\nb\nc")
	seen := make(map[string]bool)
	for _, draft := range drafts {
		require.NotEmpty(t, draft.Key)
		assert.False(t, seen[draft.Key])
		seen[draft.Key] = true
	}
}
