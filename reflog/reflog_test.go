package reflog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHistory_ChainedCheckouts(t *testing.T) {
	log := `
9c346b78 HEAD@{0}: commit: fix typo
9c346b78 HEAD@{1}: checkout: moving from feature/board to feature/rake
e5f6a7b8 HEAD@{2}: checkout: moving from main to feature/board
d3e4f5a6 HEAD@{3}: checkout: moving from develop to main
`
	history := ExtractHistory(log)

	assert.Equal(t, []string{"feature/rake", "feature/board", "main", "develop"}, history)
}

func TestExtractHistory_SingleCheckout(t *testing.T) {
	history := ExtractHistory("abc123 HEAD@{0}: checkout: moving from main to feature/x")

	require.Len(t, history, 2)
	assert.Equal(t, "feature/x", history[0])
	assert.Equal(t, "main", history[1])

	got, ok := NthPrevious(history, 1)
	require.True(t, ok)
	assert.Equal(t, "main", got)
}

func TestExtractHistory_NoCheckouts(t *testing.T) {
	log := `
abc123 HEAD@{0}: commit: add feature
def456 HEAD@{1}: commit (initial): initial commit
`
	assert.Empty(t, ExtractHistory(log))
	assert.Empty(t, ExtractHistory(""))
}

func TestExtractHistory_MixedEntries(t *testing.T) {
	log := `
abc123 HEAD@{0}: commit: fix bug
def456 HEAD@{1}: pull: Fast-forward
abc789 HEAD@{2}: checkout: moving from develop to feature/test
fed012 HEAD@{3}: merge feature/other: Merge made by the 'ort' strategy.
bcd345 HEAD@{4}: checkout: moving from main to develop
cde678 HEAD@{5}: rebase (finish): returning to refs/heads/main
efa901 HEAD@{6}: checkout: moving from feature/old to main
`
	history := ExtractHistory(log)

	assert.Equal(t, []string{"feature/test", "develop", "main", "feature/old"}, history)
}

func TestExtractHistory_FirstMatchSeedsCurrentBranch(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&b, "%07x HEAD@{%d}: commit: change %d\n", i, i, i)
	}
	b.WriteString("aaaaaaa HEAD@{25}: checkout: moving from release/v2 to hotfix/crash\n")
	b.WriteString("bbbbbbb HEAD@{26}: checkout: moving from main to release/v2\n")

	history := ExtractHistory(b.String())

	require.Len(t, history, 3)
	assert.Equal(t, "hotfix/crash", history[0])
}

func TestExtractHistory_BranchNamesWithPunctuation(t *testing.T) {
	log := `
abc123 HEAD@{0}: checkout: moving from feature/fix_bug-123 to release-v2.0
def456 HEAD@{1}: checkout: moving from bugfix/issue#456 to feature/fix_bug-123
aaa111 HEAD@{2}: checkout: moving from feature/2024/12/24_fix to bugfix/issue#456
`
	history := ExtractHistory(log)

	assert.Equal(t, []string{
		"release-v2.0",
		"feature/fix_bug-123",
		"bugfix/issue#456",
		"feature/2024/12/24_fix",
	}, history)
}

func TestExtractHistory_KeepsRepeatedBranches(t *testing.T) {
	log := `
abc123 HEAD@{0}: checkout: moving from main to feature/a
def456 HEAD@{1}: checkout: moving from feature/a to main
abc789 HEAD@{2}: checkout: moving from main to feature/a
`
	history := ExtractHistory(log)

	assert.Equal(t, []string{"feature/a", "main", "feature/a", "main"}, history)
}

func TestExtractHistory_SkipsMarkerWithoutSeparator(t *testing.T) {
	log := "abc123 HEAD@{0}: checkout: moving from nowhere\n" +
		"def456 HEAD@{1}: checkout: moving from main to topic\n"

	assert.Equal(t, []string{"topic", "main"}, ExtractHistory(log))
}

func TestExtractHistory_HandlesCRLF(t *testing.T) {
	log := "abc123 HEAD@{0}: checkout: moving from main to topic\r\n" +
		"def456 HEAD@{1}: checkout: moving from dev to main\r\n"

	assert.Equal(t, []string{"topic", "main", "dev"}, ExtractHistory(log))
}

func TestExtractHistory_LengthIsTransitionsPlusOne(t *testing.T) {
	for k := 1; k <= 6; k++ {
		var b strings.Builder
		for i := 0; i < k; i++ {
			fmt.Fprintf(&b, "%07x HEAD@{%d}: checkout: moving from b%d to b%d\n", i, i, i+1, i)
			fmt.Fprintf(&b, "%07x HEAD@{%d}: commit: noise\n", i, i)
		}
		history := ExtractHistory(b.String())
		assert.Len(t, history, k+1, "transitions=%d", k)
		assert.Equal(t, "b0", history[0])
	}
}

func TestNthPrevious(t *testing.T) {
	history := []string{"current", "first", "second", "third"}

	for i, want := range history {
		got, ok := NthPrevious(history, i)
		require.True(t, ok, "n=%d", i)
		assert.Equal(t, want, got)
	}

	_, ok := NthPrevious(history, len(history))
	assert.False(t, ok)
	_, ok = NthPrevious(history, -1)
	assert.False(t, ok)
}

func TestNthPrevious_EmptyHistory(t *testing.T) {
	_, ok := NthPrevious(nil, 0)
	assert.False(t, ok)
	_, ok = NthPrevious(ExtractHistory(""), 1)
	assert.False(t, ok)
}
