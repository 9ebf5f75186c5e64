// Package reflog turns git checkout log text into a branch-visit history.
package reflog

import "strings"

const (
	transitionMarker   = "moving from "
	transitionSplitter = " to "
)

// ExtractHistory returns the visited branches, current branch first. The
// destination of the first transition line is the current branch; every
// transition line then contributes the branch it moved away from.
func ExtractHistory(text string) []string {
	var history []string
	seeded := false
	for _, line := range strings.Split(text, "\n") {
		from, to, ok := parseTransition(strings.TrimSuffix(line, "\r"))
		if !ok {
			continue
		}
		if !seeded {
			history = append(history, to)
			seeded = true
		}
		history = append(history, from)
	}
	return history
}

// NthPrevious returns the branch n checkouts back. n == 0 is the current branch.
func NthPrevious(history []string, n int) (string, bool) {
	if n < 0 || n >= len(history) {
		return "", false
	}
	return history[n], true
}

func parseTransition(line string) (string, string, bool) {
	_, rest, ok := strings.Cut(line, transitionMarker)
	if !ok {
		return "", "", false
	}
	return strings.Cut(rest, transitionSplitter)
}
