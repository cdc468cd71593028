package shell

import (
	"sort"
	"strings"
	"unicode"
)

// Completion is the outcome of a tab press. Exactly one of Line and
// Suggestions is set.
type Completion struct {
	// Line is the replacement input when a single command matched.
	Line string
	// Suggestions lists every matching command when there were several.
	Suggestions []string
}

// Applied reports whether the completion replaced the input.
func (c Completion) Applied() bool {
	return c.Line != ""
}

// CompleteTab completes the command name at the start of line against the
// core commands. Arguments are never completed. The second result is false
// when nothing matched or the line already has arguments.
func (s *Session) CompleteTab(line string) (Completion, bool) {
	partial := strings.TrimLeftFunc(line, unicode.IsSpace)
	if strings.ContainsFunc(partial, unicode.IsSpace) {
		return Completion{}, false
	}
	partial = strings.ToLower(partial)

	var matches []string
	for _, name := range coreCommands {
		if strings.HasPrefix(name, partial) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)

	switch len(matches) {
	case 0:
		return Completion{}, false
	case 1:
		s.input = matches[0] + " "
		return Completion{Line: s.input}, true
	default:
		return Completion{Suggestions: matches}, true
	}
}
