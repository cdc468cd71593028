package shell

// NavigateHistory moves through submitted lines and returns the new input.
// A negative direction goes to older entries, a positive one to newer
// entries. Moving past the newest entry restores the line that was being
// typed before browsing started.
func (s *Session) NavigateHistory(direction int) string {
	if len(s.history) == 0 || direction == 0 {
		return s.input
	}

	if s.historyCursor == len(s.history) {
		s.draft = s.input
	}

	if direction < 0 {
		s.historyCursor--
	} else {
		s.historyCursor++
	}

	switch {
	case s.historyCursor < 0:
		s.historyCursor = 0
		s.input = s.history[0]
	case s.historyCursor >= len(s.history):
		s.historyCursor = len(s.history)
		s.input = s.draft
	default:
		s.input = s.history[s.historyCursor]
	}
	return s.input
}

// HistoryCursor returns the browsing position; len(History()) means the
// live input line is shown.
func (s *Session) HistoryCursor() int {
	return s.historyCursor
}
