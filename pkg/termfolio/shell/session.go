// Package shell implements the command interpreter of the portfolio terminal:
// parsing, dispatch, history recall and command-name completion on top of a
// read-only vfs.Filesystem.
package shell

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/termfolio/pkg/termfolio/vfs"
)

// Identity used by a session unless WithUser or WithHost says otherwise.
const (
	// DefaultUser is the name shown in the prompt and by whoami.
	DefaultUser = "alex"
	// DefaultHost is the machine name shown in the prompt.
	DefaultHost = "portfolio"
)

// Session holds the state of one terminal session. It is not safe for
// concurrent use; hosts call it from a single event loop.
type Session struct {
	fs     *vfs.Filesystem
	out    Output
	logger zerolog.Logger
	now    func() time.Time

	user string
	host string

	cwd           string
	history       []string
	historyCursor int
	input         string
	draft         string

	started time.Time
	exited  bool
}

// Option configures a Session.
type Option func(*Session)

// WithUser sets the user name shown in the prompt and by whoami.
func WithUser(user string) Option {
	return func(s *Session) {
		if user != "" {
			s.user = user
		}
	}
}

// WithHost sets the host name shown in the prompt.
func WithHost(host string) Option {
	return func(s *Session) {
		if host != "" {
			s.host = host
		}
	}
}

// WithLogger sets the logger used for command tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithClock replaces time.Now, mostly for tests of date and neofetch.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSession starts a session in the filesystem's home directory writing to out.
func NewSession(fsys *vfs.Filesystem, out Output, opts ...Option) *Session {
	s := &Session{
		fs:     fsys,
		out:    out,
		logger: zerolog.Nop(),
		now:    time.Now,
		user:   DefaultUser,
		host:   DefaultHost,
		cwd:    fsys.Home(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.started = s.now()
	return s
}

// CurrentPath returns the absolute working directory.
func (s *Session) CurrentPath() string {
	return s.cwd
}

// History returns a copy of the submitted lines, oldest first.
func (s *Session) History() []string {
	return append([]string(nil), s.history...)
}

// Input returns the line currently shown at the prompt.
func (s *Session) Input() string {
	return s.input
}

// SetInput records what the user has typed so far.
func (s *Session) SetInput(line string) {
	s.input = line
}

// Exited reports whether the exit command has been run.
func (s *Session) Exited() bool {
	return s.exited
}

// Prompt returns "user@host:path$" with the home prefix shown as "~".
func (s *Session) Prompt() string {
	return s.user + "@" + s.host + ":" + s.displayPath() + "$"
}

func (s *Session) displayPath() string {
	home := s.fs.Home()
	switch {
	case s.cwd == home:
		return "~"
	case home != "/" && strings.HasPrefix(s.cwd, home+"/"):
		return "~" + s.cwd[len(home):]
	default:
		return s.cwd
	}
}

// Execute runs one submitted line: it records history, echoes the line with
// the current prompt, dispatches it and appends any output. Blank lines are
// ignored entirely.
func (s *Session) Execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	s.history = append(s.history, line)
	s.historyCursor = len(s.history)

	s.out.Append(Record{Text: s.Prompt() + " " + line, Severity: SeverityInfo})

	if res := s.Dispatch(Parse(line)); res != nil && res.Output != "" {
		s.out.Append(Record{Text: res.Output, Severity: res.Severity})
	}

	s.input = ""
	s.draft = ""
}

// Dispatch runs a parsed command against the session and returns its
// result, or nil when the command produces no output.
func (s *Session) Dispatch(cmd Command) *Result {
	handler, ok := handlers[cmd.Name]
	if !ok {
		err := &UnknownCommandError{Name: cmd.Name}
		s.logger.Info().Str("command", cmd.Name).Msg("unknown command")
		return &Result{Output: err.Message(), Severity: SeverityError}
	}

	res := handler(s, cmd.Args)

	event := s.logger.Debug().
		Str("command", cmd.Name).
		Int("args", len(cmd.Args)).
		Str("cwd", s.cwd)
	if res != nil {
		event = event.Str("severity", string(res.Severity))
	}
	event.Msg("dispatched command")
	return res
}
