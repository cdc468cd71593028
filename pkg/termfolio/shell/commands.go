package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/arthur-debert/termfolio/pkg/termfolio/vfs"
)

// Result is what a command hands back for display.
type Result struct {
	Output   string
	Severity Severity
}

type handler func(s *Session, args []string) *Result

// coreCommands is the closed set offered by completion and the
// unknown-command hint.
var coreCommands = []string{"help", "ls", "cd", "cat", "pwd", "clear", "whoami", "date", "echo", "tree"}

var handlers = map[string]handler{
	"help":   (*Session).cmdHelp,
	"ls":     (*Session).cmdLs,
	"cd":     (*Session).cmdCd,
	"cat":    (*Session).cmdCat,
	"pwd":    (*Session).cmdPwd,
	"clear":  (*Session).cmdClear,
	"whoami": (*Session).cmdWhoami,
	"date":   (*Session).cmdDate,
	"echo":   (*Session).cmdEcho,
	"tree":   (*Session).cmdTree,

	"history":  (*Session).cmdHistory,
	"matrix":   (*Session).cmdMatrix,
	"sudo":     (*Session).cmdSudo,
	"exit":     (*Session).cmdExit,
	"neofetch": (*Session).cmdNeofetch,
}

// CoreCommands returns the names of the core commands in help order.
func CoreCommands() []string {
	return append([]string(nil), coreCommands...)
}

func success(text string) *Result {
	return &Result{Output: text, Severity: SeveritySuccess}
}

func info(text string) *Result {
	return &Result{Output: text, Severity: SeverityInfo}
}

func failure(text string) *Result {
	return &Result{Output: text, Severity: SeverityError}
}

// pathFailure renders filesystem errors the way a shell would.
func (s *Session) pathFailure(err error) *Result {
	s.logger.Debug().Err(err).Str("cwd", s.cwd).Msg("filesystem lookup failed")
	var pathErr *vfs.PathError
	if errors.As(err, &pathErr) {
		return failure(pathErr.Message())
	}
	return failure(err.Error())
}

const helpText = `Available commands:
  help              show this help
  ls [-a|-l] [path] list directory contents
  cd [path]         change directory (~ is home)
  cat <file>        print a file
  pwd               print the working directory
  clear             clear the screen
  whoami            print the current user
  date              print the current date and time
  echo <text...>    print text
  tree              show the directory tree
Use up/down to browse history and tab to complete commands.`

func (s *Session) cmdHelp(args []string) *Result {
	return info(helpText)
}

func entryIcon(e vfs.Entry) string {
	switch {
	case e.Kind == vfs.KindDirectory:
		return "📁"
	case e.Kind == vfs.KindExecutable:
		return "⚡"
	case e.Hidden:
		return "👻"
	default:
		return "📄"
	}
}

func (s *Session) cmdLs(args []string) *Result {
	var (
		path       string
		showHidden bool
		long       bool
	)
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && len(arg) > 1 {
			if strings.HasPrefix(arg, "--") {
				return failure(fmt.Sprintf("ls: unrecognized option '%s'", arg))
			}
			for _, flag := range arg[1:] {
				switch flag {
				case 'a':
					showHidden = true
				case 'l':
					long = true
				default:
					return failure(fmt.Sprintf("ls: invalid option -- '%c'", flag))
				}
			}
			continue
		}
		if path == "" {
			path = arg
		}
	}

	entries, err := s.fs.List(path, s.cwd, showHidden)
	if err != nil {
		return s.pathFailure(err)
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if long {
			size := "-"
			if e.Kind != vfs.KindDirectory {
				size = humanize.Bytes(uint64(e.Size))
			}
			lines = append(lines, fmt.Sprintf("%s %-10s %8s  %s", entryIcon(e), e.Kind, size, e.Name))
			continue
		}
		lines = append(lines, entryIcon(e)+" "+e.Name)
	}
	return success(strings.Join(lines, "\n"))
}

func (s *Session) cmdCd(args []string) *Result {
	requested := ""
	if len(args) > 0 {
		requested = args[0]
	}
	next, err := s.fs.ChangeDirectory(requested, s.cwd)
	if err != nil {
		return s.pathFailure(err)
	}
	s.cwd = next
	return nil
}

func (s *Session) cmdCat(args []string) *Result {
	if len(args) == 0 {
		return failure("cat: " + ErrMissingOperand.Error())
	}
	content, err := s.fs.ReadFile(args[0], s.cwd)
	if err != nil {
		return s.pathFailure(err)
	}
	return success(strings.TrimRight(content, "\n"))
}

func (s *Session) cmdPwd(args []string) *Result {
	return success(s.cwd)
}

func (s *Session) cmdClear(args []string) *Result {
	s.out.Clear()
	return nil
}

func (s *Session) cmdWhoami(args []string) *Result {
	return success(s.user)
}

func (s *Session) cmdDate(args []string) *Result {
	return success(s.now().Format(time.UnixDate))
}

func (s *Session) cmdEcho(args []string) *Result {
	return success(strings.Join(args, " "))
}

func (s *Session) cmdTree(args []string) *Result {
	header := s.cwd + "/"
	if s.cwd == "/" {
		header = "/"
	}
	body := strings.TrimRight(s.fs.RenderTree(s.cwd, ""), "\n")
	if body == "" {
		return success(header)
	}
	return success(header + "\n" + body)
}

func (s *Session) cmdHistory(args []string) *Result {
	lines := make([]string, len(s.history))
	for i, line := range s.history {
		lines[i] = fmt.Sprintf("%5d  %s", i+1, line)
	}
	return info(strings.Join(lines, "\n"))
}

func (s *Session) cmdMatrix(args []string) *Result {
	return info("Wake up, " + s.user + "...\nThe Matrix has you.\nFollow the white rabbit.")
}

func (s *Session) cmdSudo(args []string) *Result {
	return &Result{
		Output:   s.user + " is not in the sudoers file. This incident will be reported.",
		Severity: SeverityWarning,
	}
}

func (s *Session) cmdExit(args []string) *Result {
	s.exited = true
	return info("logout")
}

func (s *Session) cmdNeofetch(args []string) *Result {
	var files, dirs int
	err := fs.WalkDir(s.fs.FS(), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		switch {
		case p == ".":
		case d.IsDir():
			dirs++
		default:
			files++
		}
		return nil
	})
	counts := fmt.Sprintf("Files: %s in %s directories", humanize.Comma(int64(files)), humanize.Comma(int64(dirs)))
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to count files")
		counts = "Files: unknown"
	}

	lines := []string{
		s.user + "@" + s.host,
		strings.Repeat("-", len(s.user)+len(s.host)+1),
		"OS: PortfolioOS (virtual)",
		"Shell: termfolio",
		"Uptime: " + strings.TrimSpace(humanize.RelTime(s.started, s.now(), "", "")),
		counts,
		"Home: " + s.fs.Home(),
	}
	return info(strings.Join(lines, "\n"))
}
