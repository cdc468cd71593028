package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/termfolio/pkg/termfolio/shell"
)

// Line-mode stand-ins for the arrow and tab keys.
const (
	gestureUp   = ":up"
	gestureDown = ":down"
	gestureTab  = ":tab"
)

const banner = "Welcome to termfolio. Type 'help' to get started."

func newShellCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Long: `Start an interactive session on standard input.

Besides shell commands, three lines drive the prompt the way keys would:
  :up              recall the previous history entry
  :down            recall the next history entry
  :tab <partial>   complete a command name
An empty line runs whatever is pending at the prompt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys, err := a.filesystem()
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout(), a.cfg.Color)
			s := a.newSession(fsys, p)
			return runREPL(cmd.InOrStdin(), p, s)
		},
	}
}

// runREPL reads lines from in until EOF or until the session exits.
func runREPL(in io.Reader, p *printer, s *shell.Session) error {
	p.Append(shell.Record{Text: banner, Severity: shell.SeverityInfo})

	scanner := bufio.NewScanner(in)
	for !s.Exited() {
		p.showPrompt(s.Prompt(), s.Input())
		if !scanner.Scan() {
			fmt.Fprintln(p.w)
			return scanner.Err()
		}
		handleLine(p, s, scanner.Text())
	}
	return nil
}

func handleLine(p *printer, s *shell.Session, raw string) {
	line := strings.TrimSpace(raw)

	switch {
	case line == gestureUp:
		s.NavigateHistory(-1)
		return
	case line == gestureDown:
		s.NavigateHistory(+1)
		return
	case line == gestureTab || strings.HasPrefix(line, gestureTab+" "):
		partial := strings.TrimSpace(strings.TrimPrefix(line, gestureTab))
		s.SetInput(partial)
		if comp, ok := s.CompleteTab(partial); ok && !comp.Applied() {
			p.Append(shell.Record{Text: strings.Join(comp.Suggestions, "  "), Severity: shell.SeverityInfo})
		}
		return
	case line == "":
		line = strings.TrimSpace(s.Input())
		if line == "" {
			return
		}
	}

	p.skip = s.Prompt() + " " + line
	s.Execute(line)
	p.skip = ""
}
