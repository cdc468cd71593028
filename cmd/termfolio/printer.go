package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/arthur-debert/termfolio/pkg/termfolio/shell"
)

const clearScreen = "\033[H\033[2J"

// printer is a shell.Output that writes records straight to a terminal,
// coloured by severity.
type printer struct {
	w       io.Writer
	colored bool
	styles  map[shell.Severity]*color.Color
	prompt  *color.Color

	// skip is a record text to drop once, used to suppress the echo of a
	// line the user has just typed.
	skip string
}

func newPrinter(w io.Writer, colored bool) *printer {
	p := &printer{
		w:       w,
		colored: colored,
		styles: map[shell.Severity]*color.Color{
			shell.SeveritySuccess: color.New(color.FgWhite),
			shell.SeverityError:   color.New(color.FgRed),
			shell.SeverityWarning: color.New(color.FgYellow),
			shell.SeverityInfo:    color.New(color.FgCyan),
		},
		prompt: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range p.all() {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) all() []*color.Color {
	out := []*color.Color{p.prompt}
	for _, c := range p.styles {
		out = append(out, c)
	}
	return out
}

// Append implements shell.Output.
func (p *printer) Append(r shell.Record) {
	if p.skip != "" && r.Text == p.skip {
		p.skip = ""
		return
	}
	style, ok := p.styles[r.Severity]
	if !ok {
		fmt.Fprintln(p.w, r.Text)
		return
	}
	style.Fprintln(p.w, r.Text)
}

// Clear implements shell.Output.
func (p *printer) Clear() {
	if p.colored {
		fmt.Fprint(p.w, clearScreen)
	}
}

// showPrompt writes the prompt followed by any pending input.
func (p *printer) showPrompt(prompt, input string) {
	p.prompt.Fprint(p.w, prompt)
	fmt.Fprint(p.w, " ")
	if input != "" {
		fmt.Fprint(p.w, input)
	}
}
