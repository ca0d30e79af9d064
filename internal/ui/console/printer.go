// Package console prints human-readable, color-coded status lines.
package console

import (
	"fmt"
	"io"
)

type Printer struct {
	w     io.Writer
	theme Theme
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, theme: DefaultTheme(w)}
}

// Writer is the underlying output, for callers that print extra content
// between status lines.
func (p *Printer) Writer() io.Writer {
	return p.w
}

func (p *Printer) Warn(label, detail string) {
	p.line(p.theme.Warning.Render(label), detail)
}

func (p *Printer) Success(label, detail string) {
	p.line(p.theme.Success.Render(label), detail)
}

func (p *Printer) Failure(label, detail string) {
	p.line(p.theme.Failure.Render(label), detail)
}

func (p *Printer) Info(label, detail string) {
	p.line(p.theme.Info.Render(label), detail)
}

func (p *Printer) line(label, detail string) {
	if detail == "" {
		fmt.Fprintln(p.w, label)
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", label, detail)
}
