package cli

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"io"
	"os"
)

// Printer writes user-visible output, and styles it when the output is a terminal.
type Printer struct {
	out    io.Writer
	styled bool
}

// NewPrinter creates a [Printer] that writes to [os.Stderr].
func NewPrinter() *Printer {
	p := new(Printer)
	p.Redirect(os.Stderr)
	return p
}

// Redirect changes the output of the [Printer].
// Styling is enabled only if writer is a terminal.
func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
	p.styled = false
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		p.styled = term.IsTerminal(int(f.Fd()))
	}
}

// Styled reports whether styles are applied by [Printer.Style].
func (p *Printer) Styled() bool {
	return p.styled
}

// Style renders text with style if the output is a terminal, or returns it unchanged otherwise.
func (p *Printer) Style(style lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return style.Render(text)
}

func (p *Printer) Write(data []byte) (int, error) {
	return p.out.Write(data)
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}
