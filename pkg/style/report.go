package style

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Renderer writes report lines, styling them only when the destination is a
// terminal so piped output stays plain.
type Renderer struct {
	Out   io.Writer
	Err   io.Writer
	color bool
}

// NewRenderer builds a renderer for the process's stdout and stderr.
func NewRenderer() *Renderer {
	return &Renderer{
		Out:   os.Stdout,
		Err:   os.Stderr,
		color: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// NewPlainRenderer builds an uncolored renderer for arbitrary writers.
func NewPlainRenderer(out, errOut io.Writer) *Renderer {
	return &Renderer{Out: out, Err: errOut}
}

func (r *Renderer) style(s string, st interface{ Render(...string) string }) string {
	if !r.color {
		return s
	}
	return st.Render(s)
}

// Line writes one plain report line to stdout.
func (r *Renderer) Line(format string, args ...interface{}) {
	fmt.Fprintf(r.Out, format+"\n", args...)
}

// Good writes a success-styled line to stdout.
func (r *Renderer) Good(format string, args ...interface{}) {
	fmt.Fprintln(r.Out, r.style(fmt.Sprintf(format, args...), SuccessStyle))
}

// Muted writes a de-emphasized line to stdout.
func (r *Renderer) Muted(format string, args ...interface{}) {
	fmt.Fprintln(r.Out, r.style(fmt.Sprintf(format, args...), MutedStyle))
}

// Warn writes a warning-styled line to stderr.
func (r *Renderer) Warn(format string, args ...interface{}) {
	fmt.Fprintln(r.Err, r.style(fmt.Sprintf(format, args...), WarningStyle))
}

// Bad writes an error-styled line to stderr.
func (r *Renderer) Bad(format string, args ...interface{}) {
	fmt.Fprintln(r.Err, r.style(fmt.Sprintf(format, args...), ErrorStyle))
}
