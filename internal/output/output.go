package output

import (
	"fmt"
	"io"

	"github.com/mattn/go-isatty"
)

// Presenter shows review outcomes. Every implementation satisfies
// review.Presenter; Err reports the first write failure, since the display
// methods themselves cannot return one.
type Presenter interface {
	DisplayText(text string)
	DisplayError(text string)
	Err() error
}

// Formats lists the accepted format names.
var Formats = []string{"text", "raw", "json"}

// GetPresenter returns a presenter for the specified format. Review text goes
// to stdout; for console formats, errors go to stderr. The text format renders
// markdown only when stdout is a terminal and is otherwise the same as raw.
func GetPresenter(format string, stdout, stderr io.Writer) (Presenter, error) {
	switch format {
	case "text", "":
		return NewConsole(stdout, stderr, isTerminal(stdout)), nil
	case "raw":
		return NewConsole(stdout, stderr, false), nil
	case "json":
		return NewJSON(stdout), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) write(p []byte) {
	if ew.err != nil {
		return
	}
	_, ew.err = ew.w.Write(p)
}
