package output

import (
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
)

const wrapWidth = 100

var (
	errorColor = color.New(color.FgRed, color.Bold)
	dimColor   = color.New(color.FgHiBlack)
)

// Console writes review text to out, rendered as markdown when render is
// set, and failures to errOut in red.
type Console struct {
	out    *errWriter
	errOut *errWriter
	render bool
}

// NewConsole creates a Console presenter.
func NewConsole(out, errOut io.Writer, render bool) *Console {
	return &Console{
		out:    &errWriter{w: out},
		errOut: &errWriter{w: errOut},
		render: render,
	}
}

func (c *Console) DisplayText(text string) {
	if c.render {
		if rendered, ok := renderMarkdown(text); ok {
			c.out.printf("%s", rendered)
			return
		}
	}
	c.out.printf("%s", text)
	if !strings.HasSuffix(text, "\n") {
		c.out.printf("\n")
	}
}

func (c *Console) DisplayError(text string) {
	if c.errOut.err != nil {
		return
	}
	_, c.errOut.err = errorColor.Fprint(c.errOut.w, "Error: ")
	c.errOut.printf("%s\n", text)
}

// Note writes a dimmed informational line to the error stream.
func (c *Console) Note(text string) {
	if c.errOut.err != nil {
		return
	}
	_, c.errOut.err = dimColor.Fprintln(c.errOut.w, text)
}

func (c *Console) Err() error {
	if c.out.err != nil {
		return c.out.err
	}
	return c.errOut.err
}

// renderMarkdown formats model output for the terminal. The style follows the
// terminal background. The result is reflowed and padded, so it is only used
// for terminal output.
func renderMarkdown(text string) (string, bool) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return "", false
	}
	out, err := r.Render(text)
	if err != nil {
		return "", false
	}
	return out, true
}
