package panel

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dshills/glance/internal/review"
	"github.com/dshills/glance/internal/selection"
)

// Panel is the dialog that shows the selected code beside the review. It
// implements review.Presenter by forwarding to the running program.
type Panel struct {
	program *tea.Program
}

func (p *Panel) DisplayText(text string) {
	p.program.Send(answerMsg{text: text})
}

func (p *Panel) DisplayError(text string) {
	p.program.Send(answerMsg{text: text, isError: true})
}

// Run opens the panel and blocks until the user closes it. Each send runs
// the review on a background goroutine; the panel stays responsive but
// accepts no second send until the first one returns.
func Run(ctx context.Context, sender review.Sender, sel selection.Selection, opts review.Options) error {
	p := &Panel{}
	in := review.NewInteraction(sender, sel, p, opts)

	send := func(question string) tea.Cmd {
		return func() tea.Msg {
			res := in.Run(ctx, question)
			return doneMsg{kind: res.Kind}
		}
	}

	p.program = tea.NewProgram(newModel(sel, opts.Mode, send), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.program.Run()
	return err
}
