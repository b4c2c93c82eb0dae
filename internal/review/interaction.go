package review

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/dshills/glance/internal/gemini"
	"github.com/dshills/glance/internal/redact"
)

// Messages shown for local validation failures.
const (
	MsgNoSelection   = "Please select some code."
	MsgEmptyQuestion = "Please enter a question."
	MsgBusy          = "A review is already in progress."
)

// Selector supplies the code the user selected. An empty string means there
// is no selection.
type Selector interface {
	SelectedText() string
}

// Presenter shows the outcome of a review to the user.
type Presenter interface {
	DisplayText(text string)
	DisplayError(text string)
}

// Sender performs one blocking review call.
//
//go:generate mockgen -destination=../mocks/mock_sender.go -package=mocks . Sender
type Sender interface {
	Review(ctx context.Context, payload []byte) gemini.Result
}

// pathSelector is implemented by selections that came from a file.
type pathSelector interface {
	Path() string
}

// State is the interaction's position in the Idle -> InFlight -> Idle cycle.
type State int32

const (
	StateIdle State = iota
	StateInFlight
)

func (s State) String() string {
	if s == StateInFlight {
		return "in_flight"
	}
	return "idle"
}

// Options configures an Interaction.
type Options struct {
	// Prompt is the instruction placed in front of the code.
	Prompt string
	Mode   Mode
	// Redact replaces secret-shaped strings in the code before sending.
	Redact bool
	// RedactPaths blanks the whole selection when its file matches.
	RedactPaths []string
	Logger      *slog.Logger
}

// Interaction wires a selection through the request builder and sender to a
// presenter. It holds no state between runs other than whether one is in
// flight.
type Interaction struct {
	sender    Sender
	selector  Selector
	presenter Presenter
	opts      Options
	logger    *slog.Logger
	state     atomic.Int32
}

// NewInteraction creates an Interaction in the Idle state.
func NewInteraction(sender Sender, selector Selector, presenter Presenter, opts Options) *Interaction {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Interaction{
		sender:    sender,
		selector:  selector,
		presenter: presenter,
		opts:      opts,
		logger:    logger,
	}
}

// State reports whether a review is currently in flight.
func (in *Interaction) State() State {
	return State(in.state.Load())
}

// Mode returns the presentation mode.
func (in *Interaction) Mode() Mode { return in.opts.Mode }

// Run performs one review. It blocks until the sender returns, shows the
// outcome on the presenter and returns it. Local validation failures never
// reach the sender.
func (in *Interaction) Run(ctx context.Context, question string) gemini.Result {
	if !in.state.CompareAndSwap(int32(StateIdle), int32(StateInFlight)) {
		return in.fail(gemini.Result{Kind: gemini.KindBusy, Text: MsgBusy})
	}
	defer in.state.Store(int32(StateIdle))

	code := in.selector.SelectedText()
	if strings.TrimSpace(code) == "" {
		return in.fail(gemini.Result{Kind: gemini.KindNoSelection, Text: MsgNoSelection})
	}
	if in.opts.Mode.RequiresQuestion() && strings.TrimSpace(question) == "" {
		return in.fail(gemini.Result{Kind: gemini.KindEmptyQuestion, Text: MsgEmptyQuestion})
	}

	if in.opts.Redact {
		code = in.redact(code)
	}

	payload, err := gemini.BuildRequest(in.opts.Prompt, code, question)
	if err != nil {
		// code was checked above; marshaling a string cannot fail.
		return in.fail(gemini.Result{Kind: gemini.KindNoSelection, Text: MsgNoSelection})
	}

	in.logger.Debug("sending review", "mode", in.opts.Mode, "payload_bytes", len(payload))
	res := in.sender.Review(ctx, payload)
	if !res.OK() {
		return in.fail(res)
	}
	in.presenter.DisplayText(res.Text)
	return res
}

func (in *Interaction) redact(code string) string {
	if ps, ok := in.selector.(pathSelector); ok && redact.ShouldRedactPath(ps.Path(), in.opts.RedactPaths) {
		in.logger.Info("selection redacted by path policy", "path", ps.Path())
		return redact.Content(code, ps.Path(), in.opts.RedactPaths)
	}
	out, hits := redact.Scan(code)
	if len(hits) > 0 {
		in.logger.Info("secrets redacted from selection", "rules", hits)
	}
	return out
}

func (in *Interaction) fail(res gemini.Result) gemini.Result {
	in.logger.Info("review not completed", "kind", res.Kind, "message", res.Text)
	in.presenter.DisplayError(res.Text)
	return res
}
