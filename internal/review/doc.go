// Package review orchestrates a single code review: it reads the user's
// selection, validates it, builds the Gemini request, blocks on the sender
// and hands the outcome to a presenter.
//
// The host (terminal command, TUI panel or HTTP bridge) supplies a [Selector]
// and a [Presenter]; nothing here knows about any UI toolkit. Presentation
// differs only by [Mode]: inline mode insists on a question, modal mode does
// not.
//
// The instruction prompt is configurable. Named presets live in prompt.go and
// a custom prompt always wins over a preset.
package review
