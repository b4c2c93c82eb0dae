package review

import (
	"fmt"
	"strings"
)

// Mode selects how the review is presented to the user.
type Mode int

const (
	// ModeModal shows the result on its own once the request returns. The
	// question is optional.
	ModeModal Mode = iota
	// ModeInline shows the answer in a panel beside the code and requires a
	// question.
	ModeInline
)

func (m Mode) String() string {
	switch m {
	case ModeInline:
		return "inline"
	default:
		return "modal"
	}
}

// RequiresQuestion reports whether the mode refuses an empty question.
func (m Mode) RequiresQuestion() bool { return m == ModeInline }

// ParseMode converts a configuration string to a Mode. Empty means modal.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "modal":
		return ModeModal, nil
	case "inline", "panel":
		return ModeInline, nil
	default:
		return ModeModal, fmt.Errorf("unknown mode: %s (want modal or inline)", s)
	}
}
