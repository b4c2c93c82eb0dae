package selection

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Selection is a piece of code picked by the user, with the file it came
// from when known.
type Selection struct {
	Text string
	// File is empty for selections that did not come from a file.
	File string
	// StartLine and EndLine are 1-based and inclusive; zero when the whole
	// input was taken.
	StartLine int
	EndLine   int
}

// SelectedText implements review.Selector.
func (s Selection) SelectedText() string { return s.Text }

// Path returns the source file, used for path-based redaction and syntax
// highlighting.
func (s Selection) Path() string { return s.File }

// Label describes where the selection came from.
func (s Selection) Label() string {
	switch {
	case s.File == "":
		return "selection"
	case s.StartLine == 0:
		return s.File
	case s.StartLine == s.EndLine:
		return fmt.Sprintf("%s:%d", s.File, s.StartLine)
	default:
		return fmt.Sprintf("%s:%d-%d", s.File, s.StartLine, s.EndLine)
	}
}

// Static wraps text that is already in memory.
func Static(text string) Selection {
	return Selection{Text: text}
}

// FromReader reads the whole reader as the selection.
func FromReader(r io.Reader) (Selection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Selection{}, fmt.Errorf("reading selection: %w", err)
	}
	return Selection{Text: string(data)}, nil
}

// ErrBadRange is returned for malformed line ranges.
var ErrBadRange = errors.New("invalid line range")

// Spec is a parsed "path[:start[-end]]" argument.
type Spec struct {
	Path  string
	Start int
	End   int
}

// ParseSpec parses "path", "path:12" or "path:12-30". A colon followed by
// something that is not a range is treated as part of the path so that
// Windows drive letters keep working.
func ParseSpec(arg string) (Spec, error) {
	idx := strings.LastIndex(arg, ":")
	if idx <= 0 || idx == len(arg)-1 {
		return Spec{Path: arg}, nil
	}
	path, rng := arg[:idx], arg[idx+1:]
	if !isRange(rng) {
		return Spec{Path: arg}, nil
	}

	startStr, endStr, hasEnd := strings.Cut(rng, "-")
	start, err := strconv.Atoi(startStr)
	if err != nil || start < 1 {
		return Spec{}, fmt.Errorf("%w: %q", ErrBadRange, rng)
	}
	end := start
	if hasEnd {
		end, err = strconv.Atoi(endStr)
		if err != nil || end < start {
			return Spec{}, fmt.Errorf("%w: %q", ErrBadRange, rng)
		}
	}
	return Spec{Path: path, Start: start, End: end}, nil
}

func isRange(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}

// FromFile reads the lines named by spec. A range past the end of the file
// is clamped; a range that starts past the end yields an empty selection.
func FromFile(spec Spec) (Selection, error) {
	f, err := os.Open(spec.Path)
	if err != nil {
		return Selection{}, fmt.Errorf("opening %s: %w", spec.Path, err)
	}
	defer f.Close()

	if spec.Start == 0 {
		data, err := io.ReadAll(f)
		if err != nil {
			return Selection{}, fmt.Errorf("reading %s: %w", spec.Path, err)
		}
		return Selection{Text: string(data), File: spec.Path}, nil
	}

	var b strings.Builder
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line, last := 0, 0
	for sc.Scan() {
		line++
		if line < spec.Start {
			continue
		}
		if line > spec.End {
			break
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(sc.Text())
		last = line
	}
	if err := sc.Err(); err != nil {
		return Selection{}, fmt.Errorf("reading %s: %w", spec.Path, err)
	}
	if last == 0 {
		return Selection{File: spec.Path}, nil
	}
	return Selection{Text: b.String(), File: spec.Path, StartLine: spec.Start, EndLine: last}, nil
}
