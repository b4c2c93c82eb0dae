package panel

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// highlightLines returns source split into lines with ANSI colors applied per
// token. Unknown languages come back as plain lines.
func highlightLines(path, source string) []string {
	plain := strings.Split(strings.TrimRight(source, "\n"), "\n")

	lexer := lexerFor(path, source)
	if lexer == nil {
		return plain
	}
	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return plain
	}

	style := styles.Get("dracula")
	if style == nil {
		style = styles.Fallback
	}

	lines := make([]string, 0, len(plain))
	var current strings.Builder
	for _, token := range iterator.Tokens() {
		// Tokens may span lines; split them so each line is styled on its own.
		for i, part := range strings.Split(token.Value, "\n") {
			if i > 0 {
				lines = append(lines, current.String())
				current.Reset()
			}
			if part == "" {
				continue
			}
			if c := tokenColor(style, token.Type); c != "" {
				part = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(part)
			}
			current.WriteString(part)
		}
	}
	lines = append(lines, current.String())

	if len(lines) > len(plain) {
		lines = lines[:len(plain)]
	}
	for len(lines) < len(plain) {
		lines = append(lines, "")
	}
	return lines
}

func lexerFor(path, source string) chroma.Lexer {
	var lexer chroma.Lexer
	if path != "" {
		lexer = lexers.Match(filepath.Base(path))
	}
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		return nil
	}
	return chroma.Coalesce(lexer)
}

func tokenColor(style *chroma.Style, tt chroma.TokenType) string {
	entry := style.Get(tt)
	if entry.Colour.IsSet() {
		return entry.Colour.String()
	}
	return ""
}
