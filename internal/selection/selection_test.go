package selection

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		arg     string
		want    Spec
		wantErr bool
	}{
		{"main.go", Spec{Path: "main.go"}, false},
		{"main.go:12", Spec{Path: "main.go", Start: 12, End: 12}, false},
		{"src/App.java:3-9", Spec{Path: "src/App.java", Start: 3, End: 9}, false},
		{`C:\src\App.java`, Spec{Path: `C:\src\App.java`}, false},
		{`C:\src\App.java:4-5`, Spec{Path: `C:\src\App.java`, Start: 4, End: 5}, false},
		{"weird:name.go", Spec{Path: "weird:name.go"}, false},
		{"trailing:", Spec{Path: "trailing:"}, false},
		{"main.go:9-3", Spec{}, true},
		{"main.go:0", Spec{}, true},
		{"main.go:-4", Spec{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := ParseSpec(tt.arg)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrBadRange), "err = %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Example.java")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFromFile(t *testing.T) {
	path := writeFile(t, "line1\nline2\nline3\nline4\n")

	sel, err := FromFile(Spec{Path: path, Start: 2, End: 3})
	require.NoError(t, err)
	assert.Equal(t, "line2\nline3", sel.SelectedText())
	assert.Equal(t, path, sel.Path())
	assert.Equal(t, path+":2-3", sel.Label())

	sel, err = FromFile(Spec{Path: path, Start: 3, End: 100})
	require.NoError(t, err)
	assert.Equal(t, "line3\nline4", sel.Text)
	assert.Equal(t, 4, sel.EndLine, "range clamps to the last line")

	sel, err = FromFile(Spec{Path: path, Start: 50, End: 60})
	require.NoError(t, err)
	assert.Empty(t, sel.Text)

	sel, err = FromFile(Spec{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\nline3\nline4\n", sel.Text)
	assert.Equal(t, path, sel.Label())
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(Spec{Path: filepath.Join(t.TempDir(), "nope.go")})
	assert.Error(t, err)
}

func TestFromReader(t *testing.T) {
	sel, err := FromReader(strings.NewReader("System.out.println(1);"))
	require.NoError(t, err)
	assert.Equal(t, "System.out.println(1);", sel.SelectedText())
	assert.Equal(t, "selection", sel.Label())
	assert.Empty(t, sel.Path())
}

func TestLabel_SingleLine(t *testing.T) {
	s := Selection{Text: "x", File: "a.go", StartLine: 7, EndLine: 7}
	assert.Equal(t, "a.go:7", s.Label())
}
