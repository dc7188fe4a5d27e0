package utils

import (
	"bytes"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/mattn/go-isatty"
)

const (
	highlightFormatter = "terminal256"
	highlightStyle     = "dracula"
)

// HighlightCode colors code for a 256-color terminal.
func HighlightCode(code string, language string) (string, error) {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, code, language, highlightFormatter, highlightStyle); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
