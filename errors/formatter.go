package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

const (
	// DefaultMaxLineLength is the width long error messages are wrapped at.
	DefaultMaxLineLength = 80

	hintPrefix = "    hint: "
)

// FormatterConfig controls error formatting.
type FormatterConfig struct {
	// Verbose adds the safe context details and the full error chain.
	Verbose bool

	// Color is one of "auto", "always" or "never".
	Color string

	// MaxLineLength is the wrap width for the main message.
	MaxLineLength int
}

// DefaultFormatterConfig returns the formatting used by the CLI.
func DefaultFormatterConfig() FormatterConfig {
	return FormatterConfig{
		Color:         "auto",
		MaxLineLength: DefaultMaxLineLength,
	}
}

// Format renders err for the terminal: the message, its hints and, in verbose mode, its details.
func Format(err error, config FormatterConfig) string {
	if err == nil {
		return ""
	}

	useColor := shouldUseColor(config.Color)
	errorStyle := lipgloss.NewStyle()
	hintStyle := lipgloss.NewStyle()
	detailStyle := lipgloss.NewStyle()
	if useColor {
		errorStyle = errorStyle.Foreground(lipgloss.Color("#FF0000"))
		hintStyle = hintStyle.Foreground(lipgloss.Color("#00AFFF"))
		detailStyle = detailStyle.Foreground(lipgloss.Color("#808080"))
	}

	var output strings.Builder

	msg := err.Error()
	if !config.Verbose && len(msg) > config.MaxLineLength {
		msg = wrapText(msg, config.MaxLineLength)
	}
	output.WriteString(errorStyle.Render(msg))

	for _, hint := range errors.GetAllHints(err) {
		output.WriteString("\n")
		output.WriteString(hintStyle.Render(hintPrefix + hint))
	}

	if config.Verbose {
		for _, detail := range errors.GetAllDetails(err) {
			output.WriteString("\n")
			output.WriteString(detailStyle.Render(detail))
		}
		for _, payload := range errors.GetAllSafeDetails(err) {
			for _, safe := range payload.SafeDetails {
				output.WriteString("\n")
				output.WriteString(detailStyle.Render(safe))
			}
		}
		output.WriteString("\n\n")
		output.WriteString(detailStyle.Render(fmt.Sprintf("%+v", err)))
	}

	return output.String()
}

func shouldUseColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultMaxLineLength
	}

	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}
