package ui

import (
	"io"
)

// Severity classifies the visual weight of a piece of inline text. TerminalUI
// maps it to a colour; RecordingUI keeps plain text.
type Severity uint8

const (
	SeverityInfo    Severity = iota // plain, no colour emphasis
	SeveritySuccess                 // green, supported / positive
	SeverityWarn                    // yellow, uncertain
	SeverityError                   // red, unsupported / negative
)

// StyledText pairs a plain string with a Severity annotation.
type StyledText struct {
	Text     string
	Severity Severity
}

// YesNo styles a boolean as a green "yes" or a plain "no".
func YesNo(v bool) StyledText {
	if v {
		return StyledText{Text: "yes", Severity: SeveritySuccess}
	}
	return StyledText{Text: "no", Severity: SeverityInfo}
}

// UI is all terminal output of explink commands.
//
//   - Production code uses TerminalUI (writes to os.Stdout)
//   - Tests use RecordingUI (captures all output)
type UI interface {
	// Style returns the text from t coloured according to its Severity.
	// When colours are disabled (piped output, RecordingUI) the plain text is
	// returned unchanged.
	Style(t StyledText) string

	// Info writes a neutral line. Links are always printed with Info so they
	// can be piped into other tools.
	Info(format string, args ...any)

	// Success writes a positive outcome in green.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning in yellow.
	Warn(format string, args ...any)

	// Error writes a failure in red. It does NOT exit or return an error.
	Error(format string, args ...any)

	// Section writes a visual separator centred around a title.
	Section(title string)

	// KeyValue renders an aligned 2-column block.
	KeyValue(rows [][2]string)

	// Table renders a bordered table with a header row followed by data rows.
	Table(headers []string, rows [][]string)

	// TableWithGroups renders a bordered table where each group of rows is
	// separated from the next by a horizontal divider line.
	TableWithGroups(headers []string, groups [][][]string)

	// Indent returns a child UI with indent level increased by one, sharing
	// the same underlying writer as the parent.
	Indent() UI

	// Writer returns an io.Writer that prepends the current indentation to
	// every line.
	Writer() io.Writer
}
