package util

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors used throughout tabview
var (
	ErrSourceNotFound    = errors.New("row source not found")
	ErrUnsupportedSource = errors.New("unsupported row source")
	ErrMissingQuery      = errors.New("database source needs a query")
	ErrNoTable           = errors.New("no table found in document")
	ErrNoColumns         = errors.New("source has no columns")
	ErrUnknownColumn     = errors.New("unknown column")
)

// TabviewError is a structured error with context and suggestions
type TabviewError struct {
	Title       string   // Short error title
	Message     string   // Detailed message
	Context     string   // What was being attempted
	Causes      []string // Possible causes
	Suggestions []string // Actionable suggestions with commands
	Err         error    // Wrapped error
}

func (e *TabviewError) Error() string {
	return e.Title
}

func (e *TabviewError) Unwrap() error {
	return e.Err
}

// Format returns a nicely formatted error message
func (e *TabviewError) Format() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error: %s\n", e.Title))

	if e.Message != "" {
		sb.WriteString(fmt.Sprintf("\n  %s\n", e.Message))
	}
	if e.Context != "" {
		sb.WriteString(fmt.Sprintf("\n  %s\n", e.Context))
	}
	if e.Err != nil && e.Err.Error() != e.Message {
		sb.WriteString(fmt.Sprintf("\n  %s\n", e.Err))
	}

	if len(e.Causes) > 0 {
		sb.WriteString("\n  Possible causes:\n")
		for _, cause := range e.Causes {
			sb.WriteString(fmt.Sprintf("    • %s\n", cause))
		}
	}

	if len(e.Suggestions) > 0 {
		sb.WriteString("\n  Try:\n")
		for _, sug := range e.Suggestions {
			sb.WriteString(fmt.Sprintf("    $ %s\n", sug))
		}
	}

	return sb.String()
}

// NewError creates a new TabviewError
func NewError(title string) *TabviewError {
	return &TabviewError{Title: title}
}

// WithMessage adds a detailed message
func (e *TabviewError) WithMessage(msg string) *TabviewError {
	e.Message = msg
	return e
}

// WithContext adds context about what was being attempted
func (e *TabviewError) WithContext(ctx string) *TabviewError {
	e.Context = ctx
	return e
}

// WithCauses adds possible causes
func (e *TabviewError) WithCauses(causes ...string) *TabviewError {
	e.Causes = append(e.Causes, causes...)
	return e
}

// WithSuggestion adds an actionable suggestion
func (e *TabviewError) WithSuggestion(sug string) *TabviewError {
	e.Suggestions = append(e.Suggestions, sug)
	return e
}

// WithSuggestions adds multiple suggestions
func (e *TabviewError) WithSuggestions(sugs ...string) *TabviewError {
	e.Suggestions = append(e.Suggestions, sugs...)
	return e
}

// Wrap wraps an underlying error
func (e *TabviewError) Wrap(err error) *TabviewError {
	e.Err = err
	return e
}

// ══════════════════════════════════════════════════════════════════════════
// Pre-built error constructors for common cases
// ══════════════════════════════════════════════════════════════════════════

// SourceNotFoundError returns a structured error for a missing source file
func SourceNotFoundError(ref string) *TabviewError {
	return NewError(fmt.Sprintf("Row source '%s' not found", ref)).
		WithSuggestions(
			"ls *.json *.csv *.html   # List candidate report files",
		).
		Wrap(ErrSourceNotFound)
}

// UnsupportedSourceError returns a structured error for unknown source kinds
func UnsupportedSourceError(ref string) *TabviewError {
	return NewError(fmt.Sprintf("Cannot read rows from '%s'", ref)).
		WithMessage("Supported sources: .json .jsonc .yaml .yml .csv .html .htm .db .sqlite, sqlite:<path>, postgres://").
		Wrap(ErrUnsupportedSource)
}

// MissingQueryError returns a structured error for database sources without a query
func MissingQueryError(ref string) *TabviewError {
	return NewError("Missing SQL query").
		WithContext(ref).
		WithSuggestions(
			fmt.Sprintf("tabview view %s --query \"SELECT * FROM processes\"", ref),
			"tabview config source.query \"SELECT * FROM processes\"",
		).
		Wrap(ErrMissingQuery)
}

// SourceReadError returns a structured error for a source that failed to parse
func SourceReadError(ref string, err error) *TabviewError {
	return NewError(fmt.Sprintf("Cannot read rows from '%s'", ref)).
		WithCauses(
			"The file is not in the format its extension suggests",
			"The document does not contain a list of records",
		).
		Wrap(err)
}

// DatabaseConnectionError returns a structured error for DB connection issues
func DatabaseConnectionError(url string, err error) *TabviewError {
	return NewError("Cannot connect to database").
		WithContext(url).
		WithCauses(
			"Database server is not running",
			"Invalid connection credentials",
			"Network connectivity issues",
			"Database does not exist",
		).
		Wrap(err)
}

// UnknownColumnError returns a structured error for a bad --sort column
func UnknownColumnError(name string, columns []string) *TabviewError {
	return NewError(fmt.Sprintf("Unknown column '%s'", name)).
		WithMessage("Available columns: " + strings.Join(columns, ", ")).
		Wrap(ErrUnknownColumn)
}

// MissingArgumentError returns an error for missing required argument
func MissingArgumentError(argName, example string) *TabviewError {
	e := NewError(fmt.Sprintf("Missing required argument: <%s>", argName))
	if example != "" {
		e.WithSuggestion(example)
	}
	return e
}
