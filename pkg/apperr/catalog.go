package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Code defines a canonical error code surfaced to the operator.
type Code string

const (
	// Input & Validation
	Validation        Code = "VALIDATION"
	NotFound          Code = "NOT_FOUND"
	InvalidSheet      Code = "INVALID_SHEET"
	UnsupportedFormat Code = "UNSUPPORTED_FORMAT"

	// IO & Formats
	OpenFailed      Code = "OPEN_FAILED"
	ReadFailed      Code = "READ_FAILED"
	CorruptWorkbook Code = "CORRUPT_WORKBOOK"

	// Data shape
	SchemaMismatch Code = "SCHEMA_MISMATCH"
	ParseFailed    Code = "PARSE_FAILED"

	// Analysis & Output
	AnalysisFailed Code = "ANALYSIS_FAILED"
	RenderFailed   Code = "RENDER_FAILED"
	Canceled       Code = "CANCELED"

	Internal Code = "INTERNAL"
)

// Entry documents a code's standard message and next steps.
type Entry struct {
	Code      Code
	Message   string
	NextSteps []string
}

// catalog maps canonical codes to guidance. Messages can be overridden per error.
var catalog = map[Code]Entry{
	Validation:        {Code: Validation, Message: "invalid inputs", NextSteps: []string{"Check the compiled-in workbook path and sheet name"}},
	NotFound:          {Code: NotFound, Message: "workbook not found", NextSteps: []string{"Place the workbook next to the binary or run from its directory"}},
	InvalidSheet:      {Code: InvalidSheet, Message: "sheet not found", NextSteps: []string{"Rename the data sheet to Sheet1", "Check case and spacing"}},
	UnsupportedFormat: {Code: UnsupportedFormat, Message: "unsupported workbook format", NextSteps: []string{"Convert to .xlsx and retry"}},

	OpenFailed:      {Code: OpenFailed, Message: "failed to open workbook", NextSteps: []string{"Verify path, permissions, and format"}},
	ReadFailed:      {Code: ReadFailed, Message: "failed to read sheet", NextSteps: []string{"Open the workbook in Excel and re-save it"}},
	CorruptWorkbook: {Code: CorruptWorkbook, Message: "workbook appears corrupt or unreadable", NextSteps: []string{"Open in Excel and re-save or repair", "Provide a clean copy"}},

	SchemaMismatch: {Code: SchemaMismatch, Message: "sheet does not have the expected columns", NextSteps: []string{"Use six columns: store id, city, MM/YYYY, product, quantity, value"}},
	ParseFailed:    {Code: ParseFailed, Message: "failed to parse cell value", NextSteps: []string{"Fix the reported row and retry", "Month-year cells must be MM/YYYY"}},

	AnalysisFailed: {Code: AnalysisFailed, Message: "analysis failed", NextSteps: []string{"Verify the sheet contains data rows"}},
	RenderFailed:   {Code: RenderFailed, Message: "failed to render chart", NextSteps: []string{"Check that the terminal accepts output"}},
	Canceled:       {Code: Canceled, Message: "run canceled"},

	Internal: {Code: Internal, Message: "unexpected error"},
}

// Error pairs a catalog code with the underlying cause.
type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return normalize(e.Code, "", false)
	}
	return normalize(e.Code, e.Err.Error(), false)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap attaches code to err. A nil err yields nil; an err that already
// carries a code keeps its original code.
func Wrap(code Code, err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return &Error{Code: code, Err: err}
}

// Wrapf formats a message and returns it wrapped with code.
func Wrapf(code Code, format string, args ...any) error {
	return &Error{Code: code, Err: fmt.Errorf(format, args...)}
}

// CodeOf returns the code carried by err, or Internal when none is attached.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return Internal
}

// Message renders err as "CODE: message | nextSteps: ..." for operator output.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		msg := ""
		if ae.Err != nil {
			msg = ae.Err.Error()
		}
		return normalize(ae.Code, msg, true)
	}
	return normalize(Internal, err.Error(), true)
}

// Lookup returns the catalog entry for code.
func Lookup(code Code) (Entry, bool) {
	e, ok := catalog[code]
	return e, ok
}

// normalize builds "CODE: message" and optionally appends the next-step guidance.
func normalize(code Code, msg string, guidance bool) string {
	base := strings.TrimSpace(msg)
	e, ok := Lookup(code)
	if !ok {
		if base == "" {
			return string(code)
		}
		return fmt.Sprintf("%s: %s", string(code), base)
	}
	if base == "" {
		base = e.Message
	}
	tail := ""
	if guidance && len(e.NextSteps) > 0 {
		tail = " | nextSteps: " + strings.Join(e.NextSteps, "; ")
	}
	return fmt.Sprintf("%s: %s%s", e.Code, base, tail)
}

// IsInvalidSheet returns true if an error matches common excelize "sheet does not exist" messages.
func IsInvalidSheet(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "doesn't exist") || strings.Contains(low, "does not exist")
}
