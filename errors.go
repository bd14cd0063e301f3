package strfmt

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for the three failure classes of a render call. Use errors.Is to
// tell a bad template (ErrSyntax) apart from bad arguments (ErrResolution, ErrBinding).
var (
	ErrSyntax     = errors.New("strfmt: syntax error")
	ErrResolution = errors.New("strfmt: resolution error")
	ErrBinding    = errors.New("strfmt: unbound placeholder")

	// ErrInvalidConfig is returned by LoadConfig when the document fails validation.
	ErrInvalidConfig = errors.New("strfmt: invalid config")
)

// SyntaxError reports a malformed template.
type SyntaxError struct {
	Template string
	Pos      int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Detail returns the error message followed by the template and a caret pointing at
// the offending character:
//
//	syntax error at position 4: invalid conversion 'x'
//	{0!x}
//	   ^
func (e *SyntaxError) Detail() string {
	return describe(e.Error(), e.Template, e.Pos)
}

// ResolutionError reports a selector or coercion that could not be applied to a bound value.
type ResolutionError struct {
	Template string
	Pos      int
	Msg      string
	Err      error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolution error at position %d: %s: %v", e.Pos, e.Msg, e.Err)
	}
	return fmt.Sprintf("resolution error at position %d: %s", e.Pos, e.Msg)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

func (e *ResolutionError) Is(target error) bool {
	return target == ErrResolution
}

// Detail returns the error message with a caret diagnostic, see SyntaxError.Detail.
func (e *ResolutionError) Detail() string {
	return describe(e.Error(), e.Template, e.Pos)
}

// BindingError reports a placeholder whose positional index has no argument.
type BindingError struct {
	Template string
	Pos      int
	Index    int
	Args     int
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("placeholder at position %d references argument %d, but only %d given",
		e.Pos, e.Index, e.Args)
}

func (e *BindingError) Is(target error) bool {
	return target == ErrBinding
}

// Detail returns the error message with a caret diagnostic, see SyntaxError.Detail.
func (e *BindingError) Detail() string {
	return describe(e.Error(), e.Template, e.Pos)
}

func describe(msg, template string, pos int) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(template) {
		pos = len(template)
	}

	// Only the line holding pos is shown.
	start := strings.LastIndexByte(template[:pos], '\n') + 1
	end := strings.IndexByte(template[pos:], '\n')
	if end < 0 {
		end = len(template)
	} else {
		end += pos
	}

	var sb strings.Builder
	sb.WriteString(msg)
	sb.WriteByte('\n')
	sb.WriteString(template[start:end])
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", utf8.RuneCountInString(template[start:pos])))
	sb.WriteByte('^')
	return sb.String()
}
