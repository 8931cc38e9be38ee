package diagnostic

import (
	"fmt"
	"strings"
)

// Code classifies a compile error.
type Code string

const (
	CodeMalformedDictionary          Code = "MalformedDictionary"
	CodeDuplicateField               Code = "DuplicateField"
	CodeDuplicateComponent           Code = "DuplicateComponent"
	CodeDuplicateClass               Code = "DuplicateClass"
	CodeDuplicateMsgType             Code = "DuplicateMsgType"
	CodeUnknownType                  Code = "UnknownType"
	CodeUnknownField                 Code = "UnknownField"
	CodeInvalidEnumLiteral           Code = "InvalidEnumLiteral"
	CodeNameCollision                Code = "NameCollision"
	CodeEnumNameCollision            Code = "EnumNameCollision"
	CodeEmptyGroup                   Code = "EmptyGroup"
	CodeUnresolvedComponentReference Code = "UnresolvedComponentReference"
	CodeComponentCycle               Code = "ComponentCycle"
)

// Sentinels for errors.Is. Any *Error with the same code matches.
var (
	ErrMalformedDictionary          = &Error{Code: CodeMalformedDictionary}
	ErrDuplicateField               = &Error{Code: CodeDuplicateField}
	ErrDuplicateComponent           = &Error{Code: CodeDuplicateComponent}
	ErrDuplicateClass               = &Error{Code: CodeDuplicateClass}
	ErrDuplicateMsgType             = &Error{Code: CodeDuplicateMsgType}
	ErrUnknownType                  = &Error{Code: CodeUnknownType}
	ErrUnknownField                 = &Error{Code: CodeUnknownField}
	ErrInvalidEnumLiteral           = &Error{Code: CodeInvalidEnumLiteral}
	ErrNameCollision                = &Error{Code: CodeNameCollision}
	ErrEnumNameCollision            = &Error{Code: CodeEnumNameCollision}
	ErrEmptyGroup                   = &Error{Code: CodeEmptyGroup}
	ErrUnresolvedComponentReference = &Error{Code: CodeUnresolvedComponentReference}
	ErrComponentCycle               = &Error{Code: CodeComponentCycle}
)

// Error is a fatal compile error tied to a dictionary element.
type Error struct {
	Code Code
	// Location names the element, e.g. "message NewOrderSingle" or
	// "component Parties".
	Location string
	// Line is the 1-based dictionary line, 0 when unknown.
	Line        int
	Message     string
	Suggestions []string
	Err         error
}

// Errorf builds an Error for location.
func Errorf(code Code, location, format string, args ...any) *Error {
	return &Error{
		Code:     code,
		Location: location,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Wrap builds an Error carrying a lower-level cause.
func Wrap(code Code, location string, err error) *Error {
	return &Error{
		Code:     code,
		Location: location,
		Message:  err.Error(),
		Err:      err,
	}
}

// AtLine sets the dictionary line and returns e.
func (e *Error) AtLine(line int) *Error {
	e.Line = line
	return e
}

// Suggest attaches "did you mean" candidates and returns e.
func (e *Error) Suggest(names ...string) *Error {
	e.Suggestions = names
	return e
}

func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString("[" + string(e.Code) + "] ")

	if e.Location != "" {
		sb.WriteString(e.Location)

		if e.Line > 0 {
			fmt.Fprintf(&sb, " (line %d)", e.Line)
		}

		sb.WriteString(": ")
	}

	sb.WriteString(e.Message)

	if len(e.Suggestions) > 0 {
		sb.WriteString("; did you mean " + strings.Join(e.Suggestions, ", ") + "?")
	}

	return sb.String()
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func (e *Error) Unwrap() error {
	return e.Err
}
