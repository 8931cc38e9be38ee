package tagvalue

import (
	"errors"
	"fmt"
)

var (
	ErrMissingMsgType       = errors.New("tagvalue: message has no MsgType(35)")
	ErrGroupIndexOutOfRange = errors.New("tagvalue: group index out of range")
	ErrInvalidBoolean       = errors.New("tagvalue: boolean must be Y or N")
	ErrInvalidChar          = errors.New("tagvalue: char must not be empty")
	ErrNegativeGroupCount   = errors.New("tagvalue: negative group count")
)

// MissingRequiredFieldError reports a required field absent from a view.
type MissingRequiredFieldError struct {
	Tag Tag
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("tagvalue: required field %d missing", e.Tag)
}

// FieldValueError reports a present field whose value failed to convert.
type FieldValueError struct {
	Tag   Tag
	Value string
	Err   error
}

func (e *FieldValueError) Error() string {
	return fmt.Sprintf("tagvalue: field %d value %q: %v", e.Tag, e.Value, e.Err)
}

func (e *FieldValueError) Unwrap() error {
	return e.Err
}

// UnknownEnumValueError reports a wire value that is not a declared enum member.
type UnknownEnumValueError struct {
	Type  string
	Value string
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("tagvalue: %q is not a valid %s", e.Value, e.Type)
}

// UnknownMessageTypeError reports a MsgType with no registered record.
type UnknownMessageTypeError struct {
	MsgType string
}

func (e *UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("tagvalue: unknown MsgType %q", e.MsgType)
}
