package shortcode

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	KindMissingOpeningTag ErrorKind = iota + 1
	KindInvalidOpeningTag
	KindUnexpectedQuote
	KindInconsistentClosingTag
	KindUnexpectedEndOfInput
	KindMissingClosingTag
	KindTooDeep
)

var kindNames = map[ErrorKind]string{
	KindMissingOpeningTag:      "missing opening tag",
	KindInvalidOpeningTag:      "invalid opening tag",
	KindUnexpectedQuote:        "unexpected quote",
	KindInconsistentClosingTag: "inconsistent closing tag",
	KindUnexpectedEndOfInput:   "unexpected end of input",
	KindMissingClosingTag:      "missing closing tag",
	KindTooDeep:                "nesting too deep",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel errors, one per kind, for use with errors.Is.
var (
	ErrMissingOpeningTag      = errors.New(KindMissingOpeningTag.String())
	ErrInvalidOpeningTag      = errors.New(KindInvalidOpeningTag.String())
	ErrUnexpectedQuote        = errors.New(KindUnexpectedQuote.String())
	ErrInconsistentClosingTag = errors.New(KindInconsistentClosingTag.String())
	ErrUnexpectedEndOfInput   = errors.New(KindUnexpectedEndOfInput.String())
	ErrMissingClosingTag      = errors.New(KindMissingClosingTag.String())
	ErrTooDeep                = errors.New(KindTooDeep.String())
)

var kindErrors = map[ErrorKind]error{
	KindMissingOpeningTag:      ErrMissingOpeningTag,
	KindInvalidOpeningTag:      ErrInvalidOpeningTag,
	KindUnexpectedQuote:        ErrUnexpectedQuote,
	KindInconsistentClosingTag: ErrInconsistentClosingTag,
	KindUnexpectedEndOfInput:   ErrUnexpectedEndOfInput,
	KindMissingClosingTag:      ErrMissingClosingTag,
	KindTooDeep:                ErrTooDeep,
}

// ParseError describes why a tag could not be parsed.
type ParseError struct {
	Kind   ErrorKind
	Offset int // byte offset in the input where the problem was found
	Msg    string
}

func newParseError(kind ErrorKind, offset int, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind:   kind,
		Offset: offset,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("shortcode: %s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("shortcode: %s at offset %d: %s", e.Kind, e.Offset, e.Msg)
}

// Is matches the sentinel error of the same kind.
func (e *ParseError) Is(target error) bool {
	return kindErrors[e.Kind] == target
}

// IsNoMatch reports whether err only means that no opening tag was found.
func IsNoMatch(err error) bool {
	return errors.Is(err, ErrMissingOpeningTag)
}
