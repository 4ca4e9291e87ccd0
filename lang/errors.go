package lang

import "fmt"

// ParseError is returned for a malformed program. Grounded on
// audio_stack/src/lib.rs's Error enum, which distinguished the same three
// cases.
type ParseError struct {
	Kind  ParseErrorKind
	Index int    // token index the error occurred at
	Token string // the offending token's name
}

// ParseErrorKind enumerates the ways a token can fail to parse.
type ParseErrorKind int

const (
	UnknownToken ParseErrorKind = iota
	NotEnoughParameters
	WrongParameterType
)

func (e *ParseError) Error() string {
	switch e.Kind {
	case NotEnoughParameters:
		return fmt.Sprintf("token %d (%q): missing required :arg parameter", e.Index, e.Token)
	case WrongParameterType:
		return fmt.Sprintf("token %d (%q): parameter is not a valid number", e.Index, e.Token)
	default:
		return fmt.Sprintf("token %d (%q): unknown token", e.Index, e.Token)
	}
}

// ErrUnsupportedToken is returned for a token that the grammar recognizes
// by name but that this implementation does not build — currently only
// "yin", whose pitch-detection module was explicitly left out of scope.
// It is distinct from ParseError{Kind: UnknownToken} so a caller can tell
// "never heard of this word" apart from "I know this word and it's not
// implemented".
type ErrUnsupportedToken struct {
	Index int
	Token string
}

func (e *ErrUnsupportedToken) Error() string {
	return fmt.Sprintf("token %d (%q): recognized but not supported", e.Index, e.Token)
}
