package query

import "fmt"

// Reason tells why a query could not be parsed.
type Reason int

const (
	// NoQueryBody means there is no colon, or nothing before it.
	NoQueryBody Reason = iota + 1
	// EmptyBody means there is nothing to translate after the colon.
	EmptyBody
	// TooManyArrows means more than one "->" in the language part.
	TooManyArrows
	// NoTargetCode means the language part has no segment at all.
	NoTargetCode
	// InvalidSourceCode means the source token is not in the source table.
	InvalidSourceCode
	// InvalidTargetCode means the target token is not in the target table.
	InvalidTargetCode
)

var reasonNames = map[Reason]string{
	NoQueryBody:       "no query body",
	EmptyBody:         "no query was provided",
	TooManyArrows:     "too many arrows in the query",
	NoTargetCode:      "no target language code",
	InvalidSourceCode: "invalid source language code",
	InvalidTargetCode: "invalid target language code",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// Label is a metric friendly form of the reason.
func (r Reason) Label() string {
	switch r {
	case NoQueryBody:
		return "no_query_body"
	case EmptyBody:
		return "empty_body"
	case TooManyArrows:
		return "too_many_arrows"
	case NoTargetCode:
		return "no_target_code"
	case InvalidSourceCode:
		return "invalid_source_code"
	case InvalidTargetCode:
		return "invalid_target_code"
	default:
		return "unknown"
	}
}

// Benign reports whether the failure only means the user has not finished
// typing; those are logged at trace instead of warn.
func (r Reason) Benign() bool {
	return r == EmptyBody
}

// ParseError is returned by Parse. Token holds the offending language token
// for InvalidSourceCode and InvalidTargetCode.
type ParseError struct {
	Reason Reason
	Token  string
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %q", e.Reason, e.Token)
	}
	return e.Reason.String()
}

// Is matches any *ParseError with the same reason, so the sentinels below
// work with errors.Is.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Reason == e.Reason
}

// Sentinels for errors.Is
var (
	ErrNoQueryBody       = &ParseError{Reason: NoQueryBody}
	ErrEmptyBody         = &ParseError{Reason: EmptyBody}
	ErrTooManyArrows     = &ParseError{Reason: TooManyArrows}
	ErrNoTargetCode      = &ParseError{Reason: NoTargetCode}
	ErrInvalidSourceCode = &ParseError{Reason: InvalidSourceCode}
	ErrInvalidTargetCode = &ParseError{Reason: InvalidTargetCode}
)
