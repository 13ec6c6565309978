package grammar

import (
	"errors"
	"fmt"
)

// ErrNoRules is returned when a rule is requested for a symbol that is not
// the lhs of any rule.
var ErrNoRules = errors.New("no rules for symbol")

// ParseError reports a malformed grammar line.
type ParseError struct {
	// Line is 1-based
	Line int

	// Content is the offending line, its tab fields joined by spaces.
	Content string

	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s, unexpected line at line %d : %s", e.Reason, e.Line, e.Content)
}
