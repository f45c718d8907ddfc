package instance

import "fmt"

// MalformedInputError reports an instance whose header disagrees with its
// body or that names an element outside the declared universe.
type MalformedInputError struct {
	// Line is the 1-based input line, 0 when unknown.
	Line int
	// Set is the 1-based set identity, 0 when the problem is not set specific.
	Set    int
	Reason string
}

func (e *MalformedInputError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("instance: malformed input at line %d: %s", e.Line, e.Reason)
	case e.Set > 0:
		return fmt.Sprintf("instance: malformed input in set #%d: %s", e.Set, e.Reason)
	default:
		return "instance: malformed input: " + e.Reason
	}
}
