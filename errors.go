package sketch

import "fmt"

// ParseError reports malformed path data. A failed parse aborts the load;
// any previously loaded Document is retained.
type ParseError struct {
	// Pos is the byte offset in the path data where parsing failed.
	Pos int

	// Cmd is the command being parsed when the failure occurred, if any.
	Cmd byte

	// Reason describes what went wrong.
	Reason string
}

func (e *ParseError) Error() string {
	if e.Cmd != 0 {
		return fmt.Sprintf("sketch: bad path: %s in command %q at position %d", e.Reason, e.Cmd, e.Pos)
	}
	return fmt.Sprintf("sketch: bad path: %s at position %d", e.Reason, e.Pos)
}

// ConfigurationError reports an invalid configuration value, such as a
// zero-area source viewport.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "sketch: " + e.Reason
}
