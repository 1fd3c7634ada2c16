package codec

import "fmt"

// FormatError wraps a decode or encode failure from a specific format,
// keeping the underlying parser diagnostic reachable via errors.Unwrap.
type FormatError struct {
	Format string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Format, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
