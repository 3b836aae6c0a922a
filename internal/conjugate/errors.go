package conjugate

import "fmt"

// UnknownVerbError reports that a verb is not in the declared set.
type UnknownVerbError struct {
	Verb string
}

func (e *UnknownVerbError) Error() string {
	return fmt.Sprintf("conjugate: unknown verb %q", e.Verb)
}
