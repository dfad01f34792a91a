package loader

import (
	"strings"
)

// Errors collects the errors reported while loading packages.
// It's an error itself, so [errors.Is] and [errors.As] can find any of the collected errors.
type Errors struct {
	errs []error
}

// Add records err, ignoring nil.
func (e *Errors) Add(err error) *Errors {
	if err != nil {
		e.errs = append(e.errs, err)
	}
	return e
}

// Len returns the number of collected errors.
func (e *Errors) Len() int {
	return len(e.errs)
}

// Result returns nil if nothing was collected, or e otherwise.
func (e *Errors) Result() error {
	if len(e.errs) > 0 {
		return e
	}
	return nil
}

func (e *Errors) Error() string {
	var buf strings.Builder
	for i, err := range e.errs {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(err.Error())
	}
	return buf.String()
}

func (e *Errors) Unwrap() []error {
	return e.errs
}
