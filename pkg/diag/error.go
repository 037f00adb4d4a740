package diag

import (
	"fmt"
)

// ErrorTag is used to parameterize [Error] into different concrete types. The
// ErrorTag method is called with a zero receiver and must return the name of
// the error kind, like "lex error".
type ErrorTag interface {
	ErrorTag() string
}

// Error represents an error with a source context attached. The concrete
// error kind is determined by the type parameter.
type Error[T ErrorTag] struct {
	Message string
	Context Context
}

// Error returns a plain text representation of the error.
func (e *Error[T]) Error() string {
	var tag T
	return fmt.Sprintf("%s: %d-%d in %s: %s",
		tag.ErrorTag(), e.Context.From, e.Context.To, e.Context.Name, e.Message)
}

// Range returns the range of the error.
func (e *Error[T]) Range() Ranging {
	return e.Context.Range()
}

// Show shows the error kind and message, followed by the source context.
func (e *Error[T]) Show(indent string) string {
	var tag T
	header := fmt.Sprintf("%s: \033[31;1m%s\033[m\n", title(tag.ErrorTag()), e.Message)
	return header + e.Context.Show(indent+"  ")
}

func title(s string) string {
	if s == "" {
		return s
	}
	// Error tags are known to start with an ASCII letter.
	return string(s[0]&^0x20) + s[1:]
}
