package report

import "fmt"

// CompileError is a compilation error produced while checking erroneous input
// code.  It is the value carried on the failure path of every checking
// function: the first one raised aborts analysis of the whole unit.
type CompileError struct {
	// The error message.
	Message string

	// The span over which the error occurs.  May be nil for errors which have
	// no single position, such as a missing main function.
	Span *TextSpan
}

func (ce *CompileError) Error() string {
	return ce.Message
}

// Raise creates a new compile error over the given span.
func Raise(span *TextSpan, msg string, args ...interface{}) *CompileError {
	return &CompileError{Message: fmt.Sprintf(msg, args...), Span: span}
}
