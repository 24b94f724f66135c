// Package exit carries process termination results from command logic
// back to main.
package exit

import (
	"fmt"
	"io"
	"os"
)

// Exit codes used by the opq tool.
const (
	CodeSuccess  = 0
	CodeNotFound = 1
	CodeError    = 2
)

// Result holds the output destination, exit code and message for
// program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to the configured output.
func (r *Result) Print() {
	fmt.Fprint(r.Output, r.Message)
}

// Success writes message to stdout and exits 0.
func Success(message string) *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: CodeSuccess,
		Message:  message,
	}
}

// NotFound reports a null query result: message to stdout, exit 1.
func NotFound(message string) *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: CodeNotFound,
		Message:  message,
	}
}

// Error writes message to stderr and exits 2.
func Error(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeError,
		Message:  message,
	}
}

// Errorf is Error with formatting.
func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}
