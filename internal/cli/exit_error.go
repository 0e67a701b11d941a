package cli

import "fmt"

// ExitError signals a specific exit code without forcing os.Exit in
// RunE handlers. Execute unwraps it ahead of the error-code mapping.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
