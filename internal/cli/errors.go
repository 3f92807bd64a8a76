package cli

import "fmt"

// ExitCodeError asks main to exit with Code.
// Err is printed when set; a nil Err means the output already explains the outcome.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}
