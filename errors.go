package hamcrest

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrUsage is the root of every construction time error.
// Constructors given invalid arguments panic with a *UsageError, which matches ErrUsage with errors.Is.
//
//	defer func() {
//		err, _ := recover().(error)
//		errors.Is(err, hamcrest.ErrUsage) // true
//	}()
//	hamcrest.EndsWithIgnoringCase("")
const ErrUsage Error = "ErrUsage"

// Error allows declaring error constants.
type Error string

func (err Error) Error() string { return string(err) }

// UsageError tells why a matcher could not be built from the given arguments.
type UsageError struct {
	Reason string
}

func (err *UsageError) Error() string {
	return fmt.Sprintf("[%s] %s", ErrUsage, err.Reason)
}

func (err *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// usage panics with a usage error that carries the caller's stack.
func usage(format string, a ...any) {
	panic(pkgerrors.WithStack(&UsageError{Reason: fmt.Sprintf(format, a...)}))
}
