package filterset

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigurationError reports a malformed or incomplete filter declaration:
// a descriptor with no filter variant or no target columns, or a multi-join
// strategy built from an empty join list. It always indicates a programming
// mistake, not bad input, so it is never retried.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

func configErrorf(format string, args ...any) error {
	return errors.WithStack(&ConfigurationError{msg: fmt.Sprintf(format, args...)})
}
