package dispatch

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrDisposed         = fmt.Errorf("%w: binding is disposed", ErrInvalidOperation)

	ErrUndeclaredChannel = fmt.Errorf("%w: channel has not been declared", ErrInvalidArgument)
	ErrAlreadyBound      = fmt.Errorf("%w: binding is already bound to a subject", ErrInvalidOperation)
)

func undeclared(ch Channel) error {
	return fmt.Errorf("%w: %d", ErrUndeclaredChannel, ch)
}
