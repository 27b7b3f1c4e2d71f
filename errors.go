package fibre

import "errors"

var (
	// ErrNilFibre is returned by Scheduler.Run when no fibre is given.
	ErrNilFibre = errors.New("fibre: fibre cannot be nil")

	// ErrFanOutArithmetic is returned when Duration arithmetic is applied to a
	// fan-out WaitCommand. How much time a fan-out has consumed is decided by
	// its children, not by the command.
	ErrFanOutArithmetic = errors.New("fibre: arithmetic on a fan-out wait command")

	// ErrInvalidConfig is returned by LoadConfig and Config.Validate.
	ErrInvalidConfig = errors.New("fibre: invalid config")
)
