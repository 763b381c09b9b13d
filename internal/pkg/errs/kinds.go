package errs

// Error kinds surfaced to callers. Concrete errors are Mark()ed with one of
// these so the boundary can classify them with Is.
var (
	ErrNotFound            = New("not found")
	ErrInvalidArgument     = New("invalid argument")
	ErrInsufficientBalance = New("insufficient balance")
	ErrConflict            = New("conflict")
	ErrUnexpected          = New("unexpected error")
)

// KindOf returns the taxonomy sentinel err is marked with, or ErrUnexpected.
func KindOf(err error) error {
	switch {
	case err == nil:
		return nil
	case Is(err, ErrNotFound):
		return ErrNotFound
	case Is(err, ErrInvalidArgument):
		return ErrInvalidArgument
	case Is(err, ErrInsufficientBalance):
		return ErrInsufficientBalance
	case Is(err, ErrConflict):
		return ErrConflict
	default:
		return ErrUnexpected
	}
}
