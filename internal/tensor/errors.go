package tensor

import "github.com/pkg/errors"

// Error kinds returned by tensor operations. Returned errors wrap one of these
// with the failing operation's context; match them with errors.Is.
var (
	ErrIndexing             = errors.New("indexing error")
	ErrDimensionMismatch    = errors.New("dimension mismatch")
	ErrShapeMismatch        = errors.New("shape mismatch")
	ErrUnsupportedBroadcast = errors.New("broadcasting not supported")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrInvalidShape         = errors.New("invalid shape")
	ErrReleased             = errors.New("tensor buffer released")
)
