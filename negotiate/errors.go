package negotiate

import (
	"errors"
	"fmt"

	"github.com/hupe1980/syskit/errno"
	"golang.org/x/sys/unix"
)

var (
	// ErrInsufficient is matched by a CapacityError whose fixed buffer was
	// too small.
	ErrInsufficient = errors.New("negotiate: buffer insufficient")
	// ErrExceeded is matched by a CapacityError whose limits were reached
	// before a large enough buffer was found.
	ErrExceeded = errors.New("negotiate: buffer limit exceeded")
)

// CapacityKind distinguishes the two capacity failures.
type CapacityKind uint8

const (
	// Insufficient means a non-growable buffer was too small.
	Insufficient CapacityKind = iota
	// Exceeded means the size or attempt cap was reached.
	Exceeded
)

func (k CapacityKind) String() string {
	if k == Insufficient {
		return "insufficient"
	}
	return "exceeded"
}

// CapacityError reports that no buffer offered was large enough.
//
// It unwraps to ErrInsufficient or ErrExceeded, to the ERANGE errno.Error
// (so errno.FromError classifies it as ResourceExhausted), and to the last
// fill error if there was one.
type CapacityError struct {
	Op       string
	Kind     CapacityKind
	Size     int // capacity of the last buffer offered
	Attempts int
	Err      error
}

func (e *CapacityError) Error() string {
	if e.Kind == Insufficient {
		return fmt.Sprintf("negotiate: %s: buffer of %d bytes is too small", e.Op, e.Size)
	}
	return fmt.Sprintf("negotiate: %s: buffer still too small at %d bytes after %d attempts", e.Op, e.Size, e.Attempts)
}

func (e *CapacityError) Unwrap() []error {
	sentinel := ErrExceeded
	if e.Kind == Insufficient {
		sentinel = ErrInsufficient
	}
	errs := []error{sentinel, errno.FromCode(int(unix.ERANGE))}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
