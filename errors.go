package bsp

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDegenerate is returned when geometry cannot be constructed, such as a hyperplane with a zero, NaN or infinite direction.
var ErrDegenerate = errors.New("degenerate geometry")

// ErrUnbounded is returned when a finite representation of an infinite region is requested.
var ErrUnbounded = errors.New("unbounded region")

// ErrStructure is the cause of every StructureError.
var ErrStructure = errors.New("inconsistent tree structure")

// StructureError reports a violation of the tree's structural invariants, such as using a node of another tree or a node that has been removed. Mutating operations panic with a *StructureError since it is always a programming error.
type StructureError struct {
	Node int32
	Msg  string
}

func (err *StructureError) Error() string {
	if err.Node < 0 {
		return fmt.Sprintf("%v: %s", ErrStructure, err.Msg)
	}
	return fmt.Sprintf("%v: node %d: %s", ErrStructure, err.Node, err.Msg)
}

// Cause returns ErrStructure, see errors.Cause.
func (err *StructureError) Cause() error {
	return ErrStructure
}

// Unwrap returns ErrStructure, see errors.Is.
func (err *StructureError) Unwrap() error {
	return ErrStructure
}

func structureErrorf(id int32, format string, args ...interface{}) *StructureError {
	return &StructureError{id, fmt.Sprintf(format, args...)}
}
