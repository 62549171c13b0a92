package evaluator

import (
	"fmt"

	"github.com/arnavsurve/mica/internal/interp/object"
)

// TypeMismatchError reports an operator applied to incompatible operand
// types.
type TypeMismatchError struct {
	Expected object.ObjectType
	Actual   object.ObjectType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// UnknownMethodError reports a call to a built-in the interpreter does not
// provide.
type UnknownMethodError struct {
	Name string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown method %q", e.Name)
}

// DivisionByZeroError reports integer division or modulo with a zero right
// operand.
type DivisionByZeroError struct {
	Op string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero in %q", e.Op)
}
