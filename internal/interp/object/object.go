package object

import "strconv"

type ObjectType string

const (
	IntegerType   ObjectType = "INTEGER"
	BooleanType   ObjectType = "BOOLEAN"
	UndefinedType ObjectType = "UNDEFINED"
)

// Object is a runtime value. Values are immutable; bindings copy them.
type Object interface {
	Type() ObjectType
	Inspect() string
}

type Integer struct {
	Value int32
}

func (i *Integer) Type() ObjectType { return IntegerType }
func (i *Integer) Inspect() string  { return strconv.FormatInt(int64(i.Value), 10) }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BooleanType }
func (b *Boolean) Inspect() string  { return strconv.FormatBool(b.Value) }

// Undefined is the absence of a value: the result of a side-effecting
// statement, an empty program, or looking up an unbound identifier.
type Undefined struct{}

func (u *Undefined) Type() ObjectType { return UndefinedType }
func (u *Undefined) Inspect() string  { return "undefined" }
