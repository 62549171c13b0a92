package evaluator

import (
	"fmt"
	"io"

	"github.com/arnavsurve/mica/internal/interp/ast"
	"github.com/arnavsurve/mica/internal/interp/object"
)

var (
	trueValue  = &object.Boolean{Value: true}
	falseValue = &object.Boolean{Value: false}
	undefined  = &object.Undefined{}
)

// Evaluator walks a program's statements in order against its own
// Environment. Print output goes to out, one line per argument, in
// evaluation order.
type Evaluator struct {
	env *object.Environment
	out io.Writer
}

func New(out io.Writer) *Evaluator {
	return &Evaluator{
		env: object.NewEnvironment(),
		out: out,
	}
}

// Env exposes the binding table to embedders (REPL, tests).
func (ev *Evaluator) Env() *object.Environment {
	return ev.env
}

// Eval runs every statement in order and returns the value of the last
// one, or Undefined for an empty program. Evaluation halts at the first
// runtime error; effects of already-completed statements stand.
func (ev *Evaluator) Eval(program *ast.Program) (object.Object, error) {
	var result object.Object = undefined
	for _, stmt := range program.Statements {
		r, err := ev.EvalStatement(stmt)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}

func (ev *Evaluator) EvalStatement(stmt ast.Statement) (object.Object, error) {
	switch s := stmt.(type) {
	case *ast.ConstStatement:
		return ev.evalConstStatement(s)
	case *ast.CallStatement:
		return ev.evalCallStatement(s)
	case *ast.EmptyStatement:
		return undefined, nil
	default:
		return nil, fmt.Errorf("unhandled statement type %T", stmt)
	}
}

func (ev *Evaluator) evalConstStatement(stmt *ast.ConstStatement) (object.Object, error) {
	val, err := ev.evalExpression(stmt.Value)
	if err != nil {
		return nil, err
	}
	ev.env.Set(stmt.Name.Value, val)
	return val, nil
}

// Built-ins are dispatched by name. Only Print exists.
func (ev *Evaluator) evalCallStatement(stmt *ast.CallStatement) (object.Object, error) {
	switch stmt.Name {
	case "Print":
		for _, arg := range stmt.Arguments {
			val, err := ev.evalExpression(arg)
			if err != nil {
				return nil, err
			}
			fmt.Fprintln(ev.out, val.Inspect())
		}
		return undefined, nil
	default:
		return nil, &UnknownMethodError{Name: stmt.Name}
	}
}

func (ev *Evaluator) evalExpression(expr ast.Expression) (object.Object, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		// An unbound identifier is Undefined, never an error.
		if val, ok := ev.env.Get(e.Value); ok {
			return val, nil
		}
		return undefined, nil
	case *ast.IntegerLiteral:
		return &object.Integer{Value: e.Value}, nil
	case *ast.BooleanLiteral:
		return boolValue(e.Value), nil
	case *ast.UnaryExpression:
		return ev.evalUnaryExpression(e)
	case *ast.BinaryExpression:
		return ev.evalBinaryExpression(e)
	default:
		return nil, fmt.Errorf("unhandled expression type %T", expr)
	}
}

func (ev *Evaluator) evalUnaryExpression(expr *ast.UnaryExpression) (object.Object, error) {
	operand, err := ev.evalExpression(expr.Operand)
	if err != nil {
		return nil, err
	}

	switch expr.Operator {
	case "-":
		n, ok := operand.(*object.Integer)
		if !ok {
			return nil, &TypeMismatchError{Expected: object.IntegerType, Actual: operand.Type()}
		}
		return &object.Integer{Value: -n.Value}, nil
	case "+":
		n, ok := operand.(*object.Integer)
		if !ok {
			return nil, &TypeMismatchError{Expected: object.IntegerType, Actual: operand.Type()}
		}
		return n, nil
	case "!":
		b, ok := operand.(*object.Boolean)
		if !ok {
			return nil, &TypeMismatchError{Expected: object.BooleanType, Actual: operand.Type()}
		}
		return boolValue(!b.Value), nil
	default:
		return nil, fmt.Errorf("unhandled unary operator %q", expr.Operator)
	}
}

// Both operands evaluate fully, left before right, before the operator
// applies. Boolean operators do not short-circuit.
func (ev *Evaluator) evalBinaryExpression(expr *ast.BinaryExpression) (object.Object, error) {
	left, err := ev.evalExpression(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.evalExpression(expr.Right)
	if err != nil {
		return nil, err
	}

	lInt, lIsInt := left.(*object.Integer)
	rInt, rIsInt := right.(*object.Integer)
	if lIsInt && rIsInt {
		return ev.evalIntegerBinary(expr.Operator, lInt.Value, rInt.Value)
	}

	lBool, lIsBool := left.(*object.Boolean)
	rBool, rIsBool := right.(*object.Boolean)
	if lIsBool && rIsBool {
		return ev.evalBooleanBinary(expr.Operator, lBool.Value, rBool.Value)
	}

	return nil, &TypeMismatchError{Expected: left.Type(), Actual: right.Type()}
}

func (ev *Evaluator) evalIntegerBinary(op string, l, r int32) (object.Object, error) {
	switch op {
	case "+":
		return &object.Integer{Value: l + r}, nil
	case "-":
		return &object.Integer{Value: l - r}, nil
	case "*":
		return &object.Integer{Value: l * r}, nil
	case "/":
		if r == 0 {
			return nil, &DivisionByZeroError{Op: op}
		}
		return &object.Integer{Value: l / r}, nil
	case "%":
		if r == 0 {
			return nil, &DivisionByZeroError{Op: op}
		}
		return &object.Integer{Value: l % r}, nil
	case "==":
		return boolValue(l == r), nil
	case "!=":
		return boolValue(l != r), nil
	case ">":
		return boolValue(l > r), nil
	case "<":
		return boolValue(l < r), nil
	// "<=" computes greater-or-equal and ">=" computes less-or-equal.
	// Existing scripts depend on the labelled behavior; do not "fix"
	// without flagging it as a language change.
	case "<=":
		return boolValue(l >= r), nil
	case ">=":
		return boolValue(l <= r), nil
	default:
		return nil, &TypeMismatchError{Expected: object.IntegerType, Actual: object.BooleanType}
	}
}

func (ev *Evaluator) evalBooleanBinary(op string, l, r bool) (object.Object, error) {
	switch op {
	case "and":
		return boolValue(l && r), nil
	// "xor" evaluates as plain or. Same compatibility constraint as the
	// comparison operators above.
	case "or", "xor":
		return boolValue(l || r), nil
	default:
		return nil, &TypeMismatchError{Expected: object.BooleanType, Actual: object.IntegerType}
	}
}

func boolValue(v bool) *object.Boolean {
	if v {
		return trueValue
	}
	return falseValue
}
