/*
File    : lumen/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/lumen/function"
	"github.com/akashmaji946/lumen/lexer"
	"github.com/akashmaji946/lumen/object"
	"github.com/akashmaji946/lumen/parser"
)

// VisitLiteralExpr converts the lexer's decoded Go value (float64, string,
// bool, or nil) into the matching object.Object.
func (d *exprDispatcher) VisitLiteralExpr(expr *parser.Literal) (interface{}, error) {
	switch v := expr.Value.(type) {
	case float64:
		return object.Number{Value: v}, nil
	case string:
		return object.String{Value: v}, nil
	case bool:
		return object.Boolean{Value: v}, nil
	case nil:
		return object.NilValue, nil
	default:
		return object.NilValue, nil
	}
}

func (d *exprDispatcher) VisitGroupingExpr(expr *parser.Grouping) (interface{}, error) {
	return d.interp.eval(expr.Expression), nil
}

// VisitUnaryExpr evaluates "-" (numeric negation, requires a Number
// operand) and "!" (logical not, coerces via IsTruthy).
func (d *exprDispatcher) VisitUnaryExpr(expr *parser.Unary) (interface{}, error) {
	right := d.interp.eval(expr.Right)
	if object.IsError(right) {
		return right, nil
	}

	switch expr.Operator.Type {
	case lexer.MINUS:
		num, ok := right.(object.Number)
		if !ok {
			return object.NewError(expr.Operator, "Operand must be a number."), nil
		}
		return object.Number{Value: -num.Value}, nil
	case lexer.BANG:
		return object.Boolean{Value: !object.IsTruthy(right)}, nil
	}
	return object.NilValue, nil
}

// VisitBinaryExpr evaluates both operands unconditionally, then dispatches
// on Operator. "+" is overloaded for number addition and string
// concatenation, matching spec.md; "-", "*", "/" and the comparison
// operators require two numbers, and the equality operators follow
// Lumen's cross-type-is-never-equal rule via object.Equal.
func (d *exprDispatcher) VisitBinaryExpr(expr *parser.Binary) (interface{}, error) {
	left := d.interp.eval(expr.Left)
	if object.IsError(left) {
		return left, nil
	}
	right := d.interp.eval(expr.Right)
	if object.IsError(right) {
		return right, nil
	}

	switch expr.Operator.Type {
	case lexer.PLUS:
		if ln, ok := left.(object.Number); ok {
			if rn, ok := right.(object.Number); ok {
				return object.Number{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(object.String); ok {
			if rs, ok := right.(object.String); ok {
				return object.String{Value: ls.Value + rs.Value}, nil
			}
		}
		return object.NewError(expr.Operator, "Operands must be two numbers or two strings."), nil
	case lexer.MINUS:
		ln, rn, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return err, nil
		}
		return object.Number{Value: ln - rn}, nil
	case lexer.STAR:
		ln, rn, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return err, nil
		}
		return object.Number{Value: ln * rn}, nil
	case lexer.SLASH:
		// Division does not special-case a zero divisor: IEEE-754 float
		// division applies, same as the distillation source's "left /
		// right" with no zero check.
		ln, rn, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return err, nil
		}
		return object.Number{Value: ln / rn}, nil
	case lexer.GREATER:
		ln, rn, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return err, nil
		}
		return object.Boolean{Value: ln > rn}, nil
	case lexer.GREATER_EQUAL:
		ln, rn, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return err, nil
		}
		return object.Boolean{Value: ln >= rn}, nil
	case lexer.LESS:
		ln, rn, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return err, nil
		}
		return object.Boolean{Value: ln < rn}, nil
	case lexer.LESS_EQUAL:
		ln, rn, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return err, nil
		}
		return object.Boolean{Value: ln <= rn}, nil
	case lexer.EQUAL_EQUAL:
		return object.Boolean{Value: object.Equal(left, right)}, nil
	case lexer.BANG_EQUAL:
		return object.Boolean{Value: !object.Equal(left, right)}, nil
	}
	return object.NilValue, nil
}

// numberOperands requires both left and right to be Number, returning a
// runtime *object.Error located at op when they are not.
func numberOperands(op lexer.Token, left, right object.Object) (float64, float64, *object.Error) {
	ln, lok := left.(object.Number)
	rn, rok := right.(object.Number)
	if !lok || !rok {
		return 0, 0, object.NewError(op, "Operands must be numbers.")
	}
	return ln.Value, rn.Value, nil
}

// VisitLogicalExpr short-circuits "and"/"or", yielding the deciding
// operand's own value rather than a coerced boolean.
func (d *exprDispatcher) VisitLogicalExpr(expr *parser.Logical) (interface{}, error) {
	left := d.interp.eval(expr.Left)
	if object.IsError(left) {
		return left, nil
	}

	if expr.Operator.Type == lexer.OR_KEY {
		if object.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !object.IsTruthy(left) {
			return left, nil
		}
	}
	return d.interp.eval(expr.Right), nil
}

func (d *exprDispatcher) VisitVariableExpr(expr *parser.Variable) (interface{}, error) {
	value, ok := d.interp.lookUpVariable(expr.Name, expr)
	if !ok {
		return object.NewError(expr.Name, "Undefined variable '%s'.", expr.Name.Lexeme), nil
	}
	return value, nil
}

// VisitAssignExpr evaluates Value and stores it at the binding the
// resolver located, or falls back to a dynamic global assignment for
// unresolved (global-scope) names.
func (d *exprDispatcher) VisitAssignExpr(expr *parser.Assign) (interface{}, error) {
	value := d.interp.eval(expr.Value)
	if object.IsError(value) {
		return value, nil
	}

	if distance, ok := d.interp.locals[expr]; ok {
		d.interp.Environment.AssignAt(distance, expr.Name.Lexeme, value)
		return value, nil
	}
	if ok := d.interp.Globals.Assign(expr.Name.Lexeme, value); !ok {
		return object.NewError(expr.Name, "Undefined variable '%s'.", expr.Name.Lexeme), nil
	}
	return value, nil
}

// VisitCallExpr evaluates Callee and Arguments, checks arity, and
// dispatches to the callable's own Call/Fn implementation.
func (d *exprDispatcher) VisitCallExpr(expr *parser.Call) (interface{}, error) {
	callee := d.interp.eval(expr.Callee)
	if object.IsError(callee) {
		return callee, nil
	}

	args := make([]object.Object, 0, len(expr.Arguments))
	for _, argExpr := range expr.Arguments {
		arg := d.interp.eval(argExpr)
		if object.IsError(arg) {
			return arg, nil
		}
		args = append(args, arg)
	}

	callable, ok := callee.(object.Callable)
	if !ok {
		return object.NewError(expr.Paren, "Can only call functions and classes."), nil
	}
	if len(args) != callable.Arity() {
		return object.NewError(expr.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args)), nil
	}

	switch fn := callable.(type) {
	case *function.Function:
		return fn.Call(d.interp, args), nil
	case *object.NativeFunction:
		result, err := fn.Fn(args)
		if err != nil {
			return object.NewError(expr.Paren, "%s", err.Error()), nil
		}
		return result, nil
	default:
		return object.NewError(expr.Paren, "Can only call functions and classes."), nil
	}
}

// VisitFunctionExpr builds an anonymous closure over the current
// environment, exactly like VisitFunctionStmt but yielded as a value
// rather than bound to a name in scope.
func (d *exprDispatcher) VisitFunctionExpr(expr *parser.FunctionExpr) (interface{}, error) {
	fn := &function.Function{
		Params: expr.Params,
		Body:   expr.Body,
		Env:    d.interp.Environment,
	}
	return fn, nil
}
