/*
File    : lumen/object/object.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object defines Lumen's runtime value model: the small set of
// types a Lumen expression can evaluate to (nil, boolean, number, string,
// callable), plus the two sentinel values (Error and ReturnSignal) the
// evaluator threads through ordinary return values instead of using Go
// panics for control flow — mirroring how the teacher's own evaluator
// checks for an error/return result inline at every propagation point
// rather than unwinding the Go call stack.
package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/lumen/lexer"
)

// Type identifies a runtime value's kind for diagnostics and type checks.
type Type string

const (
	NilType      Type = "nil"
	BooleanType  Type = "boolean"
	NumberType   Type = "number"
	StringType   Type = "string"
	FunctionType Type = "function"
	ErrorType    Type = "error"
	ReturnType   Type = "return"
)

// Object is the interface every Lumen runtime value implements.
type Object interface {
	Type() Type
	// Inspect returns the value the way Lumen's "print" statement and
	// stringify rules render it.
	Inspect() string
}

// Callable is implemented by anything that can appear as the callee of a
// Call expression: user-defined closures (function.Function) and native
// functions (NativeFunction). Kept as a small duck-typed interface here,
// rather than object importing function, so that function can import
// object without creating a cycle.
type Callable interface {
	Object
	Arity() int
}

// Nil is Lumen's singleton null value.
type Nil struct{}

func (Nil) Type() Type      { return NilType }
func (Nil) Inspect() string { return "nil" }

// NilValue is the single shared Nil instance, analogous to Go's nil.
var NilValue = Nil{}

// Boolean wraps a Go bool.
type Boolean struct{ Value bool }

func (b Boolean) Type() Type      { return BooleanType }
func (b Boolean) Inspect() string { return strconv.FormatBool(b.Value) }

// Number wraps a float64 — Lumen has a single numeric type, as spec.md
// requires.
type Number struct{ Value float64 }

func (n Number) Type() Type { return NumberType }

// Inspect strips a trailing ".0" from whole-valued numbers, matching the
// distillation source's Interpreter.stringify.
func (n Number) Inspect() string {
	text := strconv.FormatFloat(n.Value, 'f', -1, 64)
	if strings.HasSuffix(text, ".0") {
		text = strings.TrimSuffix(text, ".0")
	}
	return text
}

// String wraps a Go string.
type String struct{ Value string }

func (s String) Type() Type      { return StringType }
func (s String) Inspect() string { return s.Value }

// NativeFunction is a host-implemented callable, such as clock().
type NativeFunction struct {
	NameStr string
	ArityN  int
	Fn      func(args []Object) (Object, error)
}

func (f *NativeFunction) Type() Type      { return FunctionType }
func (f *NativeFunction) Inspect() string { return fmt.Sprintf("<native fn %s>", f.NameStr) }
func (f *NativeFunction) Arity() int      { return f.ArityN }

// Error is a runtime error carried as an ordinary Object so that eval's
// statement/expression evaluation can check for it with a type assertion
// at every step instead of unwinding via panic/recover. Token identifies
// where the failure happened, for the host reporter's "[line N]" suffix.
type Error struct {
	Message string
	Tok     lexer.Token
}

func (e *Error) Type() Type      { return ErrorType }
func (e *Error) Inspect() string { return e.Message }
func (e *Error) Error() string   { return e.Message }
func (e *Error) Token() lexer.Token { return e.Tok }

// NewError builds a runtime Error located at tok.
func NewError(tok lexer.Token, format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Tok: tok}
}

// ReturnSignal carries a function's return value back up through the
// statement-execution loop to the call site, the same sentinel-value
// propagation idiom as Error.
type ReturnSignal struct {
	Value Object
}

func (r *ReturnSignal) Type() Type      { return ReturnType }
func (r *ReturnSignal) Inspect() string { return r.Value.Inspect() }

// IsError reports whether obj is a runtime error.
func IsError(obj Object) bool {
	_, ok := obj.(*Error)
	return ok
}

// IsTruthy implements Lumen's truthiness rule: everything is truthy
// except nil and the boolean false.
func IsTruthy(obj Object) bool {
	switch v := obj.(type) {
	case Nil:
		return false
	case Boolean:
		return v.Value
	default:
		return true
	}
}

// Equal implements Lumen's "==" rule: nil only equals nil, numbers and
// strings and booleans compare by value, and values of different dynamic
// types are never equal (so "1 == "1"" is false, not a type error).
func Equal(a, b Object) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av.Value == bv.Value
	case Number:
		bv, ok := b.(Number)
		return ok && av.Value == bv.Value
	case String:
		bv, ok := b.(String)
		return ok && av.Value == bv.Value
	default:
		return false
	}
}
