/*
File    : lumen/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lumen/lexer"
	"github.com/akashmaji946/lumen/parser"
	"github.com/akashmaji946/lumen/report"
	"github.com/akashmaji946/lumen/resolver"
)

// run lexes, parses, resolves, and evaluates src, returning whatever it
// printed and the reporter used throughout, so tests can assert on either
// successful output or a reported failure.
func run(t *testing.T, src string) (string, *report.Reporter) {
	t.Helper()
	rep := report.New()

	lx := lexer.New(src, rep)
	tokens := lx.ScanTokens()

	p := parser.New(tokens, rep)
	statements := p.Parse()
	require.False(t, rep.HadError, "unexpected parse error")

	interp := New(rep)
	res := resolver.New(interp, rep)
	res.Resolve(statements)
	require.False(t, rep.HadError, "unexpected resolve error")

	var out bytes.Buffer
	interp.SetWriter(&out)
	interp.Interpret(statements)

	return out.String(), rep
}

func TestInterpret_ArithmeticPrecedence(t *testing.T) {
	out, rep := run(t, "print 1 + 2 * 3;")
	assert.False(t, rep.HadRuntimeError)
	assert.Equal(t, "7\n", out)
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, _ := run(t, `print "foo" + "bar";`)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpret_NumberInspectStripsTrailingZero(t *testing.T) {
	out, _ := run(t, "print 6 / 2;")
	assert.Equal(t, "3\n", out)
}

func TestInterpret_VarDeclarationAndAssignment(t *testing.T) {
	out, _ := run(t, `
		var a = 1;
		a = a + 1;
		print a;
	`)
	assert.Equal(t, "2\n", out)
}

func TestInterpret_BlockScopingShadowsOuter(t *testing.T) {
	out, _ := run(t, `
		var a = "outer";
		{
			var a = "inner";
			print a;
		}
		print a;
	`)
	assert.Equal(t, "inner\nouter\n", out)
}

func TestInterpret_IfElse(t *testing.T) {
	out, _ := run(t, `
		if (1 < 2) {
			print "yes";
		} else {
			print "no";
		}
	`)
	assert.Equal(t, "yes\n", out)
}

func TestInterpret_WhileLoop(t *testing.T) {
	out, _ := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_ForLoopDesugars(t *testing.T) {
	out, _ := run(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_FunctionCallAndReturn(t *testing.T) {
	out, _ := run(t, `
		fun add(a, b) {
			return a + b;
		}
		print add(2, 3);
	`)
	assert.Equal(t, "5\n", out)
}

// TestInterpret_ReturnInsideNestedBlockStopsFunctionBody guards the
// ReturnSignal-propagation bug: a "return" nested inside an "if" inside a
// function body must halt the rest of the body, not just the inner block.
func TestInterpret_ReturnInsideNestedBlockStopsFunctionBody(t *testing.T) {
	out, _ := run(t, `
		fun first(n) {
			if (n > 0) {
				return "positive";
			}
			print "unreachable";
			return "non-positive";
		}
		print first(5);
	`)
	assert.Equal(t, "positive\n", out)
}

func TestInterpret_ClosureCapturesEnvironmentByReference(t *testing.T) {
	out, _ := run(t, `
		fun makeCounter() {
			var count = 0;
			fun inc() {
				count = count + 1;
				return count;
			}
			return inc;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterpret_AnonymousFunctionExpressionIsCallable(t *testing.T) {
	out, rep := run(t, `
		var square = fun (x) { return x * x; };
		print square(5);
	`)
	assert.False(t, rep.HadRuntimeError)
	assert.Equal(t, "25\n", out)
}

func TestInterpret_AnonymousFunctionInspectHasNoName(t *testing.T) {
	out, rep := run(t, `
		var f = fun () {};
		print f;
	`)
	assert.False(t, rep.HadRuntimeError)
	assert.Equal(t, "<fn>\n", out)
}

func TestInterpret_NativeClockIsCallable(t *testing.T) {
	out, rep := run(t, `
		var t = clock();
		print t > 0;
	`)
	assert.False(t, rep.HadRuntimeError)
	assert.Equal(t, "true\n", out)
}

func TestInterpret_AddingNumberAndStringIsRuntimeError(t *testing.T) {
	_, rep := run(t, `print 1 + "a";`)
	assert.True(t, rep.HadRuntimeError)
}

func TestInterpret_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, rep := run(t, `print undeclared;`)
	assert.True(t, rep.HadRuntimeError)
}

func TestInterpret_EqualityNeverCrossesTypes(t *testing.T) {
	out, _ := run(t, `print 1 == "1";`)
	assert.Equal(t, "false\n", out)
}
