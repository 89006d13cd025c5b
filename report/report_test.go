/*
File    : lumen/report/report_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/lumen/lexer"
)

func TestError_SetsHadError(t *testing.T) {
	r := New()
	r.Error(3, "bad token")
	assert.True(t, r.HadError)
	assert.False(t, r.HadRuntimeError)
}

func TestTokenError_AtEndVsAtLexeme(t *testing.T) {
	r := New()
	r.TokenError(lexer.Token{Type: lexer.EOF_TYPE, Line: 1}, "expect expression")
	assert.True(t, r.HadError)

	r2 := New()
	r2.TokenError(lexer.Token{Type: lexer.IDENTIFIER, Lexeme: "x", Line: 2}, "unexpected token")
	assert.True(t, r2.HadError)
}

func TestRuntimeError_SetsHadRuntimeError(t *testing.T) {
	r := New()
	r.RuntimeError(fakeRuntimeError{msg: "division by zero", line: 5})
	assert.True(t, r.HadRuntimeError)
	assert.False(t, r.HadError)
}

func TestReset_ClearsBothFlags(t *testing.T) {
	r := New()
	r.Error(1, "x")
	r.RuntimeError(fakeRuntimeError{msg: "y", line: 1})
	r.Reset()
	assert.False(t, r.HadError)
	assert.False(t, r.HadRuntimeError)
}

type fakeRuntimeError struct {
	msg  string
	line int
}

func (f fakeRuntimeError) Error() string      { return f.msg }
func (f fakeRuntimeError) Token() lexer.Token { return lexer.Token{Line: f.line} }
