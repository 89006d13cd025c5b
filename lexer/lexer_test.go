/*
File    : lumen/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeReporter records Error calls instead of writing to stderr, so tests
// can assert on exactly what the lexer reported.
type fakeReporter struct {
	lines    []int
	messages []string
}

func (f *fakeReporter) Error(line int, message string) {
	f.lines = append(f.lines, line)
	f.messages = append(f.messages, message)
}

func scanAll(t *testing.T, src string) ([]Token, *fakeReporter) {
	t.Helper()
	rep := &fakeReporter{}
	tokens := New(src, rep).ScanTokens()
	return tokens, rep
}

func typesOf(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestScanTokens_Operators(t *testing.T) {
	tokens, rep := scanAll(t, "( ) { } , . - + ; * / ! != = == < <= > >=")
	assert.Empty(t, rep.messages)
	assert.Equal(t, []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT, MINUS,
		PLUS, SEMICOLON, STAR, SLASH, BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL,
		LESS, LESS_EQUAL, GREATER, GREATER_EQUAL, EOF_TYPE,
	}, typesOf(tokens))
}

func TestScanTokens_Keywords(t *testing.T) {
	tokens, rep := scanAll(t, "and class else false for fun if nil or print return super this true var while notAKeyword")
	assert.Empty(t, rep.messages)
	got := typesOf(tokens)
	assert.Equal(t, AND_KEY, got[0])
	assert.Equal(t, WHILE_KEY, got[15])
	assert.Equal(t, IDENTIFIER, got[16])
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	tokens, _ := scanAll(t, "123 45.67")
	assert.Equal(t, float64(123), tokens[0].Literal)
	assert.Equal(t, float64(45.67), tokens[1].Literal)
}

func TestScanTokens_TrailingDotIsNotPartOfNumber(t *testing.T) {
	tokens, _ := scanAll(t, "123.")
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, "123", tokens[0].Lexeme)
	assert.Equal(t, DOT, tokens[1].Type)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	tokens, rep := scanAll(t, `"hello world"`)
	assert.Empty(t, rep.messages)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanTokens_StringLiteralSpansLines(t *testing.T) {
	tokens, _ := scanAll(t, "\"line one\nline two\"\nidentifier")
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "line one\nline two", tokens[0].Literal)
	assert.Equal(t, 3, tokens[1].Line)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, rep := scanAll(t, `"never closed`)
	assert.True(t, len(rep.messages) >= 1)
	assert.Contains(t, rep.messages[0], "Unterminated string")
}

func TestScanTokens_UnknownCharacter(t *testing.T) {
	_, rep := scanAll(t, "@")
	assert.Equal(t, []string{"Unexpected character."}, rep.messages)
}

func TestScanTokens_LineComment(t *testing.T) {
	tokens, rep := scanAll(t, "var a = 1; // trailing comment\nvar b = 2;")
	assert.Empty(t, rep.messages)
	assert.Equal(t, 2, tokens[len(tokens)-2].Line)
}

func TestScanTokens_BlockComment(t *testing.T) {
	tokens, rep := scanAll(t, "1 /* a\nblock\ncomment */ 2")
	assert.Empty(t, rep.messages)
	assert.Equal(t, float64(1), tokens[0].Literal)
	assert.Equal(t, float64(2), tokens[1].Literal)
	assert.Equal(t, 3, tokens[1].Line)
}
