package lexer_test

import (
	"svasm/pkg/lexer"
	"testing"
)

func TestComments(t *testing.T) {
	input := "OUT 1 ; prints one\n" +
		"; a full line comment\n" +
		"HALT ; trailing\n"

	mylexer := lexer.NewLexer(input)

	// Comments vanish but the newline ending their line survives, so
	// comment-only lines lex like blank lines.
	expectedTokens := []lexer.TokenType{
		lexer.OPCODE, lexer.NUM, lexer.NEWLINE,
		lexer.NEWLINE,
		lexer.OPCODE, lexer.NEWLINE,
		lexer.EOF,
	}

	for i, expected := range expectedTokens {
		token := mylexer.NextToken()
		if token.Type != expected {
			t.Errorf("Token %d: expected %s, got %s", i, expected, token.Type)
		}
	}
}
