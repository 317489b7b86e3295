package lexer

import (
	"fmt"
)

type TokenType int
type TokenCategory int

type Token struct {
	Type    TokenType // Type of the token
	Lexeme  string    // Actual string from source code
	Literal string    // Literal value (if applicable), empty string if not
	Value   int       // Numeric value for NUM and CHAR tokens
	Pos     Position  // Position in source code
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, literal string, Pos Position) Token {
	return Token{
		Type:    tokenType,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     Pos,
	}
}

const (
	NONE TokenCategory = iota
	MARKER
	KEYWORD
	IDENTIFIER
	LITERAL
	DELIMITER
)

const (
	EOF TokenType = iota // End of input

	SECTION // section marker line ("section data")
	TYPE    // constant type keyword (NUM, CHR)
	OPCODE  // instruction mnemonic (SET, JMP, ...)

	ID       // identifier (constant or label reference)
	LABEL    // label declaration ("loop:")
	NUM      // numeric literal, optionally negative
	CHAR     // character literal ('x')
	REGISTER // register letter a..h

	COMMA   // ,
	NEWLINE // end of line

	ILLEGAL // illegal token
)

// Mnemonics lists the instruction mnemonics recognized by the lexer. The
// assembler holds the authoritative opcode table; a word is only lexed as
// OPCODE when it appears here, so mnemonics are reserved words.
var Mnemonics = map[string]bool{
	"HALT": true, "SET": true, "PUSH": true, "POP": true,
	"EQ": true, "GT": true, "JMP": true, "JT": true, "JF": true,
	"ADD": true, "MULT": true, "MOD": true, "AND": true, "OR": true,
	"NOT": true, "RMEM": true, "WMEM": true, "CALL": true,
	"RET": true, "OUT": true, "IN": true, "NOOP": true,
}

// TokenToString converts a TokenType to its string representation
func (t Token) TokenToString() (string, bool) {
	mapping := map[TokenType]string{
		SECTION:  "section",
		TYPE:     "type",
		OPCODE:   "opcode",
		ID:       "id",
		LABEL:    "label",
		NUM:      "num",
		CHAR:     "char",
		REGISTER: "register",
		COMMA:    ",",
		NEWLINE:  "newline",
		EOF:      "$",
	}

	str, ok := mapping[t.Type]
	return str, ok
}

// String returns a string representation of the Token
func (t Token) String() string {
	if t.Literal == "" {

		return fmt.Sprintf("T_{%s, %v, nil, %s}",
			t.Type, t.Lexeme, t.Pos.String())
	}

	return fmt.Sprintf("T_{%s, %v, %q, %s}",
		t.Type, t.Lexeme, t.Literal, t.Pos.String())
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := (Token{Type: t}).TokenToString(); ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// GetCategory returns the category of the token
func (t TokenType) GetCategory() TokenCategory {
	switch t {
	case SECTION:
		return MARKER
	case TYPE, OPCODE:
		return KEYWORD
	case ID, LABEL:
		return IDENTIFIER
	case NUM, CHAR, REGISTER:
		return LITERAL
	case COMMA, NEWLINE:
		return DELIMITER
	default:
		return NONE
	}
}

// IsMnemonic checks if the given word is a reserved instruction mnemonic
func IsMnemonic(word string) bool {
	return Mnemonics[word]
}
