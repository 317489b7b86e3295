package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

type Lexer struct {
	input        string // input string to be tokenized
	length       int    // length of the input string
	position     int    // current position in the input string
	line         int    // current line number for error reporting
	column       int    // current column number for error reporting
	currentToken Token  // current token for context
}

// Create a new lexer instance
func NewLexer(s string) *Lexer {
	return &Lexer{
		input:        s,
		length:       len(s),
		position:     0,
		line:         1,
		column:       1,
		currentToken: Token{},
	}
}

// Get the next token from the input. Newlines are significant in assembly
// source and come back as NEWLINE tokens; spaces, tabs and ';' comments are
// skipped.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	// End of input
	if l.position >= l.length {
		tok := NewToken(EOF, "", "", l.currentPosition())
		l.currentToken = tok
		return tok
	}

	// Regex match the first token it sees from the remaining input from current position to the end
	remaining := l.input[l.position:]
	token_type, lexeme, matched := MatchToken(remaining)

	if !matched || token_type == EOF {
		if token_type == EOF && lexeme != "" {
			l.advance(len(lexeme))
			return l.NextToken()
		}

		char := string(l.input[l.position])
		pos := l.currentPosition()
		l.advance(1)

		tok := NewToken(ILLEGAL, char, "", pos)
		l.currentToken = tok
		return tok
	}

	pos := l.currentPosition()
	tok := l.buildToken(token_type, lexeme, pos)

	l.advance(len(lexeme))
	l.currentToken = tok

	return tok
}

// buildToken derives the literal and numeric value of a matched lexeme.
// Words that match the reserved mnemonic set are retyped from ID to OPCODE
// here; mnemonics are matched case-insensitively.
func (l *Lexer) buildToken(tokenType TokenType, lexeme string, pos Position) Token {
	literal := lexeme

	switch tokenType {
	case SECTION:
		// "section <name>" keeps only the name as its literal
		fields := strings.Fields(lexeme)
		literal = fields[len(fields)-1]
	case LABEL:
		literal = strings.TrimSuffix(lexeme, ":")
	case CHAR:
		literal = lexeme[1 : len(lexeme)-1]
	case ID:
		if IsMnemonic(strings.ToUpper(lexeme)) {
			tokenType = OPCODE
			literal = strings.ToUpper(lexeme)
		}
	}

	tok := NewToken(tokenType, lexeme, literal, pos)

	switch tokenType {
	case NUM:
		n, err := strconv.Atoi(lexeme)
		if err != nil {
			return NewToken(ILLEGAL, lexeme, "", pos)
		}
		tok.Value = n
	case CHAR:
		tok.Value = int(unescapeChar(literal))
	}

	return tok
}

// Tokenize consumes the whole input and returns the token stream. An ILLEGAL
// token aborts with an error carrying its position. A missing final newline
// is supplied so that a source file not ending in '\n' still lexes into
// complete lines.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		if tok.Type == ILLEGAL {
			return nil, fmt.Errorf("illegal character %q at line %d, column %d",
				tok.Lexeme, tok.Pos.Line, tok.Pos.Column)
		}
		tokens = append(tokens, tok)
	}

	if n := len(tokens); n > 0 && tokens[n-1].Type != NEWLINE {
		tokens = append(tokens, NewToken(NEWLINE, "\n", "\n", l.currentPosition()))
	}

	return tokens, nil
}

// View next token without advancing the position
func (l *Lexer) Peek() Token {
	// save state
	cpos := l.position
	cline := l.line
	ccol := l.column
	ctok := l.currentToken

	token := l.NextToken()

	// restore state
	l.position = cpos
	l.line = cline
	l.column = ccol
	l.currentToken = ctok

	return token
}

// Check if there are more characters to read
func (l *Lexer) HasMore() bool {
	return l.position < l.length
}

// Skip spaces, tabs and comments. Newlines terminate instructions and are
// never skipped; a comment runs to the end of its line but leaves the '\n'
// for NextToken to emit.
func (l *Lexer) skipWhitespace() {
	for l.position < l.length {
		ch := l.input[l.position]

		if ch == ' ' || ch == '\t' {
			l.column++
			l.position++

		} else if ch == ';' {
			for l.position < l.length && l.input[l.position] != '\n' {
				l.column++
				l.position++
			}
		} else {
			break
		}
	}
}

// Advance the lexer position by n characters
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.position >= l.length {
			break
		}

		if l.input[l.position] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}

		l.position++
	}
}

// Get the current position of the lexer
func (l *Lexer) currentPosition() Position {
	return Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}

// unescapeChar decodes the body of a character literal (quotes stripped)
func unescapeChar(s string) rune {
	if len(s) == 2 && s[0] == '\\' {
		switch s[1] {
		case 'n':
			return '\n'
		case 't':
			return '\t'
		case 'r':
			return '\r'
		case '0':
			return 0
		default:
			return rune(s[1])
		}
	}

	return rune(s[0])
}
