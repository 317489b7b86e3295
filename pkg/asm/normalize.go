package asm

import (
	"svasm/pkg/lexer"
)

// Normalize reduces a numeric literal into [0, ValueSpace), wrapping
// negative values around (-1 becomes 32767). It is applied to literals
// exactly once and never to resolved register or label addresses, which
// legitimately live outside the value space.
func Normalize(n int) int {
	for n < 0 {
		n += ValueSpace
	}

	return n % ValueSpace
}

// RegisterAddress maps a register letter a..h to its machine address.
// Register letters are case-insensitive.
func RegisterAddress(r byte) int {
	return RegisterBase + int((r|0x20)-'a')
}

// NormalizeCode rewrites each code token independently of its neighbors:
// numeric literals are normalized, character literals become their code
// point, register mnemonics become their register address, and identifiers
// resolve to a constant's value - or stay symbolic when they name a label,
// to be resolved once addresses are computed. Operand arity is deliberately
// not checked here; that belongs to the encoder.
func NormalizeCode(sec *Section, constants []Constant, labels []string) ([]lexer.Token, error) {
	constValues := make(map[string]int, len(constants))
	for _, c := range constants {
		constValues[c.Name] = c.Value
	}

	labelNames := make(map[string]bool, len(labels))
	for _, name := range labels {
		labelNames[name] = true
	}

	out := make([]lexer.Token, 0, len(sec.Tokens))
	for _, tok := range sec.Tokens {
		switch tok.Type {
		case lexer.NUM:
			tok.Value = Normalize(tok.Value)

		case lexer.CHAR:
			// Value already holds the code point
			tok.Type = lexer.NUM

		case lexer.REGISTER:
			tok.Type = lexer.NUM
			tok.Value = RegisterAddress(tok.Literal[0])

		case lexer.ID:
			// Constants first, then labels
			if value, ok := constValues[tok.Literal]; ok {
				tok.Type = lexer.NUM
				tok.Value = value
			} else if !labelNames[tok.Literal] {
				return nil, newError(UndeclaredSymbol, tok.Pos.Line,
					"%q is not a declared constant or label", tok.Literal)
			}
			// Label references stay ID tokens until addresses are known
		}

		out = append(out, tok)
	}

	return out, nil
}
