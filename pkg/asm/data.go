package asm

import (
	"svasm/pkg/lexer"
)

// Constant type keywords
const (
	TypeNum = "NUM"
	TypeChr = "CHR"
)

// CompileData parses the data section into the ordered constant table. Each
// declaration is exactly four tokens: identifier, type keyword, literal,
// newline. NUM constants are reduced into the value space; CHR constants
// store the character's code point. Blank lines between declarations carry
// no meaning.
func CompileData(sec *Section) ([]Constant, error) {
	var constants []Constant
	declared := make(map[string]bool)

	toks := sec.Tokens
	for i := 0; i < len(toks); {
		if toks[i].Type == lexer.NEWLINE {
			i++
			continue
		}

		if len(toks)-i < 4 {
			return nil, newError(MalformedConstantDeclaration, toks[i].Pos.Line,
				"truncated declaration")
		}

		name, typ, lit, end := toks[i], toks[i+1], toks[i+2], toks[i+3]

		if name.Type != lexer.ID {
			return nil, newError(MalformedConstantDeclaration, name.Pos.Line,
				"want identifier, got %s", name.Type)
		}
		if typ.Type != lexer.TYPE {
			return nil, newError(MalformedConstantDeclaration, typ.Pos.Line,
				"want type keyword, got %s", typ.Type)
		}

		var value int
		switch typ.Literal {
		case TypeNum:
			if lit.Type != lexer.NUM {
				return nil, newError(MalformedConstantDeclaration, lit.Pos.Line,
					"want numeric literal for %s constant, got %s", TypeNum, lit.Type)
			}
			value = Normalize(lit.Value)
		case TypeChr:
			if lit.Type != lexer.CHAR {
				return nil, newError(MalformedConstantDeclaration, lit.Pos.Line,
					"want character literal for %s constant, got %s", TypeChr, lit.Type)
			}
			value = lit.Value
		default:
			return nil, newError(MalformedConstantDeclaration, typ.Pos.Line,
				"unknown constant type %q", typ.Literal)
		}

		if end.Type != lexer.NEWLINE {
			return nil, newError(MalformedConstantDeclaration, end.Pos.Line,
				"missing newline after declaration")
		}

		if declared[name.Literal] {
			return nil, newError(DuplicateConstant, name.Pos.Line,
				"constant %q already declared", name.Literal)
		}
		declared[name.Literal] = true

		constants = append(constants, Constant{Name: name.Literal, Value: value})
		i += 4
	}

	return constants, nil
}
