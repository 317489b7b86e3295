package asm

import (
	"svasm/pkg/lexer"
)

// Section names required in every program
const (
	DataSection = "data"
	CodeSection = "code"
)

// Section is a named contiguous run of tokens delimited by a section marker.
type Section struct {
	Name      string
	StartLine int
	Tokens    []lexer.Token
}

// SplitSections partitions the token stream at every section marker. The
// marker and the newline ending its line are dropped from the section body.
// Exactly the "data" and "code" sections must exist.
func SplitSections(tokens []lexer.Token) (map[string]*Section, error) {
	sections := make(map[string]*Section)
	count := 0

	var current *Section
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if tok.Type == lexer.SECTION {
			current = &Section{Name: tok.Literal, StartLine: tok.Pos.Line}
			sections[tok.Literal] = current
			count++

			if i+1 < len(tokens) && tokens[i+1].Type == lexer.NEWLINE {
				i++
			}
			continue
		}

		if current == nil {
			// Only blank lines may precede the first marker
			if tok.Type == lexer.NEWLINE {
				continue
			}
			return nil, newError(InvalidToken, tok.Pos.Line,
				"%q before any section marker", tok.Lexeme)
		}

		current.Tokens = append(current.Tokens, tok)
	}

	if _, ok := sections[DataSection]; !ok {
		return nil, newError(MissingSection, NoLine, "no %q section", DataSection)
	}
	if _, ok := sections[CodeSection]; !ok {
		return nil, newError(MissingSection, NoLine, "no %q section", CodeSection)
	}
	if count != 2 {
		return nil, newError(UnsupportedSectionCount, NoLine,
			"found %d sections, want exactly 2", count)
	}

	return sections, nil
}
