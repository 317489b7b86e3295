package asm

import (
	"svasm/pkg/lexer"
)

// ValidateSymbols collects every label declared in the code section, in
// source order. A label name must be unique, must not shadow a constant,
// and the entry point label must exist. Addresses are not known yet; they
// are bound later by ComputeAddresses.
func ValidateSymbols(sec *Section, constants []Constant) ([]string, error) {
	constNames := make(map[string]bool, len(constants))
	for _, c := range constants {
		constNames[c.Name] = true
	}

	var labels []string
	declared := make(map[string]bool)

	for _, tok := range sec.Tokens {
		if tok.Type != lexer.LABEL {
			continue
		}

		name := tok.Literal
		if declared[name] {
			return nil, newError(DuplicateLabel, tok.Pos.Line,
				"label %q already declared", name)
		}
		if constNames[name] {
			return nil, newError(AmbiguousSymbol, tok.Pos.Line,
				"%q is both a constant and a label", name)
		}

		declared[name] = true
		labels = append(labels, name)
	}

	if !declared[EntryPoint] {
		return nil, newError(MissingEntryPoint, NoLine,
			"no %q label in code section", EntryPoint)
	}

	return labels, nil
}
