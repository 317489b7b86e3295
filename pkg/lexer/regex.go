package lexer

import (
	"regexp"
)

type tokenRegex struct {
	Pattern *regexp.Regexp
	Raw     string
}

// Token regex patterns
var tokenRegexes = map[TokenType]tokenRegex{
	SECTION: {regexp.MustCompile(`^section[ \t]+[a-zA-Z_][a-zA-Z0-9_]*`), `^section[ \t]+[a-zA-Z_][a-zA-Z0-9_]*`},
	LABEL:   {regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*:`), `^[a-zA-Z_][a-zA-Z0-9_]*:`},
	TYPE:    {regexp.MustCompile(`^(NUM|CHR)\b`), `^(NUM|CHR)\b`},

	REGISTER: {regexp.MustCompile(`^[a-hA-H]\b`), `^[a-hA-H]\b`},
	NUM:      {regexp.MustCompile(`^-?\d+`), `^-?\d+`},
	CHAR:     {regexp.MustCompile(`^'(\\.|[^'\\])'`), `^'(\\.|[^'\\])'`},
	ID:       {regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`), `^[a-zA-Z_][a-zA-Z0-9_]*`},

	COMMA:   {regexp.MustCompile(`^,`), `^,`},
	NEWLINE: {regexp.MustCompile(`^\r?\n`), `^\r?\n`},
}

var (
	whitespaceRegex = regexp.MustCompile(`^[ \t]+`)
	commentRegex    = regexp.MustCompile(`^;[^\n]*`)
)

// Token precedence order for matching (longer patterns first; LABEL must win
// over ID and REGISTER, SECTION over ID)
var tokenPrecedenceOrder = []TokenType{
	SECTION, LABEL, TYPE, REGISTER, NUM, CHAR, ID, COMMA, NEWLINE,
}

// Get the regex pattern for a token type
func (t TokenType) Regex() *regexp.Regexp {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Pattern
	}

	return nil
}

// Get the raw regex string for a token type
func (t TokenType) RawRegex() string {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Raw
	}

	return ""
}

// Match the longest token at the start of the string
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	} else if match := whitespaceRegex.FindString(s); match != "" {
		return EOF, match, true
	} else if match := commentRegex.FindString(s); match != "" {
		return EOF, match, true
	}

	for _, tokenType := range tokenPrecedenceOrder {
		if regex, ok := tokenRegexes[tokenType]; ok {
			if match := regex.Pattern.FindString(s); match != "" {
				return tokenType, match, true
			}
		}
	}

	return ILLEGAL, string(s[0]), false
}
