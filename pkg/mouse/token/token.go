// Package token classifies raw text into typed tokens.
package token

import "strings"

// Type is the lexical class of a token.
type Type string

const (
	Word        Type = "word"
	Number      Type = "number"
	Punctuation Type = "punctuation"
	Whitespace  Type = "whitespace"
	Special     Type = "special"
)

// Valid reports whether t is one of the five known classes.
func (t Type) Valid() bool {
	switch t {
	case Word, Number, Punctuation, Whitespace, Special:
		return true
	}
	return false
}

// Token is a maximal classified substring of the input text.
type Token struct {
	Value string `json:"value"`
	Type  Type   `json:"type"`
}

// Values returns the value of every token, in order.
func Values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Value
	}
	return out
}

// Join concatenates token values with no separator.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Value)
	}
	return b.String()
}
