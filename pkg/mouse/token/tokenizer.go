package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// punctuation holds the characters that always form single-character tokens.
const punctuation = `.,!?;:"()[]{}`

// Tokenize splits text into typed tokens. At each position the longest run of
// one class is taken, trying word, number, punctuation, whitespace and special
// in that order. Concatenating the values reproduces text byte for byte.
func Tokenize(text string) []Token {
	tokens := make([]Token, 0, len(text)/4+1)

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		class := classify(r)

		end := i + size
		if class != Punctuation {
			for end < len(text) {
				next, n := utf8.DecodeRuneInString(text[end:])
				if classify(next) != class {
					break
				}
				end += n
			}
		}

		tokens = append(tokens, Token{Value: text[i:end], Type: class})
		i = end
	}

	return tokens
}

// TokenizeBasic splits text on whitespace runs and types every piece as a
// word. Whitespace is discarded, so the result is not lossless.
func TokenizeBasic(text string) []Token {
	fields := strings.FieldsFunc(text, isSpace)
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Token{Value: f, Type: Word}
	}
	return tokens
}

func classify(r rune) Type {
	switch {
	case isWordRune(r):
		return Word
	case r >= '0' && r <= '9':
		return Number
	case strings.ContainsRune(punctuation, r):
		return Punctuation
	case isSpace(r):
		return Whitespace
	default:
		return Special
	}
}

// isWordRune accepts ASCII letters and the apostrophe only.
func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '\''
}

// isSpace follows unicode.IsSpace and additionally treats the byte order mark
// as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
