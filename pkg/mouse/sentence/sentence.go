// Package sentence infers sentence boundaries over a token sequence.
package sentence

import "github.com/cognicore/mouse/pkg/mouse/token"

// Annotated is a token tagged with the index of the sentence it belongs to.
type Annotated struct {
	token.Token
	SentenceID int `json:"sentenceId"`
}

// Sentence is a contiguous run of tokens sharing one sentence index.
type Sentence struct {
	ID     int           `json:"id"`
	Tokens []token.Token `json:"tokens"`
	Text   string        `json:"text"`
}

// Detect assigns a sentence index to every token in a single pass.
//
// A '.', '!' or '?' punctuation token closes the current sentence when the
// next non-whitespace token is a word starting with an uppercase ASCII letter,
// or when nothing follows it. Abbreviations are not special-cased, so
// "Mr. Smith" splits after "Mr.".
func Detect(tokens []token.Token) []Annotated {
	annotated := make([]Annotated, len(tokens))
	current := 0

	for i, tok := range tokens {
		annotated[i] = Annotated{Token: tok, SentenceID: current}

		if !isTerminal(tok) {
			continue
		}

		j := i + 1
		for j < len(tokens) && tokens[j].Type == token.Whitespace {
			j++
		}
		if j >= len(tokens) || startsSentence(tokens[j]) {
			current++
		}
	}

	return annotated
}

// Group collects consecutive tokens with the same sentence index into
// sentences, in order. The trailing group is emitted even when it has no
// terminal punctuation.
func Group(annotated []Annotated) []Sentence {
	sentences := make([]Sentence, 0)
	if len(annotated) == 0 {
		return sentences
	}

	currentID := annotated[0].SentenceID
	var current []token.Token

	for _, a := range annotated {
		if a.SentenceID != currentID {
			sentences = append(sentences, newSentence(currentID, current))
			current = nil
			currentID = a.SentenceID
		}
		current = append(current, a.Token)
	}

	// Flush the last sentence
	return append(sentences, newSentence(currentID, current))
}

// Split is Group(Detect(tokens)).
func Split(tokens []token.Token) []Sentence {
	return Group(Detect(tokens))
}

func newSentence(id int, tokens []token.Token) Sentence {
	return Sentence{ID: id, Tokens: tokens, Text: token.Join(tokens)}
}

func isTerminal(t token.Token) bool {
	if t.Type != token.Punctuation {
		return false
	}
	return t.Value == "." || t.Value == "!" || t.Value == "?"
}

func startsSentence(t token.Token) bool {
	if t.Type != token.Word || t.Value == "" {
		return false
	}
	c := t.Value[0]
	return c >= 'A' && c <= 'Z'
}
