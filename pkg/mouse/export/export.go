// Package export builds the JSON document handed to downstream consumers.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cognicore/mouse/pkg/mouse/token"
	"github.com/cognicore/mouse/pkg/mouse/vocab"
)

const (
	// DefaultFilename is the name used when the output is written to disk.
	DefaultFilename = "tokenization_output.json"

	// LargeInputThreshold is the input length, in characters, above which
	// callers are advised that processing may be slow.
	LargeInputThreshold = 50000

	// SampleSize is how many tokens previews show.
	SampleSize = 10
)

// MapEntry ties a token to the id it was encoded as.
type MapEntry struct {
	Value string     `json:"value"`
	Type  token.Type `json:"type"`
	ID    int        `json:"id"`
}

// Output is the serialized tokenization result. InputIDs and TokenMap are
// parallel to Tokens and only present when IncludeIDs is set.
type Output struct {
	Tokens     []token.Token
	Count      int
	IncludeIDs bool
	InputIDs   []int
	TokenMap   []MapEntry
}

// Build assembles the output for tokens. With includeIDs the tokens are
// encoded through v, which registers any value it has not seen.
func Build(tokens []token.Token, v *vocab.Vocabulary, includeIDs bool) Output {
	if tokens == nil {
		tokens = []token.Token{}
	}
	out := Output{Tokens: tokens, Count: len(tokens)}
	if !includeIDs || v == nil {
		return out
	}

	out.IncludeIDs = true
	out.InputIDs = v.EncodeTokens(tokens)
	out.TokenMap = make([]MapEntry, len(tokens))
	for i, t := range tokens {
		out.TokenMap[i] = MapEntry{Value: t.Value, Type: t.Type, ID: out.InputIDs[i]}
	}
	return out
}

type plainJSON struct {
	Tokens []token.Token `json:"tokens"`
	Count  int           `json:"count"`
}

type withIDsJSON struct {
	Tokens   []token.Token `json:"tokens"`
	Count    int           `json:"count"`
	InputIDs []int         `json:"input_ids"`
	TokenMap []MapEntry    `json:"token_map"`
}

// MarshalJSON implements json.Marshaler.
func (o Output) MarshalJSON() ([]byte, error) {
	tokens := o.Tokens
	if tokens == nil {
		tokens = []token.Token{}
	}
	if !o.IncludeIDs {
		return json.Marshal(plainJSON{Tokens: tokens, Count: o.Count})
	}

	ids, tm := o.InputIDs, o.TokenMap
	if ids == nil {
		ids = []int{}
	}
	if tm == nil {
		tm = []MapEntry{}
	}
	return json.Marshal(withIDsJSON{Tokens: tokens, Count: o.Count, InputIDs: ids, TokenMap: tm})
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Output) UnmarshalJSON(data []byte) error {
	var raw struct {
		Tokens   []token.Token `json:"tokens"`
		Count    int           `json:"count"`
		InputIDs *[]int        `json:"input_ids"`
		TokenMap []MapEntry    `json:"token_map"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = Output{Tokens: raw.Tokens, Count: raw.Count, TokenMap: raw.TokenMap}
	if raw.InputIDs != nil {
		o.IncludeIDs = true
		o.InputIDs = *raw.InputIDs
	}
	return nil
}

// JSON returns the output as two-space indented JSON.
func (o Output) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal output: %w", err)
	}
	return data, nil
}

// Sample renders the first n tokens as "value [type]" pairs.
func Sample(tokens []token.Token, n int) string {
	if n > len(tokens) {
		n = len(tokens)
	}
	parts := make([]string, 0, n)
	for _, t := range tokens[:n] {
		parts = append(parts, fmt.Sprintf("%s [%s]", t.Value, t.Type))
	}
	return strings.Join(parts, ", ")
}

// SampleIDs renders the first n ids as a comma separated list.
func SampleIDs(ids []int, n int) string {
	if n > len(ids) {
		n = len(ids)
	}
	parts := make([]string, 0, n)
	for _, id := range ids[:n] {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ", ")
}

// IsLarge reports whether text exceeds threshold characters.
func IsLarge(text string, threshold int) bool {
	if threshold <= 0 {
		return false
	}
	return len([]rune(text)) > threshold
}
