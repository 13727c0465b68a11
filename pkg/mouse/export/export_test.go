package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cognicore/mouse/pkg/mouse/token"
	"github.com/cognicore/mouse/pkg/mouse/vocab"
)

func TestBuildWithoutIDs(t *testing.T) {
	v := vocab.New(nil)
	out := Build(token.Tokenize("Hi there"), v, false)

	if out.Count != 3 {
		t.Errorf("Count = %d, want 3", out.Count)
	}
	if out.InputIDs != nil || out.TokenMap != nil {
		t.Error("Ids should not be built unless requested")
	}
	if v.Len() != 0 {
		t.Error("Building without ids must not grow the vocabulary")
	}

	data, err := out.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := raw["input_ids"]; ok {
		t.Error("input_ids should be absent")
	}
	if _, ok := raw["token_map"]; ok {
		t.Error("token_map should be absent")
	}
}

func TestBuildWithIDs(t *testing.T) {
	v := vocab.New(map[string]int{"Hi": 7})
	tokens := token.Tokenize("Hi there Hi")
	out := Build(tokens, v, true)

	if len(out.InputIDs) != len(tokens) || len(out.TokenMap) != len(tokens) {
		t.Fatalf("Ids and token map must be parallel to tokens: %d %d %d", len(out.InputIDs), len(out.TokenMap), len(tokens))
	}
	if out.InputIDs[0] != 7 || out.InputIDs[4] != 7 {
		t.Errorf("Seeded value should keep its id, got %v", out.InputIDs)
	}
	for i, e := range out.TokenMap {
		if e.ID != out.InputIDs[i] || e.Value != tokens[i].Value || e.Type != tokens[i].Type {
			t.Errorf("token_map[%d] = %+v does not match token %v id %d", i, e, tokens[i], out.InputIDs[i])
		}
	}
}

func TestJSONShape(t *testing.T) {
	out := Build(token.Tokenize("a 1"), vocab.New(nil), true)
	data, err := out.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	want := `{
  "tokens": [
    {
      "value": "a",
      "type": "word"
    },
    {
      "value": " ",
      "type": "whitespace"
    },
    {
      "value": "1",
      "type": "number"
    }
  ],
  "count": 3,
  "input_ids": [
    1,
    2,
    3
  ],
  "token_map": [
    {
      "value": "a",
      "type": "word",
      "id": 1
    },
    {
      "value": " ",
      "type": "whitespace",
      "id": 2
    },
    {
      "value": "1",
      "type": "number",
      "id": 3
    }
  ]
}`
	if string(data) != want {
		t.Errorf("JSON mismatch:\n%s", data)
	}
}

func TestJSONEmptyInput(t *testing.T) {
	data, err := Build(nil, vocab.New(nil), true).JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	compact := strings.Join(strings.Fields(string(data)), "")
	if compact != `{"tokens":[],"count":0,"input_ids":[],"token_map":[]}` {
		t.Errorf("Unexpected empty output %s", compact)
	}
}

func TestUnmarshalRoundTrip(t *testing.T) {
	in := Build(token.Tokenize("Go go!"), vocab.New(nil), true)
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out Output
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !out.IncludeIDs || out.Count != in.Count || len(out.InputIDs) != len(in.InputIDs) {
		t.Errorf("Round trip lost data: %+v", out)
	}
}

func TestSample(t *testing.T) {
	tokens := token.Tokenize("Hello, world")
	if got := Sample(tokens, 2); got != "Hello [word], , [punctuation]" {
		t.Errorf("Sample = %q", got)
	}
	if got := Sample(tokens, 100); strings.Count(got, "[") != len(tokens) {
		t.Errorf("Sample should cap at token count: %q", got)
	}
	if got := SampleIDs([]int{1, 2, 3}, 2); got != "1, 2" {
		t.Errorf("SampleIDs = %q", got)
	}
}

func TestIsLarge(t *testing.T) {
	if IsLarge(strings.Repeat("a", LargeInputThreshold), LargeInputThreshold) {
		t.Error("Input at the threshold is not large")
	}
	if !IsLarge(strings.Repeat("a", LargeInputThreshold+1), LargeInputThreshold) {
		t.Error("Input above the threshold is large")
	}
	if IsLarge("anything", 0) {
		t.Error("A zero threshold disables the check")
	}
}
