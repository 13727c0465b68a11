// Package vocab maps token values to stable integer ids and back.
package vocab

import (
	"sort"

	"github.com/cognicore/mouse/pkg/mouse/token"
)

const (
	// UnknownID is reserved and never assigned to a real value.
	UnknownID = 0
	// UnknownToken is what Decode returns for ids with no mapping.
	UnknownToken = "<UNK>"
)

// Vocabulary is a bidirectional value/id registry that only grows.
// It is not safe for concurrent use.
type Vocabulary struct {
	toID    map[string]int
	toValue map[int]string
	nextID  int
}

// New creates a vocabulary seeded with the given value→id pairs. The seed is
// not validated beyond skipping ids below 1; when two values share an id the
// one that sorts last wins the reverse mapping. New ids continue after the
// largest seeded id.
func New(seed map[string]int) *Vocabulary {
	v := &Vocabulary{
		toID:    make(map[string]int, len(seed)),
		toValue: make(map[int]string, len(seed)),
		nextID:  UnknownID + 1,
	}

	type entry struct {
		value string
		id    int
	}
	entries := make([]entry, 0, len(seed))
	for value, id := range seed {
		if id <= UnknownID {
			continue
		}
		entries = append(entries, entry{value, id})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].id != entries[j].id {
			return entries[i].id < entries[j].id
		}
		return entries[i].value < entries[j].value
	})

	for _, e := range entries {
		v.toID[e.value] = e.id
		v.toValue[e.id] = e.value
		if e.id >= v.nextID {
			v.nextID = e.id + 1
		}
	}

	return v
}

// ID returns the id of value, or UnknownID if it has none.
func (v *Vocabulary) ID(value string) int {
	if id, ok := v.toID[value]; ok {
		return id
	}
	return UnknownID
}

// Has reports whether value has an id.
func (v *Vocabulary) Has(value string) bool {
	_, ok := v.toID[value]
	return ok
}

// Add returns the id of value, allocating the next free id if needed.
func (v *Vocabulary) Add(value string) int {
	if id, ok := v.toID[value]; ok {
		return id
	}
	id := v.nextID
	v.nextID++
	v.toID[value] = id
	v.toValue[id] = value
	return id
}

// Encode maps each value to its id. Unlike ID, values without an id are
// registered rather than mapped to UnknownID.
func (v *Vocabulary) Encode(values []string) []int {
	ids := make([]int, len(values))
	for i, value := range values {
		ids[i] = v.Add(value)
	}
	return ids
}

// EncodeTokens is Encode over token values.
func (v *Vocabulary) EncodeTokens(tokens []token.Token) []int {
	ids := make([]int, len(tokens))
	for i, t := range tokens {
		ids[i] = v.Add(t.Value)
	}
	return ids
}

// Decode maps ids back to values. Unknown ids, including UnknownID, decode
// to UnknownToken.
func (v *Vocabulary) Decode(ids []int) []string {
	values := make([]string, len(ids))
	for i, id := range ids {
		value, ok := v.toValue[id]
		if !ok {
			value = UnknownToken
		}
		values[i] = value
	}
	return values
}

// Snapshot returns a copy of the value→id mapping.
func (v *Vocabulary) Snapshot() map[string]int {
	out := make(map[string]int, len(v.toID))
	for value, id := range v.toID {
		out[value] = id
	}
	return out
}

// Len returns the number of mapped values.
func (v *Vocabulary) Len() int { return len(v.toID) }

// NextID returns the id the next new value will receive.
func (v *Vocabulary) NextID() int { return v.nextID }
