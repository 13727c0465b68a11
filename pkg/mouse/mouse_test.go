package mouse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/mouse/pkg/mouse/export"
	"github.com/cognicore/mouse/pkg/mouse/internalerr"
	"github.com/cognicore/mouse/pkg/mouse/source"
	"github.com/cognicore/mouse/pkg/mouse/store/memstore"
	"github.com/cognicore/mouse/pkg/mouse/token"
	"github.com/cognicore/mouse/pkg/mouse/vocab"
)

func TestParseMode(t *testing.T) {
	m, err := ParseMode("basic")
	require.NoError(t, err)
	assert.Equal(t, ModeBasic, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeAdvanced, m)

	_, err = ParseMode("regex")
	assert.True(t, errors.Is(err, internalerr.ErrInvalidInput))
}

func TestProcessAdvanced(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	m := New(Options{Store: st, IncludeIDs: true})
	defer m.Close()

	res, err := m.Process(ctx, source.ReadString("inline", "Hello world. This is a test."))
	require.NoError(t, err)

	assert.Equal(t, "Hello world. This is a test.", token.Join(res.Tokens))
	require.Len(t, res.Sentences, 2)
	assert.Equal(t, "Hello world.", res.Sentences[0].Text)
	assert.Equal(t, len(res.Tokens), res.Output.Count)
	assert.Equal(t, token.Values(res.Tokens), m.Decode(res.Output.InputIDs))
	assert.False(t, res.Large)

	_, err = ulid.Parse(res.RunID)
	assert.NoError(t, err, "run id should be a ULID")

	run, err := m.Run(ctx, res.RunID)
	require.NoError(t, err)
	assert.Equal(t, "inline", run.Source)
	assert.Equal(t, "advanced", run.Mode)
	assert.Equal(t, len(res.Tokens), run.TokenCount)
	assert.Equal(t, 2, run.SentenceCount)
	assert.JSONEq(t, string(res.JSON), string(run.Output))
}

func TestProcessBasic(t *testing.T) {
	m := New(Options{Mode: ModeBasic})

	res, err := m.Process(context.Background(), source.ReadString("inline", "Hello, world!  again"))
	require.NoError(t, err)

	require.Len(t, res.Tokens, 3)
	for _, tok := range res.Tokens {
		assert.Equal(t, token.Word, tok.Type)
	}
	assert.Len(t, res.Sentences, 1)
}

func TestProcessWithoutIDsLeavesVocabularyAlone(t *testing.T) {
	v := vocab.New(nil)
	m := New(Options{Vocab: v})

	res, err := m.Process(context.Background(), source.ReadString("inline", "a b c"))
	require.NoError(t, err)

	assert.Equal(t, 0, v.Len())

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(res.JSON, &raw))
	assert.NotContains(t, raw, "input_ids")
	assert.NotContains(t, raw, "token_map")
}

func TestProcessSharesVocabularyAcrossCalls(t *testing.T) {
	m := New(Options{IncludeIDs: true, Vocab: vocab.New(map[string]int{"foo": 1})})
	ctx := context.Background()

	first, err := m.Process(ctx, source.ReadString("a", "foo bar"))
	require.NoError(t, err)
	second, err := m.Process(ctx, source.ReadString("b", "bar foo"))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, first.Output.InputIDs)
	assert.Equal(t, []int{3, 2, 1}, second.Output.InputIDs)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestProcessLargeInputWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	m := New(Options{Logger: logger, WarnThreshold: 5})

	res, err := m.Process(context.Background(), source.ReadString("big", "123456"))
	require.NoError(t, err)
	assert.True(t, res.Large)
	assert.Contains(t, buf.String(), "large input may affect performance")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestProcessEmptyInput(t *testing.T) {
	m := New(Options{IncludeIDs: true})
	res, err := m.Process(context.Background(), source.ReadString("empty", ""))
	require.NoError(t, err)

	assert.Empty(t, res.Tokens)
	assert.Empty(t, res.Sentences)
	compact := strings.Join(strings.Fields(string(res.JSON)), "")
	assert.Equal(t, `{"tokens":[],"count":0,"input_ids":[],"token_map":[]}`, compact)
}

func TestProcessUsesClock(t *testing.T) {
	fixed := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	st := memstore.New()
	m := New(Options{Store: st, Now: func() time.Time { return fixed }})

	res, err := m.Process(context.Background(), source.ReadString("x", "x"))
	require.NoError(t, err)

	id := ulid.MustParse(res.RunID)
	assert.Equal(t, ulid.Timestamp(fixed), id.Time())

	runs, err := m.Runs(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.True(t, fixed.Equal(runs[0].CreatedAt))
}

func TestRunsWithoutStore(t *testing.T) {
	m := New(Options{})
	_, err := m.Runs(context.Background(), 1)
	assert.ErrorIs(t, err, internalerr.ErrStoreUnavailable)
	_, err = m.Run(context.Background(), "x")
	assert.ErrorIs(t, err, internalerr.ErrStoreUnavailable)
	assert.NoError(t, m.Close())
}

func TestOutputMatchesExportPackage(t *testing.T) {
	m := New(Options{IncludeIDs: true})
	res, err := m.Process(context.Background(), source.ReadString("x", "Go, go!"))
	require.NoError(t, err)

	var out export.Output
	require.NoError(t, json.Unmarshal(res.JSON, &out))
	assert.Equal(t, res.Output.InputIDs, out.InputIDs)
	for i, e := range out.TokenMap {
		assert.Equal(t, out.InputIDs[i], e.ID)
	}
}
