// Package mouse ties the tokenizer, sentence detector and vocabulary into a
// single processing pipeline and records each processed input as a run.
package mouse

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/cognicore/mouse/pkg/mouse/export"
	"github.com/cognicore/mouse/pkg/mouse/internalerr"
	"github.com/cognicore/mouse/pkg/mouse/sentence"
	"github.com/cognicore/mouse/pkg/mouse/source"
	"github.com/cognicore/mouse/pkg/mouse/store"
	"github.com/cognicore/mouse/pkg/mouse/token"
	"github.com/cognicore/mouse/pkg/mouse/vocab"
)

// Mode selects the tokenizer.
type Mode string

const (
	// ModeBasic splits on whitespace only.
	ModeBasic Mode = "basic"
	// ModeAdvanced classifies words, numbers, punctuation, whitespace and
	// special characters.
	ModeAdvanced Mode = "advanced"
)

// ParseMode converts a mode name. The empty string selects ModeAdvanced.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeBasic:
		return ModeBasic, nil
	case ModeAdvanced, "":
		return ModeAdvanced, nil
	}
	return "", fmt.Errorf("%w: unknown mode %q", internalerr.ErrInvalidInput, s)
}

// Tokenize runs the tokenizer for the mode.
func (m Mode) Tokenize(text string) []token.Token {
	if m == ModeBasic {
		return token.TokenizeBasic(text)
	}
	return token.Tokenize(text)
}

// Options configures a Mouse instance
type Options struct {
	Mode       Mode
	IncludeIDs bool
	// Vocab is the session vocabulary. A fresh one is created when nil.
	Vocab *vocab.Vocabulary
	// Store receives every processed run. Runs are not recorded when nil.
	Store store.Store
	// Logger defaults to a disabled logger.
	Logger zerolog.Logger
	// WarnThreshold is the input length above which a warning is logged.
	// Zero disables the warning.
	WarnThreshold int
	// Now is used for run timestamps; defaults to time.Now.
	Now func() time.Time
}

// Mouse processes input text. It owns a mutable vocabulary and is not safe
// for concurrent use.
type Mouse struct {
	mode       Mode
	includeIDs bool
	vocab      *vocab.Vocabulary
	store      store.Store
	log        zerolog.Logger
	warnAt     int
	now        func() time.Time
	entropy    *ulid.MonotonicEntropy
}

// New creates a Mouse instance with the given dependencies
func New(opts Options) *Mouse {
	m := &Mouse{
		mode:       opts.Mode,
		includeIDs: opts.IncludeIDs,
		vocab:      opts.Vocab,
		store:      opts.Store,
		log:        opts.Logger,
		warnAt:     opts.WarnThreshold,
		now:        opts.Now,
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}
	if m.mode == "" {
		m.mode = ModeAdvanced
	}
	if m.vocab == nil {
		m.vocab = vocab.New(nil)
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

// Close releases the run store, if any.
func (m *Mouse) Close() error {
	if m.store == nil {
		return nil
	}
	return m.store.Close()
}

// Result is everything produced for one input.
type Result struct {
	RunID     string
	CreatedAt time.Time
	Tokens    []token.Token
	Sentences []sentence.Sentence
	Output    export.Output
	JSON      []byte
	// Large is set when the input exceeded the warning threshold.
	Large bool
}

// Process tokenizes doc, splits it into sentences and builds the export
// output. With ids enabled the session vocabulary grows to cover every new
// token value. The run is saved when a store is configured.
func (m *Mouse) Process(ctx context.Context, doc source.Document) (Result, error) {
	created := m.now()
	res := Result{
		RunID:     ulid.MustNew(ulid.Timestamp(created), m.entropy).String(),
		CreatedAt: created,
		Large:     export.IsLarge(doc.Text, m.warnAt),
	}

	if res.Large {
		m.log.Warn().
			Str("source", doc.Name).
			Int("chars", len([]rune(doc.Text))).
			Int("threshold", m.warnAt).
			Msg("large input may affect performance")
	}

	res.Tokens = m.mode.Tokenize(doc.Text)
	res.Sentences = sentence.Split(res.Tokens)
	res.Output = export.Build(res.Tokens, m.vocab, m.includeIDs)

	data, err := res.Output.JSON()
	if err != nil {
		return Result{}, err
	}
	res.JSON = data

	m.log.Debug().
		Str("run", res.RunID).
		Str("source", doc.Name).
		Str("mode", string(m.mode)).
		Int("tokens", len(res.Tokens)).
		Int("sentences", len(res.Sentences)).
		Int("vocab", m.vocab.Len()).
		Msg("processed input")

	if m.store != nil {
		run := store.Run{
			ID:            res.RunID,
			CreatedAt:     created,
			Source:        doc.Name,
			Mode:          string(m.mode),
			TokenCount:    len(res.Tokens),
			SentenceCount: len(res.Sentences),
			Output:        data,
		}
		if err := m.store.SaveRun(ctx, run); err != nil {
			return Result{}, fmt.Errorf("save run: %w", err)
		}
	}

	return res, nil
}

// Decode maps ids back to token values using the session vocabulary.
func (m *Mouse) Decode(ids []int) []string {
	return m.vocab.Decode(ids)
}

// Vocab returns the session vocabulary.
func (m *Mouse) Vocab() *vocab.Vocabulary {
	return m.vocab
}

// Run returns a previously saved run.
func (m *Mouse) Run(ctx context.Context, id string) (store.Run, error) {
	if m.store == nil {
		return store.Run{}, internalerr.ErrStoreUnavailable
	}
	return m.store.GetRun(ctx, id)
}

// Runs lists saved runs, newest first.
func (m *Mouse) Runs(ctx context.Context, limit int) ([]store.Run, error) {
	if m.store == nil {
		return nil, internalerr.ErrStoreUnavailable
	}
	return m.store.ListRuns(ctx, limit)
}
