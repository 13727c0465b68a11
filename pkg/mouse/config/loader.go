package config

import (
	"context"
	"fmt"

	"github.com/cognicore/mouse/pkg/mouse/store"
	"github.com/cognicore/mouse/pkg/mouse/store/memstore"
	"github.com/cognicore/mouse/pkg/mouse/store/sqlite"
	"github.com/cognicore/mouse/pkg/mouse/vocab"
)

// Loader loads the configuration file and constructs components
type Loader struct {
	ConfigPath string
	// Override, when set, is applied after the file is read and before
	// validation. Command line flags use it.
	Override func(*Config)
}

// Components holds all loaded configuration components
type Components struct {
	Config Config
	Vocab  *vocab.Vocabulary
	Store  store.Store
}

// Load reads the config file (if any), seeds the vocabulary and opens the
// run store. The caller owns Components.Store and must close it.
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	cfg := Default()
	if l.ConfigPath != "" {
		loaded, err := Load(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if l.Override != nil {
		l.Override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	comp := &Components{Config: cfg}

	// Seed vocabulary
	if cfg.Vocab != "" {
		seed, err := LoadSeed(cfg.Vocab)
		if err != nil {
			return nil, fmt.Errorf("load vocab seed: %w", err)
		}
		comp.Vocab = vocab.New(seed)
	} else {
		comp.Vocab = vocab.New(nil)
	}

	// Run store
	if cfg.DB != "" {
		st, err := sqlite.OpenSQLite(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		comp.Store = st
	} else {
		comp.Store = memstore.New()
	}

	return comp, nil
}
