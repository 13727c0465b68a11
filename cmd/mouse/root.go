package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cognicore/mouse/pkg/mouse"
	"github.com/cognicore/mouse/pkg/mouse/config"
)

type rootOptions struct {
	configPath string
	logLevel   string
	mode       string
	includeIDs bool
	db         string
	vocab      string
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "mouse",
		Short:         "Tokenize text, split sentences and encode token ids",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fs := cmd.PersistentFlags()
	fs.StringVar(&opts.configPath, "config", "", "Optional YAML config file")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (trace|debug|info|warn|error|disabled)")
	fs.StringVar(&opts.mode, "mode", "", "Tokenization mode (basic|advanced)")
	fs.BoolVar(&opts.includeIDs, "ids", false, "Include input_ids and token_map in the output")
	fs.StringVar(&opts.db, "db", "", "SQLite run archive (in-memory when empty)")
	fs.StringVar(&opts.vocab, "vocab", "", "YAML vocabulary seed (value: id)")

	cmd.AddCommand(newTokenizeCmd(opts))
	cmd.AddCommand(newSentencesCmd(opts))
	cmd.AddCommand(newDecodeCmd(opts))
	cmd.AddCommand(newRunsCmd(opts))

	return cmd
}

// overrides copies explicitly set flags over the file configuration.
func (o *rootOptions) overrides(fs *pflag.FlagSet) func(*config.Config) {
	return func(c *config.Config) {
		if fs.Changed("log-level") {
			c.LogLevel = o.logLevel
		}
		if fs.Changed("mode") {
			c.Mode = o.mode
		}
		if fs.Changed("ids") {
			c.IncludeIDs = o.includeIDs
		}
		if fs.Changed("db") {
			c.DB = o.db
		}
		if fs.Changed("vocab") {
			c.Vocab = o.vocab
		}
	}
}

// buildEngine loads configuration and wires the pipeline. The returned
// cleanup closes the run store.
func (o *rootOptions) buildEngine(ctx context.Context, cmd *cobra.Command) (*mouse.Mouse, func(), error) {
	loader := config.Loader{
		ConfigPath: o.configPath,
		Override:   o.overrides(cmd.Flags()),
	}

	comp, err := loader.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	mode, err := mouse.ParseMode(comp.Config.Mode)
	if err != nil {
		comp.Store.Close()
		return nil, nil, err
	}

	engine := mouse.New(mouse.Options{
		Mode:          mode,
		IncludeIDs:    comp.Config.IncludeIDs,
		Vocab:         comp.Vocab,
		Store:         comp.Store,
		Logger:        newLogger(cmd.ErrOrStderr(), comp.Config.LogLevel),
		WarnThreshold: comp.Config.WarnThreshold,
	})

	cleanup := func() {
		engine.Close()
	}
	return engine, cleanup, nil
}

func newLogger(w io.Writer, levelStr string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(levelStr)
	if err != nil || levelStr == "" {
		lvl = zerolog.InfoLevel
	}
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
