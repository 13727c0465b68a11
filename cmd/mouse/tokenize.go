package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cognicore/mouse/pkg/mouse/export"
	"github.com/cognicore/mouse/pkg/mouse/source"
)

type tokenizeOptions struct {
	text    string
	out     string
	summary bool
}

func newTokenizeCmd(root *rootOptions) *cobra.Command {
	opts := &tokenizeOptions{}

	cmd := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Tokenize a file, stdin (-) or --text and print the JSON output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readInput(opts.text, args)
			if err != nil {
				return err
			}

			engine, cleanup, err := root.buildEngine(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := engine.Process(cmd.Context(), doc)
			if err != nil {
				return err
			}

			if opts.summary {
				if strings.TrimSpace(doc.Text) == "" {
					printf(cmd, "No input provided.\n")
					return nil
				}
				printf(cmd, "Run: %s\n", res.RunID)
				printf(cmd, "Token count: %d\n", res.Output.Count)
				printf(cmd, "Sample tokens: %s\n", export.Sample(res.Tokens, export.SampleSize))
				if res.Output.IncludeIDs {
					printf(cmd, "Sample input_ids: %s\n", export.SampleIDs(res.Output.InputIDs, export.SampleSize))
				}
				if res.Large {
					printf(cmd, "Warning: Large input may affect performance.\n")
				}
			}

			if opts.out != "" {
				if err := os.WriteFile(opts.out, res.JSON, 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				return nil
			}
			if !opts.summary {
				printf(cmd, "%s\n", res.JSON)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.text, "text", "", "Inline input text (instead of a file)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the JSON output to this file (e.g. "+export.DefaultFilename+")")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "Print a short summary instead of the full JSON")

	return cmd
}

// readInput resolves the document from --text or the file argument.
func readInput(text string, args []string) (source.Document, error) {
	if text != "" {
		if len(args) > 0 {
			return source.Document{}, fmt.Errorf("use either --text or a file argument, not both")
		}
		return source.ReadString("text", text), nil
	}
	if len(args) == 0 {
		return source.Read(source.Stdin)
	}
	return source.Read(args[0])
}
