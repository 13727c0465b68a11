package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newSentencesCmd(root *rootOptions) *cobra.Command {
	var (
		text   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "sentences [file]",
		Short: "Split input into sentences",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readInput(text, args)
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

			if asJSON {
				data, err := json.MarshalIndent(res.Sentences, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal sentences: %w", err)
				}
				printf(cmd, "%s\n", data)
				return nil
			}

			for _, s := range res.Sentences {
				printf(cmd, "%d\t%q\n", s.ID, s.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Inline input text (instead of a file)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print sentences as JSON")

	return cmd
}
