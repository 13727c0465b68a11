package main

import (
	"time"

	"github.com/spf13/cobra"
)

func newRunsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect runs saved in the archive",
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List saved runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, cleanup, err := root.buildEngine(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			runs, err := engine.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				printf(cmd, "No runs found.\n")
				return nil
			}
			for _, r := range runs {
				printf(cmd, "%s\t%s\t%s\t%s\ttokens=%d\tsentences=%d\n",
					r.ID, r.CreatedAt.Format(time.RFC3339), r.Mode, r.Source, r.TokenCount, r.SentenceCount)
			}
			return nil
		},
	}
	list.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs (0 for all)")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Print the JSON output of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cleanup, err := root.buildEngine(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			run, err := engine.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", run.Output)
			return nil
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}
