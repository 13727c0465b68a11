package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newDecodeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <id>...",
		Short: "Decode token ids with the seeded vocabulary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, 0, len(args))
			for _, arg := range args {
				for _, part := range strings.Split(arg, ",") {
					part = strings.TrimSpace(part)
					if part == "" {
						continue
					}
					id, err := strconv.Atoi(part)
					if err != nil {
						return fmt.Errorf("invalid id %q: %w", part, err)
					}
					ids = append(ids, id)
				}
			}

			engine, cleanup, err := root.buildEngine(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			for i, value := range engine.Decode(ids) {
				printf(cmd, "%d\t%q\n", ids[i], value)
			}
			return nil
		},
	}
}
