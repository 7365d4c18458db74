package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"greenearth.GO/cron/jobs"
)

var sessionsSweepCmd = &cobra.Command{
	Use:   "sessions:sweep",
	Short: "Remove expired visitor sessions from the session store",
	RunE: func(c *cobra.Command, args []string) error {
		repo, err := jobs.ConfiguredSessionRepository()
		if err != nil {
			return err
		}
		removed, err := jobs.SweepSessions(c.Context(), repo)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.OutOrStdout(), "Removed %d expired sessions\n", removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsSweepCmd)
}
