package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"greenearth.GO/cron"
	_ "greenearth.GO/cron/jobs"
)

var jobName string

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler or run a single job by name",
	RunE: func(c *cobra.Command, args []string) error {
		out := c.OutOrStdout()
		if jobName != "" {
			name := strings.ToLower(jobName)
			fmt.Fprintf(out, "Running cron job: %s\n", name)
			ran, err := cron.RunJob(c.Context(), name, args...)
			if !ran {
				return fmt.Errorf("unknown job: %s (known: %s)", jobName, strings.Join(cron.Names(), ", "))
			}
			return err
		}
		fmt.Fprintln(out, "Starting cron scheduler...")
		sched, err := cron.StartCron()
		if err != nil {
			return err
		}
		defer sched.Stop()
		fmt.Fprintln(out, "Cron scheduler started. Press Ctrl+C to exit.")
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		return nil
	},
}

func init() {
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	rootCmd.AddCommand(cronStartCmd)
}
