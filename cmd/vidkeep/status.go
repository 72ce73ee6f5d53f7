package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Check server status",
		RunE:  runStatus,
	}

	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "Show recent catalog events",
		RunE:  runEvents,
	}
	eventsCmd.Flags().IntP("limit", "l", 20, "Maximum number of events to show")

	rootCmd.AddCommand(statusCmd, eventsCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	resp, err := NewClient(serverURL).Status()
	if err != nil {
		return fmt.Errorf("server unreachable at %s: %w", serverURL, err)
	}
	if jsonOutput {
		return printJSON(resp)
	}
	fmt.Printf("Server: %s (%s)\n", serverURL, resp.Status)
	return nil
}

func runEvents(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	resp, err := NewClient(serverURL).Events(limit)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(resp)
	}

	if len(resp.Items) == 0 {
		fmt.Println("No events recorded.")
		return nil
	}
	fmt.Printf("Events (%d total):\n\n", resp.Total)
	for _, e := range resp.Items {
		fmt.Printf("  %s  %-20s video=%d\n", e.OccurredAt, e.EventType, e.VideoID)
	}
	return nil
}
