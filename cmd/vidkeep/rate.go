package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rateCmd := &cobra.Command{
		Use:   "rate <video-id> <rating>",
		Short: "Rate a video from 0 to 5 stars",
		Args:  cobra.ExactArgs(2),
		RunE:  runRate,
	}
	rootCmd.AddCommand(rateCmd)
}

func runRate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(args[1])
	if err != nil || rating < 0 || rating > 5 {
		return fmt.Errorf("rating must be a number between 0 and 5, got: %s", args[1])
	}

	v, err := NewClient(serverURL).SetRating(id, rating)
	if err != nil {
		return err
	}
	fmt.Printf("Rated %s: %s\n", v.Title, stars(v.Rating))
	return nil
}
