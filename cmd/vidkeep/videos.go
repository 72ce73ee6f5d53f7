package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	videosCmd := &cobra.Command{
		Use:   "videos",
		Short: "Browse cataloged videos",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List videos",
		RunE:  runVideosList,
	}
	listCmd.Flags().IntP("min-rating", "r", 0, "Only videos rated at least this")
	listCmd.Flags().StringP("tag", "t", "", "Only videos carrying this tag")
	listCmd.Flags().StringP("search", "s", "", "Substring match on title, filename, description")
	listCmd.Flags().IntP("limit", "l", 50, "Maximum number of items to return")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single video",
		Args:  cobra.ExactArgs(1),
		RunE:  runVideosShow,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a video from the catalog",
		Long:  "Removes the catalog record only. The file on disk is untouched.",
		Args:  cobra.ExactArgs(1),
		RunE:  runVideosDelete,
	}

	similarCmd := &cobra.Command{
		Use:   "similar <id>",
		Short: "Find videos related by title and tags",
		Args:  cobra.ExactArgs(1),
		RunE:  runVideosSimilar,
	}

	videosCmd.AddCommand(listCmd, showCmd, deleteCmd, similarCmd)
	rootCmd.AddCommand(videosCmd)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID: %s", arg)
	}
	return id, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runVideosList(cmd *cobra.Command, args []string) error {
	minRating, _ := cmd.Flags().GetInt("min-rating")
	tag, _ := cmd.Flags().GetString("tag")
	search, _ := cmd.Flags().GetString("search")
	limit, _ := cmd.Flags().GetInt("limit")

	resp, err := NewClient(serverURL).Videos(minRating, tag, search, limit)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(resp)
	}

	if len(resp.Items) == 0 {
		fmt.Println("No videos in catalog.")
		return nil
	}

	fmt.Printf("Videos (%d total):\n\n", resp.Total)
	fmt.Printf("  %-5s %-40s %-7s %s\n", "ID", "TITLE", "RATING", "TAGS")
	fmt.Println("  " + strings.Repeat("-", 75))
	for i := range resp.Items {
		v := &resp.Items[i]
		title := v.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Printf("  %-5d %-40s %-7s %s\n", v.ID, title, stars(v.Rating), strings.Join(v.Tags, ", "))
	}
	if resp.Total > len(resp.Items) {
		fmt.Printf("\n  Showing %d of %d items. Use --limit to see more.\n", len(resp.Items), resp.Total)
	}
	return nil
}

func stars(rating int) string {
	if rating == 0 {
		return "-"
	}
	return strings.Repeat("*", rating)
}

func runVideosShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	v, err := NewClient(serverURL).Video(id)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(v)
	}

	fmt.Printf("%s [ID: %d]\n", v.Title, v.ID)
	fmt.Printf("  File:     %s\n", v.Path)
	fmt.Printf("  Size:     %.1f MB\n", float64(v.SizeBytes)/(1024*1024))
	if v.DurationSec > 0 {
		fmt.Printf("  Duration: %s\n", formatDuration(v.DurationSec))
	}
	fmt.Printf("  Rating:   %s\n", stars(v.Rating))
	if len(v.Tags) > 0 {
		fmt.Printf("  Tags:     %s\n", strings.Join(v.Tags, ", "))
	}
	if v.Description != "" {
		fmt.Printf("  Notes:    %s\n", v.Description)
	}
	return nil
}

func formatDuration(sec float64) string {
	total := int(sec)
	if total >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func runVideosDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	client := NewClient(serverURL)
	v, err := client.Video(id)
	if err != nil {
		return err
	}
	if err := client.DeleteVideo(id); err != nil {
		return err
	}
	fmt.Printf("Deleted: %s [ID: %d]\n", v.Title, v.ID)
	return nil
}

func runVideosSimilar(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	resp, err := NewClient(serverURL).Similar(id)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(resp)
	}

	if len(resp.Items) == 0 {
		fmt.Println("No similar videos found.")
		return nil
	}
	for _, m := range resp.Items {
		fmt.Printf("  %5.2f  [%d] %s\n", m.Score, m.Video.ID, m.Video.Title)
	}
	return nil
}
