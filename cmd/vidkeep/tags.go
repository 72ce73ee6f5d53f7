package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	tagsCmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage the tag registry",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tags with usage counts",
		RunE:  runTagsList,
	}

	addCmd := &cobra.Command{
		Use:   "add <video-id> <tag>",
		Short: "Attach a tag to a video",
		Args:  cobra.ExactArgs(2),
		RunE:  runTagsAdd,
	}

	removeCmd := &cobra.Command{
		Use:   "remove <video-id> <tag>",
		Short: "Detach a tag from a video",
		Args:  cobra.ExactArgs(2),
		RunE:  runTagsRemove,
	}

	renameCmd := &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a tag everywhere",
		Args:  cobra.ExactArgs(2),
		RunE:  runTagsRename,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <tag>",
		Short: "Remove a tag from every video",
		Args:  cobra.ExactArgs(1),
		RunE:  runTagsDelete,
	}

	tagsCmd.AddCommand(listCmd, addCmd, removeCmd, renameCmd, deleteCmd)
	rootCmd.AddCommand(tagsCmd)
}

func runTagsList(cmd *cobra.Command, args []string) error {
	resp, err := NewClient(serverURL).Tags()
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(resp)
	}

	if len(resp.Items) == 0 {
		fmt.Println("No tags defined.")
		return nil
	}

	fmt.Printf("Tags (%d):\n\n", len(resp.Items))
	fmt.Printf("  %-30s %s\n", "NAME", "VIDEOS")
	fmt.Println("  " + strings.Repeat("-", 40))
	for _, t := range resp.Items {
		fmt.Printf("  %-30s %d\n", t.Name, t.VideoCount)
	}
	return nil
}

func runTagsAdd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	v, err := NewClient(serverURL).AddTag(id, args[1])
	if err != nil {
		return err
	}
	fmt.Printf("Tagged %s: %s\n", v.Title, strings.Join(v.Tags, ", "))
	return nil
}

func runTagsRemove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := NewClient(serverURL).RemoveTag(id, args[1]); err != nil {
		return err
	}
	fmt.Printf("Removed tag %q from video %d\n", args[1], id)
	return nil
}

func runTagsRename(cmd *cobra.Command, args []string) error {
	if err := NewClient(serverURL).RenameTag(args[0], args[1]); err != nil {
		return err
	}
	fmt.Printf("Renamed tag %q to %q\n", args[0], args[1])
	return nil
}

func runTagsDelete(cmd *cobra.Command, args []string) error {
	if err := NewClient(serverURL).DeleteTag(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted tag %q\n", args[0])
	return nil
}
