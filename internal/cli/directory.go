package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/QueryGate/pdp-go/internal/directory"
)

func cmdDirectory() *cobra.Command {
	c := &cobra.Command{
		Use:   "directory",
		Short: "Directory file tooling",
	}
	c.AddCommand(cmdDirectoryValidate())
	return c
}

func cmdDirectoryValidate() *cobra.Command {
	var dirFile string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Load a directory file and report its contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := directory.LoadFile(dirFile)
			if err != nil {
				return fmt.Errorf("directory invalid: %w", err)
			}
			out, _ := json.MarshalIndent(snap.Stats(), "", "  ")
			fmt.Println(string(out))
			return nil
		},
	}
	c.Flags().StringVarP(&dirFile, "directory", "d", "", "users/roles directory JSON file (required)")
	_ = c.MarkFlagRequired("directory")
	return c
}
