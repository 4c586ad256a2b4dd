package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Posts a request file to a running decision server.
func cmdDecide() *cobra.Command {
	var reqFile string

	c := &cobra.Command{
		Use:   "decide",
		Short: "Send a request file to a running decision server",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := os.ReadFile(reqFile)
			if err != nil {
				return fmt.Errorf("read request file: %w", err)
			}

			resp, status, err := httpDoJSON("POST", baseURL+"/v1/decision", body, nil)
			if err != nil {
				return err
			}
			if status != 200 {
				return fmt.Errorf("server returned %d: %s", status, string(resp))
			}
			return printJSON(resp)
		},
	}
	c.Flags().StringVarP(&reqFile, "file", "f", "", "request JSON file (required)")
	_ = c.MarkFlagRequired("file")
	return c
}
