package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/QueryGate/pdp-go/internal/directory"
	"github.com/QueryGate/pdp-go/internal/engine"
	"github.com/QueryGate/pdp-go/internal/types"
)

// Evaluates a request locally, without a running server. Exit code 0 for
// Allowed, 1 for Denied, 2 for Indeterminate.
func cmdCheck() *cobra.Command {
	var reqFile string
	var dirFile string

	c := &cobra.Command{
		Use:   "check",
		Short: "Evaluate a request file against a directory file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dirFile == "" {
				cfg, err := loadConfig(cfgPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				dirFile = cfg.Directory
			}
			if dirFile == "" {
				return fmt.Errorf("no directory file; pass -d or set it in the config")
			}

			req, err := readRequest(reqFile)
			if err != nil {
				return err
			}
			snap, err := directory.LoadFile(dirFile)
			if err != nil {
				return err
			}

			dec := engine.Evaluate(snap, req)
			out, _ := json.MarshalIndent(dec, "", "  ")
			fmt.Println(string(out))

			switch dec.Effect {
			case types.EffectAllowed:
				return nil
			case types.EffectDenied:
				os.Exit(1)
			default:
				os.Exit(2)
			}
			return nil
		},
	}
	c.Flags().StringVarP(&reqFile, "file", "f", "", "request JSON file (required)")
	c.Flags().StringVarP(&dirFile, "directory", "d", "", "users/roles directory JSON file")
	_ = c.MarkFlagRequired("file")
	return c
}

func readRequest(path string) (types.AccessRequest, error) {
	var req types.AccessRequest
	b, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read request file: %w", err)
	}
	if err := json.Unmarshal(b, &req); err != nil {
		return req, fmt.Errorf("parse request file %s: %w", path, err)
	}
	return req, nil
}
