package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	baseURL  string
	showCurl bool
	cfgPath  string
)

var rootCmd = &cobra.Command{
	Use:   "pdp",
	Short: "QueryGate policy decision point for data-access requests",
}

func Execute() error { return rootCmd.Execute() }

func init() {
	home, _ := os.UserHomeDir()
	defaultCfg := filepath.Join(home, ".pdp", "config.yaml")

	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "http://localhost:8086", "decision server base URL")
	rootCmd.PersistentFlags().BoolVar(&showCurl, "show-curl", false, "print equivalent curl for networked commands")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultCfg, "config file path")

	// Wire top level groups
	rootCmd.AddCommand(cmdInit(), cmdRun(), cmdCheck(), cmdDecide(), cmdDirectory(), cmdVersion())

	// Friendly hint on no args
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:   "help",
		Short: "Show help",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().Help()
		},
	})
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		fmt.Println("Use -h for help, for example: pdp check -f samples/request.json -d samples/directory.json")
	}
}
