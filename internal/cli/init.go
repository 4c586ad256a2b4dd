package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func cmdInit() *cobra.Command {
	var dirPath string
	var jwksPath string
	var fga string

	c := &cobra.Command{
		Use:   "init",
		Short: "Create ~/.pdp/config.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &Config{
				ListenAddr:  ":8086",
				Directory:   dirPath,
				JWKS:        jwksPath,
				FGAEndpoint: fga,
			}
			if err := saveConfig(cfgPath, cfg); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", cfgPath)
			return nil
		},
	}
	c.Flags().StringVarP(&dirPath, "directory", "d", "", "default users/roles directory JSON file")
	c.Flags().StringVar(&jwksPath, "jwks", "", "default JWKS file for bearer subjects")
	c.Flags().StringVar(&fga, "fga-endpoint", "", "OpenFGA endpoint URL")
	return c
}
