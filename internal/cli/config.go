package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/pipegen/internal/app"
	"github.com/tacogips/pipegen/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the pipegen configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the default configuration to ~/.config/pipegen/config.yaml
(or $PIPEGEN_CONFIG, or --config) so it can be edited.

Examples:
  pipegen config init
  pipegen config init --config ./pipegen.yaml --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var (
	configInitPath  string
	configInitForce bool
)

func init() {
	configInitCmd.Flags().StringVarP(&configInitPath, FlagConfig, "c", "", DescConfig)
	configInitCmd.Flags().BoolVarP(&configInitForce, FlagForce, "f", false, "Overwrite an existing configuration file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configInitPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("invalid config path: %w", err)
	}

	if err := app.InitConfig(expanded, configInitForce); err != nil {
		return err
	}
	printSuccess("Wrote configuration to " + expanded)
	return nil
}
