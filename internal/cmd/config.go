package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ledgerline/ledgerline/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ledgerline configuration",
	Long: `View and edit the configuration file at ~/.ledgerline/config.yaml.

Keys:
  api.url              base URL of the expense platform API
  api.timeout_seconds  request timeout
  defaults.format      default output format (text, json, yaml)
  defaults.org_id      organization selected by 'ledgerline org switch'
  logging.level        log level (debug, info, warn, error)
  logging.format       log format (text, json)`,
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the full configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(loadedConfig())
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := loadedConfig().Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadedConfig()
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := saveConfig(cfg); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.DefaultDir()
		if err != nil {
			return err
		}
		fmt.Println(config.Path(dir))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}
