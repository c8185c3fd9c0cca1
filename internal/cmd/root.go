// Package cmd wires the ledgerline command tree. Every command that talks
// to the platform goes through the same pipeline client and, for protected
// commands, through the workspace guard.
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerline/ledgerline/internal/api"
	"github.com/ledgerline/ledgerline/internal/config"
	"github.com/ledgerline/ledgerline/internal/errors"
	"github.com/ledgerline/ledgerline/internal/log"
	"github.com/ledgerline/ledgerline/internal/session"
	"github.com/ledgerline/ledgerline/internal/ux"
	"github.com/ledgerline/ledgerline/internal/workspace"
)

var rootCmd = &cobra.Command{
	Use:   "ledgerline",
	Short: "Multi-tenant expense and budget tracking",
	Long: `ledgerline is the terminal client for the expense platform.
It tracks projects, budgets, and transactions across the organizations you
belong to, with an approval workflow for projects that require one.

Log in once with 'ledgerline auth login'; every other command reuses the
stored session. Run 'ledgerline ui' for the interactive dashboard.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := loadedConfig()
		log.SetDefaultLogger(log.New(log.Config{
			Level:  log.ParseLevel(cfg.Logging.Level),
			Format: log.ParseFormat(cfg.Logging.Format),
			Output: os.Stderr,
		}))
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var flagOutput string

func init() {
	rootCmd.PersistentFlags().StringVar(&flagOutput, "output", "", "output format (text, json, yaml)")
}

// cachedConfig is loaded once per invocation
var cachedConfig *config.Config

func loadedConfig() *config.Config {
	if cachedConfig != nil {
		return cachedConfig
	}
	dir, err := config.DefaultDir()
	if err != nil {
		cachedConfig = config.Default()
		return cachedConfig
	}
	cfg, err := config.Load(dir)
	if err != nil {
		cachedConfig = config.Default()
		return cachedConfig
	}
	cachedConfig = cfg
	return cachedConfig
}

func saveConfig(cfg *config.Config) error {
	dir, err := config.DefaultDir()
	if err != nil {
		return err
	}
	return config.Save(cfg, dir)
}

// newClient builds the pipeline client from the loaded configuration.
// The busy counter and notification center it carries are shared with the
// TUI when one is attached.
func newClient() *api.Client {
	cfg := loadedConfig()
	return api.NewClient(cfg.API.URL, api.WithTimeout(cfg.Timeout()))
}

// openWorkspace is the protected entry point: it refuses without a stored
// session and scopes everything that follows to the selected organization.
func openWorkspace() (*workspace.Workspace, *api.Client, error) {
	store, err := session.DefaultStore()
	if err != nil {
		return nil, nil, err
	}
	cfg := loadedConfig()
	workspace.SetPreferredOrgID(func() string { return cfg.Defaults.OrgID })

	client := newClient()
	ws, err := workspace.Load(client, store)
	if err != nil {
		return nil, nil, err
	}
	return ws, client, nil
}

// selectedOrg returns the workspace's selected organization or a guidance error
func selectedOrg(ws *workspace.Workspace) (api.Organization, error) {
	org, ok := ws.Selected()
	if !ok {
		return api.Organization{}, errors.New(errors.ErrCodeOrgNotSelected, "no organization selected").
			WithSuggestion("Run 'ledgerline org switch <org-id>' to pick one")
	}
	return org, nil
}

// output formats data per --output, falling back to the configured default
func output(data interface{}) error {
	return outputTo(os.Stdout, data)
}

func outputTo(w io.Writer, data interface{}) error {
	format := flagOutput
	if format == "" {
		format = loadedConfig().Defaults.Format
	}
	f, err := ux.NewFormatter(format, &ux.FormatterOptions{Writer: w})
	if err != nil {
		return err
	}
	return f.Format(data)
}
