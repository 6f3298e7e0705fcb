// Root command for the tally CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cowl/internal/paths"
	"github.com/mesh-intelligence/cowl/internal/store"
	"github.com/mesh-intelligence/cowl/pkg/cowl"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE, available to all
// subcommands.
var (
	configDataDir string
	configFold    bool
	configMinLen  int
)

var rootCmd = &cobra.Command{
	Use:          "tally",
	Short:        "Tally indexes words from text files into a persistent store",
	Version:      cowl.Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configFold = cfg.GetBool(cfgKeyFold)
		configMinLen = cfg.GetInt(cfgKeyMinLength)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.tally-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(resetCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence flag > TALLY_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence
// flag > config.yaml data_dir > TALLY_DATA_DIR env > $(CWD)/.tally-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// openStore opens the word-index store in the resolved data directory.
func openStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	return store.Open(dataDir)
}
