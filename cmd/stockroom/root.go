// Root command for the stockroom CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/paths"
)

// Exit codes: 0 success, 1 user error, 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataPath  string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataPath   string
	configListenAddr string
)

var rootCmd = &cobra.Command{
	Use:   "stockroom",
	Short: "Stockroom is a flat-file inventory store",
	Long: `Stockroom manages categories, products, suppliers and orders in a
single XML document. It provides CRUD commands per entity, a set of
cross-entity queries, and an HTTP API server.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataPath = cfg.GetString(cfgKeyDataPath)
		configListenAddr = cfg.GetString(cfgKeyListenAddr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataPath, "data-path", "", "data document path (default: $(CWD)/stock.xml)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(supplierCmd)
	rootCmd.AddCommand(orderCmd)
}

// resolveDataPath returns the data document path following the precedence:
// --data-path flag > config.yaml data_path > STOCKROOM_DATA_PATH env >
// default $(CWD)/stock.xml.
func resolveDataPath() (string, error) {
	return paths.ResolveDataPath(flagDataPath, configDataPath)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > STOCKROOM_CONFIG_DIR env > DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
