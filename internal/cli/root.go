// Package cli implements the crypto-bot-api command line.
package cli

import (
	"fmt"
	"os"

	"crypto-bot-api/config"

	"github.com/spf13/cobra"
)

var (
	// Set at build time with -ldflags "-X crypto-bot-api/internal/cli.version=..."
	version = "0.1.0-dev"

	configFile string
)

// rootCmd runs the HTTP server when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "crypto-bot-api",
	Short: "HTTP API over a Solana wallet and the Jupiter price oracle",
	Long: `crypto-bot-api exposes a single service wallet over HTTP: balance lookups,
devnet airdrops, token prices from Jupiter and (not yet executed) buy/sell
orders.

Configuration is read from config.yaml in . or ./config, or from --config, and
can be overridden with CBA_* environment variables, e.g.:

  CBA_SOLANA_RPC_URL=https://api.devnet.solana.com
  CBA_WALLET_SECRET=<base58 or JSON byte array>`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "configuration file path")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and validates configuration for commands that need a wallet.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
