package cli

import (
	"fmt"

	"crypto-bot-api/internal/adapter/chain/solanarpc"

	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Print the public address of the configured wallet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		wallet, err := solanarpc.LoadWallet(cfg.Wallet)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), wallet.Address())
		return nil
	},
}
