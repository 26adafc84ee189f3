package main

import (
	"context"
	"fmt"
	"strconv"

	"stableswap/internal/adapters/postgres"
	"stableswap/internal/app"
	"stableswap/internal/domain"

	"github.com/spf13/cobra"
)

// bankCmd seeds the postgres asset bank for local setups.
var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Manage the postgres asset bank",
}

var bankRegisterAssetCmd = &cobra.Command{
	Use:   "register-asset <asset>...",
	Short: "Register asset handles",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.WithAssetBank(configPath, func(ctx context.Context, bank *postgres.AssetBank) error {
			for _, a := range args {
				if err := bank.RegisterAsset(ctx, domain.AssetHandle(a)); err != nil {
					return err
				}
				cmd.Printf("registered %s\n", a)
			}
			return nil
		})
	},
}

var bankMintCmd = &cobra.Command{
	Use:   "mint <holder> <asset> <amount>",
	Short: "Credit an amount of an asset to a holder",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[2])
		if err != nil {
			return err
		}
		return app.WithAssetBank(configPath, func(ctx context.Context, bank *postgres.AssetBank) error {
			if err := bank.Mint(ctx, domain.Identity(args[0]), domain.AssetHandle(args[1]), amount); err != nil {
				return err
			}
			cmd.Printf("minted %d %s to %s\n", amount, args[1], args[0])
			return nil
		})
	},
}

var bankApproveCmd = &cobra.Command{
	Use:   "approve <owner> <spender> <asset> <amount>",
	Short: "Set the amount a spender may pull from an owner",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[3])
		if err != nil {
			return err
		}
		return app.WithAssetBank(configPath, func(ctx context.Context, bank *postgres.AssetBank) error {
			if err := bank.Approve(ctx, domain.Identity(args[0]), domain.Identity(args[1]), domain.AssetHandle(args[2]), amount); err != nil {
				return err
			}
			cmd.Printf("%s may pull %d %s from %s\n", args[1], amount, args[2], args[0])
			return nil
		})
	},
}

func parseAmount(raw string) (int64, error) {
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if amount < 0 {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, domain.ErrInvalidAmount)
	}
	return amount, nil
}

func init() {
	bankCmd.AddCommand(bankRegisterAssetCmd)
	bankCmd.AddCommand(bankMintCmd)
	bankCmd.AddCommand(bankApproveCmd)
}
