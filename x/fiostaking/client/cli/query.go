package cli

import (
	"encoding/json"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"fiochain/x/fiostaking/client/storeview"
	"fiochain/x/fiostaking/types"
)

func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the fiostaking module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		getParamsCmd(),
		getGlobalStateCmd(),
		getAccountStakeCmd(),
		getExchangeRateCmd(),
	)
	return cmd
}

func getParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Shows the parameters of the module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			p, height, err := storeview.Params(storeview.FromClientContext(clientCtx))
			if err != nil {
				return err
			}
			return printJSON(cmd, clientCtx, p, height)
		},
	}

	addQueryFlags(cmd)
	return cmd
}

func getGlobalStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Shows the global staking pool counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			s, height, err := storeview.GlobalState(storeview.FromClientContext(clientCtx))
			if err != nil {
				return err
			}
			return printJSON(cmd, clientCtx, s, height)
		},
	}

	addQueryFlags(cmd)
	return cmd
}

func getAccountStakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account [address]",
		Short: "Shows the staked amount and SRPs of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			if _, err := sdk.AccAddressFromBech32(args[0]); err != nil {
				return err
			}
			a, height, err := storeview.AccountStake(storeview.FromClientContext(clientCtx), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, clientCtx, a, height)
		},
	}

	addQueryFlags(cmd)
	return cmd
}

func getExchangeRateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Shows the current SRP rate of exchange",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			rate, height, err := storeview.ExchangeRate(storeview.FromClientContext(clientCtx))
			if err != nil {
				return err
			}
			return printJSON(cmd, clientCtx, types.QueryExchangeRateResponse{Rate: rate}, height)
		},
	}

	addQueryFlags(cmd)
	return cmd
}

func addQueryFlags(cmd *cobra.Command) {
	flags.AddQueryFlagsToCmd(cmd)
	cmd.Flags().AddFlagSet(FlagSetWithHeight())
}

func printJSON(cmd *cobra.Command, clientCtx client.Context, v any, height int64) error {
	withHeight, err := cmd.Flags().GetBool(FlagWithHeight)
	if err != nil {
		return err
	}
	if withHeight {
		v = struct {
			Height int64 `json:"height"`
			Result any   `json:"result"`
		}{height, v}
	}
	out, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(out) + "\n")
}
