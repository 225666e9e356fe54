package keeper

import (
	"fmt"

	math "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"fiochain/x/fiostaking/types"
)

// RegisterInvariants registers the staking invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pool-backing", PoolBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "account-sums", AccountSumsInvariant(k))
}

// PoolBackingInvariant checks the pool aggregate on its own: counters are
// non-negative, the combined pool covers the staked pool and SRPs exist
// while anything is staked.
func PoolBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		s, err := k.GetGlobalState(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pool-backing", err.Error()), true
		}
		if err := s.Validate(); err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pool-backing", err.Error()), true
		}
		return sdk.FormatInvariant(types.ModuleName, "pool-backing", "pool counters consistent"), false
	}
}

// AccountSumsInvariant checks that account rows add up to the staked pool and
// the global SRP count.
func AccountSumsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		s, err := k.GetGlobalState(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "account-sums", err.Error()), true
		}
		staked, srp := math.ZeroInt(), math.ZeroInt()
		err = k.AccountStakes.Walk(ctx, nil, func(_ string, a types.AccountStake) (bool, error) {
			staked = staked.Add(a.TotalStakedFio)
			srp = srp.Add(a.TotalSrp)
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "account-sums", err.Error()), true
		}
		broken := !staked.Equal(s.StakedTokenPool) || !srp.Equal(s.GlobalSrpCount)
		msg := fmt.Sprintf("accounts staked %s / pool %s, accounts srp %s / global %s",
			staked, s.StakedTokenPool, srp, s.GlobalSrpCount)
		return sdk.FormatInvariant(types.ModuleName, "account-sums", msg), broken
	}
}
