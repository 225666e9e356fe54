package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	math "cosmossdk.io/math"

	"fiochain/x/fiostaking/types"
)

// ExchangeRate returns how many SUFs one SRP redeems for. The rate is pinned
// to 1 while the combined pool is below threshold, then it is the pool to
// SRP ratio truncated toward zero.
func ExchangeRate(state types.GlobalStakingState, threshold math.Int) (math.Int, error) {
	if state.CombinedTokenPool.LT(threshold) {
		return math.OneInt(), nil
	}
	if !state.GlobalSrpCount.IsPositive() {
		return math.Int{}, errorsmod.Wrapf(types.ErrStateCorruption,
			"global srp count is %s with combined token pool %s", state.GlobalSrpCount, state.CombinedTokenPool)
	}
	rate := state.CombinedTokenPool.Quo(state.GlobalSrpCount)
	if !rate.IsPositive() {
		return math.Int{}, errorsmod.Wrapf(types.ErrStateCorruption,
			"rate of exchange is zero: combined token pool %s, global srp count %s", state.CombinedTokenPool, state.GlobalSrpCount)
	}
	return rate, nil
}

// CurrentExchangeRate evaluates ExchangeRate against the stored pool.
func (k Keeper) CurrentExchangeRate(ctx context.Context) (math.Int, error) {
	state, err := k.GetGlobalState(ctx)
	if err != nil {
		return math.Int{}, err
	}
	p, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return ExchangeRate(state, p.PoolMinimumThreshold)
}
