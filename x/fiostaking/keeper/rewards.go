package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	math "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"fiochain/x/fiostaking/types"
)

// IncGlobalRewards earmarks amount as staking rewards: the rewards pool, the
// daily rewards and the combined pool all grow by amount.
func (k Keeper) IncGlobalRewards(ctx context.Context, authority string, amount math.Int) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return errorsmod.Wrap(err, "failed to load params")
	}
	if !params.IsRewardsAuthority(authority) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s may not increase global rewards", authority)
	}
	if amount.IsNil() || amount.IsNegative() {
		return types.NewFieldError(types.ErrInvalidAmount, "amount", intString(amount), "Invalid amount value")
	}

	state, err := k.GetGlobalState(ctx)
	if err != nil {
		return errorsmod.Wrap(err, "failed to load global staking state")
	}
	state.RewardsTokenPool = state.RewardsTokenPool.Add(amount)
	state.DailyStakingRewards = state.DailyStakingRewards.Add(amount)
	state.CombinedTokenPool = state.CombinedTokenPool.Add(amount)
	if err := k.SetGlobalState(ctx, state); err != nil {
		return errorsmod.Wrap(err, "failed to save global staking state")
	}

	k.Logger(ctx).Debug("global rewards increased", "source", authority, "amount", amount.String())
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventGlobalRewards,
			sdk.NewAttribute(types.AttrAmount, amount.String()),
			sdk.NewAttribute(types.AttrCombinedPool, state.CombinedTokenPool.String()),
		),
	)
	return nil
}

// RecordDaily adds amountToMint to the minted reserves and the daily rewards,
// then moves the daily rewards into the combined pool.
func (k Keeper) RecordDaily(ctx context.Context, authority string, amountToMint math.Int) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return errorsmod.Wrap(err, "failed to load params")
	}
	if authority != params.DailyRewardsAuthority {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s may not record daily rewards", authority)
	}
	if amountToMint.IsNil() {
		amountToMint = math.ZeroInt()
	}

	state, err := k.GetGlobalState(ctx)
	if err != nil {
		return errorsmod.Wrap(err, "failed to load global staking state")
	}
	if amountToMint.IsPositive() {
		state.StakingRewardsReservesMinted = state.StakingRewardsReservesMinted.Add(amountToMint)
		state.DailyStakingRewards = state.DailyStakingRewards.Add(amountToMint)
	}
	daily := state.DailyStakingRewards
	state.CombinedTokenPool = state.CombinedTokenPool.Add(daily)
	state.DailyStakingRewards = math.ZeroInt()
	if err := k.SetGlobalState(ctx, state); err != nil {
		return errorsmod.Wrap(err, "failed to save global staking state")
	}

	k.Logger(ctx).Info("daily staking rewards recorded",
		"minted", amountToMint.String(),
		"daily_rewards", daily.String(),
		"combined_token_pool", state.CombinedTokenPool.String(),
	)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventRecordDaily,
			sdk.NewAttribute(types.AttrAmount, amountToMint.String()),
			sdk.NewAttribute(types.AttrDailyRewards, daily.String()),
			sdk.NewAttribute(types.AttrCombinedPool, state.CombinedTokenPool.String()),
		),
	)
	return nil
}
