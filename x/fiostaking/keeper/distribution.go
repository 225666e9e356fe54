package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	math "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"fiochain/x/fiostaking/types"
)

// collectFee consumes a bundled credit or charges the quoted fee and hands it
// to the fee reward distributor.
func (k Keeper) collectFee(ctx context.Context, req stakeRequest, q feeQuote) error {
	if q.bundled {
		if err := k.nameKeeper.DecrementBundleCredits(ctx, req.fioAddress, 1); err != nil {
			return errorsmod.Wrap(err, "failed to decrement bundled transactions")
		}
		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventBundleCreditUsed,
				sdk.NewAttribute(types.AttrActor, req.actor),
				sdk.NewAttribute(types.AttrFioAddress, req.fioAddress),
			),
		)
		return nil
	}

	if err := k.feeKeeper.ChargeFee(ctx, req.actor, q.amount, q.endpoint); err != nil {
		return errorsmod.Wrap(err, "failed to charge fee")
	}
	if err := k.rewardKeeper.ProcessRewards(ctx, req.tpid, q.amount, req.actor); err != nil {
		return errorsmod.Wrap(err, "failed to process fee rewards")
	}
	if q.amount.IsPositive() {
		if err := k.voterKeeper.UpdateVotingPower(ctx, req.actor); err != nil {
			return errorsmod.Wrap(err, "failed to update voting power")
		}
	}
	return nil
}

// payStakingReward sends the staker's share of the reward from the treasury.
func (k Keeper) payStakingReward(ctx context.Context, actor string, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	if err := k.treasuryKeeper.PayStake(ctx, actor, amount); err != nil {
		return errorsmod.Wrap(err, "failed to pay staking reward")
	}
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventStakeRewardPaid,
			sdk.NewAttribute(types.AttrActor, actor),
			sdk.NewAttribute(types.AttrStakingReward, amount.String()),
		),
	)
	return nil
}

// payTpidReward credits the TPID and deducts the payout from the combined
// pool when the pool can cover it. The payout is made either way.
func (k Keeper) payTpidReward(ctx context.Context, state *types.GlobalStakingState, tpid, actor string, amount math.Int) error {
	if err := k.tpidKeeper.UpdateTpid(ctx, tpid, actor, amount); err != nil {
		return errorsmod.Wrap(err, "failed to pay tpid reward")
	}
	deducted := amount.LTE(state.CombinedTokenPool)
	if deducted {
		state.CombinedTokenPool = state.CombinedTokenPool.Sub(amount)
	} else {
		k.Logger(ctx).Info("tpid reward exceeds combined token pool, pool left unchanged",
			"tpid", tpid, "reward", amount.String(), "combined_token_pool", state.CombinedTokenPool.String())
	}
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTpidRewardPaid,
			sdk.NewAttribute(types.AttrTpid, tpid),
			sdk.NewAttribute(types.AttrActor, actor),
			sdk.NewAttribute(types.AttrTpidReward, amount.String()),
		),
	)
	return nil
}
