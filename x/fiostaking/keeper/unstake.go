package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	math "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"fiochain/x/fiostaking/types"
)

// UnstakeAmounts is the outcome of redeeming part of an account's stake.
type UnstakeAmounts struct {
	SrpsToClaim   math.Int
	Rate          math.Int
	TotalReward   math.Int
	StakingReward math.Int
	TpidReward    math.Int
}

// ComputeUnstake redeems the same fraction of the account's SRPs as the
// fraction of principal withdrawn and splits the reward 9/10 to the staker
// and 1/10 to the TPID. The remainder of the reward modulo 10 stays in the
// pool. It fails with ErrStateCorruption when the reward would be negative or
// a counter would underflow.
func ComputeUnstake(account types.AccountStake, state types.GlobalStakingState, amount, threshold math.Int) (UnstakeAmounts, error) {
	if !account.TotalStakedFio.IsPositive() {
		return UnstakeAmounts{}, errorsmod.Wrapf(types.ErrStateCorruption, "account %s has nothing staked", account.Account)
	}

	// floor(total_srp * amount / total_staked) without an intermediate rounded ratio
	srps := account.TotalSrp.Mul(amount).Quo(account.TotalStakedFio)

	rate, err := ExchangeRate(state, threshold)
	if err != nil {
		return UnstakeAmounts{}, err
	}

	redeemed := srps.Mul(rate)
	if redeemed.LT(amount) {
		return UnstakeAmounts{}, errorsmod.Wrapf(types.ErrStateCorruption,
			"invalid total reward: srps to claim %s at rate %s redeem %s, less than unstaked %s", srps, rate, redeemed, amount)
	}
	totalReward := redeemed.Sub(amount)
	tenth := totalReward.QuoRaw(10)
	stakingReward := tenth.MulRaw(9)
	tpidReward := tenth

	if account.TotalSrp.LT(srps) {
		return UnstakeAmounts{}, errorsmod.Wrapf(types.ErrStateCorruption, "account srps %s below srps to claim %s", account.TotalSrp, srps)
	}
	if account.TotalStakedFio.LT(amount) {
		return UnstakeAmounts{}, errorsmod.Wrapf(types.ErrStateCorruption, "account staked %s below unstaked %s", account.TotalStakedFio, amount)
	}
	if state.CombinedTokenPool.LT(amount.Add(stakingReward)) {
		return UnstakeAmounts{}, errorsmod.Wrapf(types.ErrStateCorruption,
			"combined token pool %s below unstaked amount plus staking reward %s", state.CombinedTokenPool, amount.Add(stakingReward))
	}
	if state.StakedTokenPool.LT(amount) {
		return UnstakeAmounts{}, errorsmod.Wrapf(types.ErrStateCorruption, "staked token pool %s below unstaked %s", state.StakedTokenPool, amount)
	}
	if state.GlobalSrpCount.LT(srps) {
		return UnstakeAmounts{}, errorsmod.Wrapf(types.ErrStateCorruption, "global srp count %s below srps to claim %s", state.GlobalSrpCount, srps)
	}

	return UnstakeAmounts{
		SrpsToClaim:   srps,
		Rate:          rate,
		TotalReward:   totalReward,
		StakingReward: stakingReward,
		TpidReward:    tpidReward,
	}, nil
}

// UnstakeFio redeems SRPs for amount of the actor's stake, pays the rewards
// and locks principal plus staking reward in the actor's general lock. It
// returns the fee collected.
func (k Keeper) UnstakeFio(ctx context.Context, msg *types.MsgUnstakeFio) (math.Int, error) {
	req, err := k.validateStakeRequest(msg.Actor, msg.FioAddress, msg.Amount, msg.MaxFee, msg.Tpid)
	if err != nil {
		return math.Int{}, err
	}
	credits, err := k.bundleCredits(ctx, req)
	if err != nil {
		return math.Int{}, err
	}

	account, found, err := k.GetAccountStake(ctx, req.actor)
	if err != nil {
		return math.Int{}, errorsmod.Wrap(err, "failed to load account stake")
	}
	if !found {
		return math.Int{}, errorsmod.Wrapf(types.ErrStateCorruption, "actor %s has no account stake record", req.actor)
	}
	if account.Account != req.actor {
		return math.Int{}, errorsmod.Wrapf(types.ErrStateCorruption, "account stake lookup error for %s", req.actor)
	}
	if account.TotalStakedFio.LT(req.amount) {
		return math.Int{}, types.NewFieldError(types.ErrUnstakeExceedsStake, "amount", req.amount.String(), "Cannot unstake more than staked.")
	}

	quote, err := k.quoteFee(ctx, types.UnstakeFioTokensEndpoint, req, credits)
	if err != nil {
		return math.Int{}, err
	}
	if err := k.requireUsableBalance(ctx, req, quote); err != nil {
		return math.Int{}, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, errorsmod.Wrap(err, "failed to load params")
	}
	state, err := k.GetGlobalState(ctx)
	if err != nil {
		return math.Int{}, errorsmod.Wrap(err, "failed to load global staking state")
	}
	out, err := ComputeUnstake(account, state, req.amount, params.PoolMinimumThreshold)
	if err != nil {
		return math.Int{}, err
	}

	payTpid := req.tpid != "" && out.TpidReward.IsPositive()
	if payTpid {
		if _, err := k.activeName(ctx, "tpid", req.tpid); err != nil {
			return math.Int{}, err
		}
	}
	plan, err := k.planLock(ctx, req.actor, out.StakingReward.Add(req.amount), params.UnstakeLockDuration)
	if err != nil {
		return math.Int{}, err
	}

	if err := k.collectFee(ctx, req, quote); err != nil {
		return math.Int{}, err
	}

	account.TotalStakedFio = account.TotalStakedFio.Sub(req.amount)
	account.TotalSrp = account.TotalSrp.Sub(out.SrpsToClaim)
	if err := k.AccountStakes.Set(ctx, req.actor, account); err != nil {
		return math.Int{}, errorsmod.Wrap(err, "failed to save account stake")
	}

	if err := k.payStakingReward(ctx, req.actor, out.StakingReward); err != nil {
		return math.Int{}, err
	}

	state.CombinedTokenPool = state.CombinedTokenPool.Sub(req.amount.Add(out.StakingReward))
	state.StakedTokenPool = state.StakedTokenPool.Sub(req.amount)
	state.GlobalSrpCount = state.GlobalSrpCount.Sub(out.SrpsToClaim)

	if payTpid {
		if err := k.payTpidReward(ctx, &state, req.tpid, req.actor, out.TpidReward); err != nil {
			return math.Int{}, err
		}
	}
	if err := k.SetGlobalState(ctx, state); err != nil {
		return math.Int{}, errorsmod.Wrap(err, "failed to save global staking state")
	}

	if err := k.applyLock(ctx, req.actor, plan, params.UnstakeLockDuration); err != nil {
		return math.Int{}, err
	}

	k.Logger(ctx).Info("unstaked",
		"actor", req.actor,
		"amount", req.amount.String(),
		"srps", out.SrpsToClaim.String(),
		"rate", out.Rate.String(),
		"staking_reward", out.StakingReward.String(),
		"tpid_reward", out.TpidReward.String(),
		"fee", quote.amount.String(),
	)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventUnstake,
			sdk.NewAttribute(types.AttrActor, req.actor),
			sdk.NewAttribute(types.AttrFioAddress, req.fioAddress),
			sdk.NewAttribute(types.AttrTpid, req.tpid),
			sdk.NewAttribute(types.AttrAmount, req.amount.String()),
			sdk.NewAttribute(types.AttrSrps, out.SrpsToClaim.String()),
			sdk.NewAttribute(types.AttrRate, out.Rate.String()),
			sdk.NewAttribute(types.AttrStakingReward, out.StakingReward.String()),
			sdk.NewAttribute(types.AttrTpidReward, out.TpidReward.String()),
			sdk.NewAttribute(types.AttrFeeCollected, quote.amount.String()),
		),
	)

	return quote.amount, nil
}
