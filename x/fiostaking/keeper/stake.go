package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	math "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"fiochain/x/fiostaking/types"
)

// StakeFio locks amount of the actor's usable balance and awards SRPs at the
// current rate of exchange. It returns the fee collected. Every check runs
// before the first write.
func (k Keeper) StakeFio(ctx context.Context, msg *types.MsgStakeFio) (math.Int, error) {
	req, err := k.validateStakeRequest(msg.Actor, msg.FioAddress, msg.Amount, msg.MaxFee, msg.Tpid)
	if err != nil {
		return math.Int{}, err
	}
	if err := k.requireVoter(ctx, req.actor); err != nil {
		return math.Int{}, err
	}
	credits, err := k.bundleCredits(ctx, req)
	if err != nil {
		return math.Int{}, err
	}
	quote, err := k.quoteFee(ctx, types.StakeFioTokensEndpoint, req, credits)
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
	rate, err := ExchangeRate(state, params.PoolMinimumThreshold)
	if err != nil {
		return math.Int{}, err
	}
	// Truncation favors the pool, never the staker.
	srps := req.amount.Quo(rate)

	account, found, err := k.GetAccountStake(ctx, req.actor)
	if err != nil {
		return math.Int{}, errorsmod.Wrap(err, "failed to load account stake")
	}
	if found && account.Account != req.actor {
		return math.Int{}, errorsmod.Wrapf(types.ErrStateCorruption, "account stake owner lookup error for %s", req.actor)
	}

	if err := k.collectFee(ctx, req, quote); err != nil {
		return math.Int{}, err
	}

	state.CombinedTokenPool = state.CombinedTokenPool.Add(req.amount)
	state.GlobalSrpCount = state.GlobalSrpCount.Add(srps)
	state.StakedTokenPool = state.StakedTokenPool.Add(req.amount)

	if found {
		account.TotalStakedFio = account.TotalStakedFio.Add(req.amount)
		account.TotalSrp = account.TotalSrp.Add(srps)
	} else {
		account = types.AccountStake{
			Account:        req.actor,
			TotalStakedFio: req.amount,
			TotalSrp:       srps,
		}
	}
	if err := k.AccountStakes.Set(ctx, req.actor, account); err != nil {
		return math.Int{}, errorsmod.Wrap(err, "failed to save account stake")
	}
	if err := k.SetGlobalState(ctx, state); err != nil {
		return math.Int{}, errorsmod.Wrap(err, "failed to save global staking state")
	}

	k.Logger(ctx).Info("staked",
		"actor", req.actor,
		"amount", req.amount.String(),
		"srps", srps.String(),
		"rate", rate.String(),
		"fee", quote.amount.String(),
	)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventStake,
			sdk.NewAttribute(types.AttrActor, req.actor),
			sdk.NewAttribute(types.AttrFioAddress, req.fioAddress),
			sdk.NewAttribute(types.AttrTpid, req.tpid),
			sdk.NewAttribute(types.AttrAmount, req.amount.String()),
			sdk.NewAttribute(types.AttrSrps, srps.String()),
			sdk.NewAttribute(types.AttrRate, rate.String()),
			sdk.NewAttribute(types.AttrFeeCollected, quote.amount.String()),
		),
	)

	return quote.amount, nil
}
