package keeper

import (
	"bytes"
	"context"

	errorsmod "cosmossdk.io/errors"
	math "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"fiochain/x/fiostaking/types"
)

type msgServer struct {
	Keeper
}

var _ types.MsgServer = msgServer{}

func NewMsgServerImpl(k Keeper) types.MsgServer {
	return &msgServer{Keeper: k}
}

// runAtomic runs fn on a cached context and commits its writes and events only
// when fn succeeds. Metrics are refreshed from the committed state.
func (m msgServer) runAtomic(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()

	countOperation(op)
	m.observeCommitted(sdkCtx)
	return nil
}

func (m msgServer) StakeFio(ctx context.Context, req *types.MsgStakeFio) (*types.MsgStakeFioResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount
	}
	var fee math.Int
	err := m.runAtomic(ctx, "stake", func(ctx context.Context) error {
		var err error
		fee, err = m.Keeper.StakeFio(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgStakeFioResponse{Status: types.StatusOK, FeeCollected: fee}, nil
}

func (m msgServer) UnstakeFio(ctx context.Context, req *types.MsgUnstakeFio) (*types.MsgUnstakeFioResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount
	}
	var fee math.Int
	err := m.runAtomic(ctx, "unstake", func(ctx context.Context) error {
		var err error
		fee, err = m.Keeper.UnstakeFio(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgUnstakeFioResponse{Status: types.StatusOK, FeeCollected: fee}, nil
}

func (m msgServer) IncGlobalRewards(ctx context.Context, req *types.MsgIncGlobalRewards) (*types.MsgIncGlobalRewardsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount
	}
	err := m.runAtomic(ctx, "inc_global_rewards", func(ctx context.Context) error {
		return m.Keeper.IncGlobalRewards(ctx, req.Authority, req.Amount)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgIncGlobalRewardsResponse{}, nil
}

func (m msgServer) RecordDaily(ctx context.Context, req *types.MsgRecordDaily) (*types.MsgRecordDailyResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount
	}
	err := m.runAtomic(ctx, "record_daily", func(ctx context.Context) error {
		return m.Keeper.RecordDaily(ctx, req.Authority, req.AmountToMint)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgRecordDailyResponse{}, nil
}

func (m msgServer) UpdateParams(ctx context.Context, req *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidSigner
	}
	authority, err := m.addressCodec.StringToBytes(req.Authority)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid authority address")
	}
	if !bytes.Equal(authority, m.authority) {
		return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %x, got %s", m.authority, req.Authority)
	}
	if err := req.Params.Validate(); err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidParams, err.Error())
	}
	if err := m.SetParams(ctx, req.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
