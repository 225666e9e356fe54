package keeper

import (
	"context"

	math "cosmossdk.io/math"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fiochain/x/fiostaking/types"
)

type queryServer struct {
	Keeper
}

var _ types.QueryServer = queryServer{}

func NewQueryServerImpl(k Keeper) types.QueryServer {
	return &queryServer{Keeper: k}
}

func (q queryServer) Params(ctx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	p, err := q.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryParamsResponse{Params: p}, nil
}

func (q queryServer) GlobalState(ctx context.Context, _ *types.QueryGlobalStateRequest) (*types.QueryGlobalStateResponse, error) {
	s, err := q.GetGlobalState(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryGlobalStateResponse{State: s}, nil
}

func (q queryServer) AccountStake(ctx context.Context, req *types.QueryAccountStakeRequest) (*types.QueryAccountStakeResponse, error) {
	if req == nil || req.Account == "" {
		return nil, status.Error(codes.InvalidArgument, "account required")
	}
	if _, err := q.addressCodec.StringToBytes(req.Account); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid account address")
	}
	a, found, err := q.GetAccountStake(ctx, req.Account)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !found {
		a = types.AccountStake{Account: req.Account, TotalStakedFio: math.ZeroInt(), TotalSrp: math.ZeroInt()}
	}
	return &types.QueryAccountStakeResponse{Stake: a}, nil
}

func (q queryServer) ExchangeRate(ctx context.Context, _ *types.QueryExchangeRateRequest) (*types.QueryExchangeRateResponse, error) {
	rate, err := q.CurrentExchangeRate(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryExchangeRateResponse{Rate: rate}, nil
}
