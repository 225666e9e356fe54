package types

import (
	"context"

	math "cosmossdk.io/math"
)

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryGlobalStateRequest struct{}

type QueryGlobalStateResponse struct {
	State GlobalStakingState `json:"state"`
}

type QueryAccountStakeRequest struct {
	Account string `json:"account"`
}

type QueryAccountStakeResponse struct {
	Stake AccountStake `json:"stake"`
}

type QueryExchangeRateRequest struct{}

type QueryExchangeRateResponse struct {
	Rate math.Int `json:"rate"`
}

// QueryServer is the read only surface of the module.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	GlobalState(context.Context, *QueryGlobalStateRequest) (*QueryGlobalStateResponse, error)
	AccountStake(context.Context, *QueryAccountStakeRequest) (*QueryAccountStakeResponse, error)
	ExchangeRate(context.Context, *QueryExchangeRateRequest) (*QueryExchangeRateResponse, error)
}
