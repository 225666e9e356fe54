// Package storeview decodes fiostaking state read straight from the module
// store by off-chain clients.
package storeview

import (
	"encoding/json"
	"fmt"

	math "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/client"

	"fiochain/x/fiostaking/keeper"
	"fiochain/x/fiostaking/types"
)

// QueryFunc reads a raw key from a named store and returns the value and the
// height it was read at.
type QueryFunc func(key []byte, storeName string) ([]byte, int64, error)

// FromClientContext reads through the node the client context points to.
func FromClientContext(clientCtx client.Context) QueryFunc {
	return func(key []byte, storeName string) ([]byte, int64, error) {
		return clientCtx.QueryStore(key, storeName)
	}
}

// Params returns the stored params, or defaults when unset.
func Params(q QueryFunc) (types.Params, int64, error) {
	bz, height, err := q(types.ParamsKey.Bytes(), types.StoreKey)
	if err != nil {
		return types.Params{}, 0, err
	}
	if len(bz) == 0 {
		return types.DefaultParams(), height, nil
	}
	var p types.Params
	if err := json.Unmarshal(bz, &p); err != nil {
		return types.Params{}, height, fmt.Errorf("decode params: %w", err)
	}
	return p, height, nil
}

// GlobalState returns the pool aggregate, zero valued when unset.
func GlobalState(q QueryFunc) (types.GlobalStakingState, int64, error) {
	bz, height, err := q(types.GlobalStateKey.Bytes(), types.StoreKey)
	if err != nil {
		return types.GlobalStakingState{}, 0, err
	}
	if len(bz) == 0 {
		return types.EmptyGlobalStakingState(), height, nil
	}
	var s types.GlobalStakingState
	if err := json.Unmarshal(bz, &s); err != nil {
		return types.GlobalStakingState{}, height, fmt.Errorf("decode global state: %w", err)
	}
	return s.Normalize(), height, nil
}

// AccountStake returns the staking row of account, zero valued when absent.
func AccountStake(q QueryFunc, account string) (types.AccountStake, int64, error) {
	bz, height, err := q(types.AccountStakeStoreKey(account), types.StoreKey)
	if err != nil {
		return types.AccountStake{}, 0, err
	}
	if len(bz) == 0 {
		return types.AccountStake{Account: account, TotalStakedFio: math.ZeroInt(), TotalSrp: math.ZeroInt()}, height, nil
	}
	var a types.AccountStake
	if err := json.Unmarshal(bz, &a); err != nil {
		return types.AccountStake{}, height, fmt.Errorf("decode account stake: %w", err)
	}
	return a, height, nil
}

// ExchangeRate evaluates the rate of exchange against the stored pool.
func ExchangeRate(q QueryFunc) (math.Int, int64, error) {
	p, _, err := Params(q)
	if err != nil {
		return math.Int{}, 0, err
	}
	s, height, err := GlobalState(q)
	if err != nil {
		return math.Int{}, 0, err
	}
	rate, err := keeper.ExchangeRate(s, p.PoolMinimumThreshold)
	if err != nil {
		return math.Int{}, height, err
	}
	return rate, height, nil
}
