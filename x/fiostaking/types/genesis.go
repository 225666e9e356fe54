package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	math "cosmossdk.io/math"
)

// GenesisState is the module genesis.
type GenesisState struct {
	Params        Params             `json:"params" yaml:"params"`
	GlobalState   GlobalStakingState `json:"global_state" yaml:"global_state"`
	AccountStakes []AccountStake     `json:"account_stakes" yaml:"account_stakes"`
}

// DefaultGenesis returns an empty pool with default params.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		GlobalState:   EmptyGlobalStakingState(),
		AccountStakes: []AccountStake{},
	}
}

// Validate checks params, the pool invariants and that the account rows add
// up to the pool counters.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
	}
	state := gs.GlobalState.Normalize()
	if err := state.Validate(); err != nil {
		return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
	}

	staked, srp := math.ZeroInt(), math.ZeroInt()
	seen := make(map[string]struct{}, len(gs.AccountStakes))
	for _, a := range gs.AccountStakes {
		if err := a.Validate(); err != nil {
			return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
		}
		if _, dup := seen[a.Account]; dup {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate account stake %s", a.Account)
		}
		seen[a.Account] = struct{}{}
		staked = staked.Add(a.TotalStakedFio)
		srp = srp.Add(a.TotalSrp)
	}
	if !staked.Equal(state.StakedTokenPool) {
		return errorsmod.Wrap(ErrInvalidGenesis, fmt.Sprintf("account stakes add up to %s, staked_token_pool is %s", staked, state.StakedTokenPool))
	}
	if !srp.Equal(state.GlobalSrpCount) {
		return errorsmod.Wrap(ErrInvalidGenesis, fmt.Sprintf("account srps add up to %s, global_srp_count is %s", srp, state.GlobalSrpCount))
	}
	return nil
}
