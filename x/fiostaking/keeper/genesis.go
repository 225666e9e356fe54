package keeper

import (
	"context"

	"fiochain/x/fiostaking/types"
)

// InitGenesis loads params, the pool aggregate and every account row.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if err := k.SetParams(ctx, gs.Params); err != nil {
		return err
	}
	if err := k.SetGlobalState(ctx, gs.GlobalState.Normalize()); err != nil {
		return err
	}
	for _, a := range gs.AccountStakes {
		if err := k.AccountStakes.Set(ctx, a.Account, a); err != nil {
			return err
		}
	}
	observeGlobalState(gs.GlobalState.Normalize())
	return nil
}

// ExportGenesis dumps the module state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	p, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	s, err := k.GetGlobalState(ctx)
	if err != nil {
		return nil, err
	}
	stakes := []types.AccountStake{}
	err = k.AccountStakes.Walk(ctx, nil, func(_ string, a types.AccountStake) (bool, error) {
		stakes = append(stakes, a)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return &types.GenesisState{Params: p, GlobalState: s, AccountStakes: stakes}, nil
}
