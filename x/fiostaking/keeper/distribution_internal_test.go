package keeper

import (
	"context"
	"testing"

	math "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/testutil"
	"github.com/stretchr/testify/require"

	"fiochain/x/fiostaking/types"
)

type tpidLedger map[string]math.Int

func (l tpidLedger) UpdateTpid(_ context.Context, tpid string, _ string, amount math.Int) error {
	l[tpid] = amount
	return nil
}

func TestPayTpidRewardGuard(t *testing.T) {
	ctx := testutil.DefaultContext(storetypes.NewKVStoreKey(types.StoreKey), storetypes.NewTransientStoreKey("transient_test"))

	tests := []struct {
		name         string
		combined     int64
		reward       int64
		wantCombined int64
	}{
		{name: "pool covers the reward", combined: 1_000, reward: 100, wantCombined: 900},
		{name: "pool exactly covers the reward", combined: 100, reward: 100, wantCombined: 0},
		{name: "reward exceeds pool, paid without deduction", combined: 99, reward: 100, wantCombined: 99},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ledger := tpidLedger{}
			k := Keeper{tpidKeeper: ledger}
			state := types.EmptyGlobalStakingState()
			state.CombinedTokenPool = math.NewInt(tc.combined)

			require.NoError(t, k.payTpidReward(ctx, &state, "wallet@fio", "actor", math.NewInt(tc.reward)))
			require.True(t, ledger["wallet@fio"].Equal(math.NewInt(tc.reward)))
			require.Equal(t, math.NewInt(tc.wantCombined).String(), state.CombinedTokenPool.String())
		})
	}
}
