package keeper_test

import (
	"testing"

	math "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"fiochain/x/fiostaking/keeper"
	"fiochain/x/fiostaking/types"
)

func TestInvariantsHoldAfterOperations(t *testing.T) {
	f := initFixture(t)
	alice, bob := testAddr("alice"), testAddr("bob")
	f.fund(alice, 1_000_000, 0)
	f.fund(bob, 1_000_000, 0)

	_, err := f.keeper.StakeFio(f.ctx, &types.MsgStakeFio{Actor: alice, Amount: math.NewInt(400_000)})
	require.NoError(t, err)
	_, err = f.keeper.StakeFio(f.ctx, &types.MsgStakeFio{Actor: bob, Amount: math.NewInt(250_000)})
	require.NoError(t, err)
	require.NoError(t, f.keeper.IncGlobalRewards(f.ctx, types.DefaultParams().RewardsAuthorities[0], math.NewInt(90_000)))
	_, err = f.keeper.UnstakeFio(f.ctx, &types.MsgUnstakeFio{Actor: alice, Amount: math.NewInt(100_000)})
	require.NoError(t, err)

	msg, broken := keeper.PoolBackingInvariant(f.keeper)(f.ctx)
	require.False(t, broken, msg)
	msg, broken = keeper.AccountSumsInvariant(f.keeper)(f.ctx)
	require.False(t, broken, msg)
}

func TestAccountSumsInvariantBroken(t *testing.T) {
	f := initFixture(t)
	f.seed(t, testAddr("alice"), 1_000, 1_000, 1_000)
	require.NoError(t, f.keeper.AccountStakes.Set(f.ctx, testAddr("bob"), types.AccountStake{
		Account: testAddr("bob"), TotalStakedFio: math.NewInt(1), TotalSrp: math.NewInt(1),
	}))

	_, broken := keeper.AccountSumsInvariant(f.keeper)(f.ctx)
	require.True(t, broken)
	_, broken = keeper.PoolBackingInvariant(f.keeper)(f.ctx)
	require.False(t, broken)
}

func TestPoolBackingInvariantBroken(t *testing.T) {
	f := initFixture(t)
	require.NoError(t, f.keeper.SetGlobalState(f.ctx, pool(10, 20, 20)))

	_, broken := keeper.PoolBackingInvariant(f.keeper)(f.ctx)
	require.True(t, broken)
}
