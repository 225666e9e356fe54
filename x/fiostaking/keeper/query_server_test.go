package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fiochain/x/fiostaking/keeper"
	"fiochain/x/fiostaking/types"
)

func TestQueryServer(t *testing.T) {
	f := initFixture(t)
	qs := keeper.NewQueryServerImpl(f.keeper)
	alice := testAddr("alice")
	f.setThreshold(t, 1_000)
	f.seed(t, alice, 1_000, 500, 2_000)

	params, err := qs.Params(f.ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, "1000", params.Params.PoolMinimumThreshold.String())

	gs, err := qs.GlobalState(f.ctx, &types.QueryGlobalStateRequest{})
	require.NoError(t, err)
	require.Equal(t, "2000", gs.State.CombinedTokenPool.String())

	rate, err := qs.ExchangeRate(f.ctx, &types.QueryExchangeRateRequest{})
	require.NoError(t, err)
	require.Equal(t, "4", rate.Rate.String())

	stake, err := qs.AccountStake(f.ctx, &types.QueryAccountStakeRequest{Account: alice})
	require.NoError(t, err)
	require.Equal(t, "500", stake.Stake.TotalSrp.String())

	stake, err = qs.AccountStake(f.ctx, &types.QueryAccountStakeRequest{Account: testAddr("bob")})
	require.NoError(t, err)
	require.True(t, stake.Stake.TotalStakedFio.IsZero())

	_, err = qs.AccountStake(f.ctx, &types.QueryAccountStakeRequest{Account: "not-an-address"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = qs.AccountStake(f.ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}
