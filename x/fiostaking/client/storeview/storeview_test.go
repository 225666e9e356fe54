package storeview_test

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	math "cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"fiochain/x/fiostaking/client/storeview"
	"fiochain/x/fiostaking/keeper"
	"fiochain/x/fiostaking/types"
)

// The raw keys clients read must match what the keeper's collections write.
func TestReadsCommittedKeeperState(t *testing.T) {
	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	key := storetypes.NewKVStoreKey(types.StoreKey)
	cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	require.NoError(t, cms.LoadLatestVersion())

	ctx := sdk.NewContext(cms, cmtproto.Header{Time: time.Unix(1_700_000_000, 0)}, false, log.NewNopLogger())
	k := keeper.NewKeeper(
		runtime.NewKVStoreService(key),
		moduletestutil.MakeTestEncodingConfig().Codec,
		addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		authtypes.NewModuleAddress(types.GovModuleName),
		keeper.Collaborators{},
	)

	q := func(bz []byte, storeName string) ([]byte, int64, error) {
		require.Equal(t, types.StoreKey, storeName)
		return cms.GetCommitKVStore(key).Get(bz), cms.LastCommitID().Version, nil
	}

	// nothing written yet
	p, _, err := storeview.Params(q)
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams().UnstakeLockDuration, p.UnstakeLockDuration)
	rate, _, err := storeview.ExchangeRate(q)
	require.NoError(t, err)
	require.Equal(t, "1", rate.String())

	actor := sdk.AccAddress(make([]byte, 20)).String()
	params := types.DefaultParams()
	params.PoolMinimumThreshold = math.NewInt(100)
	require.NoError(t, k.SetParams(ctx, params))
	s := types.EmptyGlobalStakingState()
	s.CombinedTokenPool = math.NewInt(900)
	s.StakedTokenPool = math.NewInt(300)
	s.GlobalSrpCount = math.NewInt(300)
	require.NoError(t, k.SetGlobalState(ctx, s))
	require.NoError(t, k.AccountStakes.Set(ctx, actor, types.AccountStake{
		Account: actor, TotalStakedFio: math.NewInt(300), TotalSrp: math.NewInt(300),
	}))
	cms.Commit()

	p, height, err := storeview.Params(q)
	require.NoError(t, err)
	require.Equal(t, int64(1), height)
	require.Equal(t, "100", p.PoolMinimumThreshold.String())

	gs, _, err := storeview.GlobalState(q)
	require.NoError(t, err)
	require.Equal(t, "900", gs.CombinedTokenPool.String())

	a, _, err := storeview.AccountStake(q, actor)
	require.NoError(t, err)
	require.Equal(t, "300", a.TotalSrp.String())

	missing, _, err := storeview.AccountStake(q, sdk.AccAddress(make([]byte, 32)).String())
	require.NoError(t, err)
	require.True(t, missing.TotalStakedFio.IsZero())

	rate, _, err = storeview.ExchangeRate(q)
	require.NoError(t, err)
	require.Equal(t, "3", rate.String())
}
