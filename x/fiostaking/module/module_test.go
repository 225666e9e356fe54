package module_test

import (
	"context"
	"encoding/json"
	"testing"

	math "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	fiostaking "fiochain/x/fiostaking/module"
	"fiochain/x/fiostaking/types"
)

type noopLedger struct{}

func (noopLedger) HasVotedOrProxied(context.Context, string) (bool, error) { return true, nil }
func (noopLedger) UpdateVotingPower(context.Context, string) error { return nil }
func (noopLedger) GetFioName(context.Context, string) (types.FioName, bool, error) {
	return types.FioName{}, false, nil
}
func (noopLedger) DecrementBundleCredits(context.Context, string, uint64) error { return nil }
func (noopLedger) GetFeeByEndpoint(_ context.Context, endpoint string) (types.Fee, bool, error) {
	return types.Fee{Endpoint: endpoint, Type: types.FeeTypeBundleEligible, Amount: math.ZeroInt()}, true, nil
}
func (noopLedger) ChargeFee(context.Context, string, math.Int, string) error { return nil }
func (noopLedger) ProcessRewards(context.Context, string, math.Int, string) error { return nil }
func (noopLedger) UsableBalance(context.Context, string, bool) (math.Int, error) { return math.NewInt(1_000_000), nil }
func (noopLedger) PayStake(context.Context, string, math.Int) error { return nil }
func (noopLedger) UpdateTpid(context.Context, string, string, math.Int) error { return nil }
func (noopLedger) GetGeneralLock(context.Context, string) (types.GeneralLock, bool, error) {
	return types.GeneralLock{}, false, nil
}
func (noopLedger) CreateGeneralLock(context.Context, string, []types.LockPeriod, bool, math.Int) error {
	return nil
}
func (noopLedger) ModifyGeneralLock(context.Context, string, []types.LockPeriod, math.Int, math.Int) error {
	return nil
}

type invariantRoutes []string

func (r *invariantRoutes) RegisterRoute(moduleName, route string, _ sdk.Invariant) {
	*r = append(*r, moduleName+"/"+route)
}

func provide(t *testing.T) (sdk.Context, fiostaking.ModuleOutputs) {
	t.Helper()
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	ctx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test")).Ctx

	out := fiostaking.ProvideModule(fiostaking.ModuleInputs{
		StoreService:   runtime.NewKVStoreService(storeKey),
		Cdc:            moduletestutil.MakeTestEncodingConfig().Codec,
		AddressCodec:   addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		VoterKeeper:    noopLedger{},
		NameKeeper:     noopLedger{},
		FeeKeeper:      noopLedger{},
		RewardKeeper:   noopLedger{},
		BankKeeper:     noopLedger{},
		TreasuryKeeper: noopLedger{},
		TpidKeeper:     noopLedger{},
		LockKeeper:     noopLedger{},
	})
	return ctx, out
}

func TestGenesisRoundTrip(t *testing.T) {
	ctx, out := provide(t)
	am, ok := out.Module.(fiostaking.AppModule)
	require.True(t, ok)

	basic := fiostaking.AppModuleBasic{}
	def := basic.DefaultGenesis(nil)
	require.NoError(t, basic.ValidateGenesis(nil, nil, def))
	require.Error(t, basic.ValidateGenesis(nil, nil, json.RawMessage(`{"params":{"pool_minimum_threshold":"0"}}`)))

	am.InitGenesis(ctx, nil, def)

	actor := sdk.AccAddress(make([]byte, 20)).String()
	res, err := am.MsgServer().StakeFio(ctx, &types.MsgStakeFio{Actor: actor, Amount: math.NewInt(2_500)})
	require.NoError(t, err)
	require.Equal(t, types.StatusOK, res.Status)

	exported := am.ExportGenesis(ctx, nil)
	var gs types.GenesisState
	require.NoError(t, json.Unmarshal(exported, &gs))
	require.NoError(t, gs.Validate())
	require.Equal(t, "2500", gs.GlobalState.StakedTokenPool.String())
	require.Len(t, gs.AccountStakes, 1)

	stake, err := am.QueryServer().AccountStake(ctx, &types.QueryAccountStakeRequest{Account: actor})
	require.NoError(t, err)
	require.Equal(t, "2500", stake.Stake.TotalSrp.String())
}

func TestProvideModuleUsesGovAuthority(t *testing.T) {
	_, out := provide(t)
	require.Equal(t, []byte(authtypes.NewModuleAddress(types.GovModuleName)), out.FioStakingKeeper.GetAuthority())
}

func TestRegisterInvariants(t *testing.T) {
	_, out := provide(t)
	var routes invariantRoutes
	out.Module.(fiostaking.AppModule).RegisterInvariants(&routes)
	require.ElementsMatch(t, []string{"fiostaking/pool-backing", "fiostaking/account-sums"}, routes)
}
