package module

import (
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/appmodule"
	"cosmossdk.io/core/store"
	"cosmossdk.io/depinject"
	"github.com/cosmos/cosmos-sdk/codec"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"fiochain/x/fiostaking/keeper"
	"fiochain/x/fiostaking/types"
)

var _ depinject.OnePerModuleType = AppModule{}

// IsOnePerModuleType implements the depinject.OnePerModuleType interface.
func (AppModule) IsOnePerModuleType() {}

type ModuleInputs struct {
	depinject.In

	StoreService store.KVStoreService
	Cdc          codec.Codec
	AddressCodec address.Codec

	VoterKeeper    types.VoterKeeper
	NameKeeper     types.NameKeeper
	FeeKeeper      types.FeeKeeper
	RewardKeeper   types.RewardKeeper
	BankKeeper     types.BankKeeper
	TreasuryKeeper types.TreasuryKeeper
	TpidKeeper     types.TpidKeeper
	LockKeeper     types.LockKeeper
}

type ModuleOutputs struct {
	depinject.Out

	FioStakingKeeper keeper.Keeper
	Module           appmodule.AppModule
}

func ProvideModule(in ModuleInputs) ModuleOutputs {
	// default to governance authority
	authority := authtypes.NewModuleAddress(types.GovModuleName)

	k := keeper.NewKeeper(
		in.StoreService,
		in.Cdc,
		in.AddressCodec,
		authority,
		keeper.Collaborators{
			VoterKeeper:    in.VoterKeeper,
			NameKeeper:     in.NameKeeper,
			FeeKeeper:      in.FeeKeeper,
			RewardKeeper:   in.RewardKeeper,
			BankKeeper:     in.BankKeeper,
			TreasuryKeeper: in.TreasuryKeeper,
			TpidKeeper:     in.TpidKeeper,
			LockKeeper:     in.LockKeeper,
		},
	)
	m := NewAppModule(k)
	return ModuleOutputs{FioStakingKeeper: k, Module: m}
}
