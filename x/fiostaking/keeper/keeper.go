package keeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"fiochain/x/fiostaking/types"
)

// Collaborators are the external ledgers the staking engine talks to.
type Collaborators struct {
	VoterKeeper    types.VoterKeeper
	NameKeeper     types.NameKeeper
	FeeKeeper      types.FeeKeeper
	RewardKeeper   types.RewardKeeper
	BankKeeper     types.BankKeeper
	TreasuryKeeper types.TreasuryKeeper
	TpidKeeper     types.TpidKeeper
	LockKeeper     types.LockKeeper
}

type Keeper struct {
	storeService store.KVStoreService
	cdc          codec.Codec
	addressCodec address.Codec

	// authority is the address that can update params.
	authority []byte

	voterKeeper    types.VoterKeeper
	nameKeeper     types.NameKeeper
	feeKeeper      types.FeeKeeper
	rewardKeeper   types.RewardKeeper
	bankKeeper     types.BankKeeper
	treasuryKeeper types.TreasuryKeeper
	tpidKeeper     types.TpidKeeper
	lockKeeper     types.LockKeeper

	Schema        collections.Schema
	Params        collections.Item[types.Params]
	GlobalState   collections.Item[types.GlobalStakingState]
	AccountStakes collections.Map[string, types.AccountStake]
}

// jsonValueCodec stores hand written types as JSON, they are not protobuf messages.
type jsonValueCodec[T any] struct {
	name string
}

func (jsonValueCodec[T]) Encode(value T) ([]byte, error) { return json.Marshal(value) }
func (jsonValueCodec[T]) Decode(bz []byte) (T, error) {
	var v T
	return v, json.Unmarshal(bz, &v)
}
func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) { return c.Encode(value) }
func (c jsonValueCodec[T]) DecodeJSON(bz []byte) (T, error)    { return c.Decode(bz) }
func (c jsonValueCodec[T]) Stringify(value T) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bz)
}
func (c jsonValueCodec[T]) ValueType() string { return "fiostaking/" + c.name }

var (
	_ collcodec.ValueCodec[types.Params]             = jsonValueCodec[types.Params]{}
	_ collcodec.ValueCodec[types.GlobalStakingState] = jsonValueCodec[types.GlobalStakingState]{}
	_ collcodec.ValueCodec[types.AccountStake]       = jsonValueCodec[types.AccountStake]{}
)

func NewKeeper(
	storeService store.KVStoreService,
	cdc codec.Codec,
	addressCodec address.Codec,
	authority []byte,
	c Collaborators,
) Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %x: %s", authority, err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		cdc:          cdc,
		addressCodec: addressCodec,
		authority:    authority,

		voterKeeper:    c.VoterKeeper,
		nameKeeper:     c.NameKeeper,
		feeKeeper:      c.FeeKeeper,
		rewardKeeper:   c.RewardKeeper,
		bankKeeper:     c.BankKeeper,
		treasuryKeeper: c.TreasuryKeeper,
		tpidKeeper:     c.TpidKeeper,
		lockKeeper:     c.LockKeeper,

		Params:        collections.NewItem(sb, types.ParamsKey, "params", jsonValueCodec[types.Params]{name: "Params"}),
		GlobalState:   collections.NewItem(sb, types.GlobalStateKey, "global_state", jsonValueCodec[types.GlobalStakingState]{name: "GlobalStakingState"}),
		AccountStakes: collections.NewMap(sb, types.AccountStakeKeyPrefix, "account_stakes", collections.StringKey, jsonValueCodec[types.AccountStake]{name: "AccountStake"}),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte { return k.authority }

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	p, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}
	return p, nil
}

func (k Keeper) SetParams(ctx context.Context, p types.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return k.Params.Set(ctx, p)
}

// GetGlobalState loads the pool aggregate, zero valued before the first stake.
func (k Keeper) GetGlobalState(ctx context.Context) (types.GlobalStakingState, error) {
	s, err := k.GlobalState.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.EmptyGlobalStakingState(), nil
		}
		return types.GlobalStakingState{}, err
	}
	return s.Normalize(), nil
}

// SetGlobalState persists the pool aggregate.
func (k Keeper) SetGlobalState(ctx context.Context, s types.GlobalStakingState) error {
	return k.GlobalState.Set(ctx, s)
}

// GetAccountStake returns the staking row of account.
func (k Keeper) GetAccountStake(ctx context.Context, account string) (types.AccountStake, bool, error) {
	a, err := k.AccountStakes.Get(ctx, account)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.AccountStake{}, false, nil
		}
		return types.AccountStake{}, false, err
	}
	return a, true, nil
}

// blockTime is the unix time used for expirations and lock offsets.
func blockTime(ctx context.Context) int64 {
	return sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
}
