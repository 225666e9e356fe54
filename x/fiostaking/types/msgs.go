package types

import (
	"context"

	math "cosmossdk.io/math"
)

// StatusOK is the status of every successful stake or unstake response.
const StatusOK = "OK"

// MsgStakeFio locks Amount SUFs of Actor in exchange for SRPs.
type MsgStakeFio struct {
	FioAddress string   `json:"fio_address"`
	Amount     math.Int `json:"amount"`
	MaxFee     math.Int `json:"max_fee"`
	Tpid       string   `json:"tpid"`
	Actor      string   `json:"actor"`
}

type MsgStakeFioResponse struct {
	Status       string   `json:"status"`
	FeeCollected math.Int `json:"fee_collected"`
}

// MsgUnstakeFio redeems the SRPs backing Amount SUFs of Actor's stake.
type MsgUnstakeFio struct {
	FioAddress string   `json:"fio_address"`
	Amount     math.Int `json:"amount"`
	MaxFee     math.Int `json:"max_fee"`
	Tpid       string   `json:"tpid"`
	Actor      string   `json:"actor"`
}

type MsgUnstakeFioResponse struct {
	Status       string   `json:"status"`
	FeeCollected math.Int `json:"fee_collected"`
}

// MsgIncGlobalRewards earmarks Amount SUFs, collected from fees or minted,
// as staking rewards.
type MsgIncGlobalRewards struct {
	Authority string   `json:"authority"`
	Amount    math.Int `json:"amount"`
}

type MsgIncGlobalRewardsResponse struct{}

// MsgRecordDaily folds the day's staking rewards into the combined pool.
type MsgRecordDaily struct {
	Authority    string   `json:"authority"`
	AmountToMint math.Int `json:"amount_to_mint"`
}

type MsgRecordDailyResponse struct{}

// MsgUpdateParams replaces the module params. Authority must be the keeper authority.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// MsgServer is the message handler surface of the module.
type MsgServer interface {
	StakeFio(context.Context, *MsgStakeFio) (*MsgStakeFioResponse, error)
	UnstakeFio(context.Context, *MsgUnstakeFio) (*MsgUnstakeFioResponse, error)
	IncGlobalRewards(context.Context, *MsgIncGlobalRewards) (*MsgIncGlobalRewardsResponse, error)
	RecordDaily(context.Context, *MsgRecordDaily) (*MsgRecordDailyResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}
