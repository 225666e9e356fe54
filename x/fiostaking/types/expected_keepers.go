package types

import (
	"context"

	math "cosmossdk.io/math"
)

// FeeTypeBundleEligible is the fee type of endpoints that may consume
// bundled transaction credits.
const FeeTypeBundleEligible uint64 = 1

// Fee endpoints charged by this module.
const (
	StakeFioTokensEndpoint   = "stake_fio_tokens"
	UnstakeFioTokensEndpoint = "unstake_fio_tokens"
)

// FioName is a registered FIO address as seen by the name registry.
type FioName struct {
	Name          string
	Owner         string
	Expiration    int64
	BundleCredits uint64
}

// Fee is a fee schedule entry.
type Fee struct {
	Endpoint string
	Type     uint64
	Amount   math.Int
}

// VoterKeeper defines the expected voter registry.
type VoterKeeper interface {
	// HasVotedOrProxied reports whether account voted for producers, set a
	// proxy or is an auto proxy.
	HasVotedOrProxied(ctx context.Context, account string) (bool, error)
	UpdateVotingPower(ctx context.Context, account string) error
}

// NameKeeper defines the expected FIO address registry.
type NameKeeper interface {
	GetFioName(ctx context.Context, name string) (FioName, bool, error)
	DecrementBundleCredits(ctx context.Context, name string, count uint64) error
}

// FeeKeeper defines the expected fee schedule.
type FeeKeeper interface {
	GetFeeByEndpoint(ctx context.Context, endpoint string) (Fee, bool, error)
	ChargeFee(ctx context.Context, payer string, amount math.Int, endpoint string) error
}

// RewardKeeper defines the expected fee reward distributor.
type RewardKeeper interface {
	ProcessRewards(ctx context.Context, tpid string, amount math.Int, payer string) error
}

// BankKeeper defines the expected balance collaborator.
type BankKeeper interface {
	// UsableBalance is the account balance minus reserved and locked funds.
	UsableBalance(ctx context.Context, account string, excludeLocks bool) (math.Int, error)
}

// TreasuryKeeper defines the expected treasury.
type TreasuryKeeper interface {
	PayStake(ctx context.Context, account string, amount math.Int) error
}

// TpidKeeper defines the expected TPID reward ledger.
type TpidKeeper interface {
	UpdateTpid(ctx context.Context, tpid string, payer string, amount math.Int) error
}

// LockKeeper defines the expected general lock ledger.
type LockKeeper interface {
	GetGeneralLock(ctx context.Context, owner string) (GeneralLock, bool, error)
	CreateGeneralLock(ctx context.Context, owner string, periods []LockPeriod, canVote bool, amount math.Int) error
	// ModifyGeneralLock replaces the whole period list of an existing lock.
	ModifyGeneralLock(ctx context.Context, owner string, periods []LockPeriod, lockAmount, remainingLockAmount math.Int) error
}
