package types

import (
	"fmt"
	"strings"

	math "cosmossdk.io/math"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// DefaultUnstakeLockDuration is the vesting delay applied to unstaked funds: 7 days.
	DefaultUnstakeLockDuration uint64 = 604800

	// Module accounts allowed to feed rewards into the pool by default.
	TreasuryModuleName = "fiotreasury"
	FeeModuleName      = "fiofee"
	AddressModuleName  = "fioaddress"
	TokenModuleName    = "fiotoken"
	RequestModuleName  = "fioreqobt"
	SystemModuleName   = "fiosystem"
)

// DefaultPoolMinimumThreshold is 1,000,000 FIO expressed in SUFs.
var DefaultPoolMinimumThreshold = math.NewInt(1_000_000_000_000_000)

// Params defines staking configuration.
type Params struct {
	// PoolMinimumThreshold is the combined pool size below which the rate of
	// exchange is pinned to 1.
	PoolMinimumThreshold math.Int `json:"pool_minimum_threshold" yaml:"pool_minimum_threshold"`
	// UnstakeLockDuration is the number of seconds unstaked funds stay locked.
	UnstakeLockDuration uint64 `json:"unstake_lock_duration" yaml:"unstake_lock_duration"`
	// RewardsAuthorities may call MsgIncGlobalRewards.
	RewardsAuthorities []string `json:"rewards_authorities" yaml:"rewards_authorities"`
	// DailyRewardsAuthority is the only caller of MsgRecordDaily.
	DailyRewardsAuthority string `json:"daily_rewards_authority" yaml:"daily_rewards_authority"`
}

// DefaultParams returns the mainnet defaults.
func DefaultParams() Params {
	sources := []string{
		AddressModuleName,
		TokenModuleName,
		TreasuryModuleName,
		ModuleName,
		RequestModuleName,
		SystemModuleName,
		FeeModuleName,
	}
	authorities := make([]string, 0, len(sources))
	for _, name := range sources {
		authorities = append(authorities, authtypes.NewModuleAddress(name).String())
	}
	return Params{
		PoolMinimumThreshold:  DefaultPoolMinimumThreshold,
		UnstakeLockDuration:   DefaultUnstakeLockDuration,
		RewardsAuthorities:    authorities,
		DailyRewardsAuthority: authtypes.NewModuleAddress(TreasuryModuleName).String(),
	}
}

// Validate checks param bounds.
func (p Params) Validate() error {
	if p.PoolMinimumThreshold.IsNil() || !p.PoolMinimumThreshold.IsPositive() {
		return fmt.Errorf("pool_minimum_threshold must be positive")
	}
	if p.UnstakeLockDuration == 0 {
		return fmt.Errorf("unstake_lock_duration must be positive")
	}
	seen := make(map[string]struct{}, len(p.RewardsAuthorities))
	for _, a := range p.RewardsAuthorities {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("rewards_authorities cannot contain empty addresses")
		}
		if _, dup := seen[a]; dup {
			return fmt.Errorf("duplicate rewards authority %s", a)
		}
		seen[a] = struct{}{}
	}
	if strings.TrimSpace(p.DailyRewardsAuthority) == "" {
		return fmt.Errorf("daily_rewards_authority cannot be empty")
	}
	return nil
}

// IsRewardsAuthority reports whether addr may increase the global rewards.
func (p Params) IsRewardsAuthority(addr string) bool {
	for _, a := range p.RewardsAuthorities {
		if a == addr {
			return true
		}
	}
	return false
}
