package types

import (
	"fmt"

	math "cosmossdk.io/math"
)

// GlobalStakingState is the singleton aggregate of the staking pool counters.
// All amounts are in SUFs, the smallest token unit.
type GlobalStakingState struct {
	CombinedTokenPool            math.Int `json:"combined_token_pool" yaml:"combined_token_pool"`
	StakedTokenPool              math.Int `json:"staked_token_pool" yaml:"staked_token_pool"`
	RewardsTokenPool             math.Int `json:"rewards_token_pool" yaml:"rewards_token_pool"`
	DailyStakingRewards          math.Int `json:"daily_staking_rewards" yaml:"daily_staking_rewards"`
	GlobalSrpCount               math.Int `json:"global_srp_count" yaml:"global_srp_count"`
	StakingRewardsReservesMinted math.Int `json:"staking_rewards_reserves_minted" yaml:"staking_rewards_reserves_minted"`
}

// EmptyGlobalStakingState returns a state with every counter at zero.
func EmptyGlobalStakingState() GlobalStakingState {
	return GlobalStakingState{
		CombinedTokenPool:            math.ZeroInt(),
		StakedTokenPool:              math.ZeroInt(),
		RewardsTokenPool:             math.ZeroInt(),
		DailyStakingRewards:          math.ZeroInt(),
		GlobalSrpCount:               math.ZeroInt(),
		StakingRewardsReservesMinted: math.ZeroInt(),
	}
}

// Normalize replaces nil counters (missing JSON fields) with zero.
func (s GlobalStakingState) Normalize() GlobalStakingState {
	s.CombinedTokenPool = orZero(s.CombinedTokenPool)
	s.StakedTokenPool = orZero(s.StakedTokenPool)
	s.RewardsTokenPool = orZero(s.RewardsTokenPool)
	s.DailyStakingRewards = orZero(s.DailyStakingRewards)
	s.GlobalSrpCount = orZero(s.GlobalSrpCount)
	s.StakingRewardsReservesMinted = orZero(s.StakingRewardsReservesMinted)
	return s
}

// Validate checks the pool invariants.
func (s GlobalStakingState) Validate() error {
	counters := []struct {
		name string
		v    math.Int
	}{
		{"combined_token_pool", s.CombinedTokenPool},
		{"staked_token_pool", s.StakedTokenPool},
		{"rewards_token_pool", s.RewardsTokenPool},
		{"daily_staking_rewards", s.DailyStakingRewards},
		{"global_srp_count", s.GlobalSrpCount},
		{"staking_rewards_reserves_minted", s.StakingRewardsReservesMinted},
	}
	for _, c := range counters {
		if c.v.IsNil() {
			return fmt.Errorf("%s cannot be nil", c.name)
		}
		if c.v.IsNegative() {
			return fmt.Errorf("%s cannot be negative: %s", c.name, c.v)
		}
	}
	if s.CombinedTokenPool.LT(s.StakedTokenPool) {
		return fmt.Errorf("combined_token_pool %s is below staked_token_pool %s", s.CombinedTokenPool, s.StakedTokenPool)
	}
	if s.StakedTokenPool.IsPositive() && !s.GlobalSrpCount.IsPositive() {
		return fmt.Errorf("global_srp_count must be positive while %s is staked", s.StakedTokenPool)
	}
	return nil
}

// AccountStake is the per account staking record.
type AccountStake struct {
	Account        string   `json:"account" yaml:"account"`
	TotalStakedFio math.Int `json:"total_staked_fio" yaml:"total_staked_fio"`
	TotalSrp       math.Int `json:"total_srp" yaml:"total_srp"`
}

// Validate checks an account row in isolation.
func (a AccountStake) Validate() error {
	if a.Account == "" {
		return fmt.Errorf("account cannot be empty")
	}
	if a.TotalStakedFio.IsNil() || a.TotalStakedFio.IsNegative() {
		return fmt.Errorf("account %s: invalid total_staked_fio", a.Account)
	}
	if a.TotalSrp.IsNil() || a.TotalSrp.IsNegative() {
		return fmt.Errorf("account %s: invalid total_srp", a.Account)
	}
	return nil
}

func orZero(v math.Int) math.Int {
	if v.IsNil() {
		return math.ZeroInt()
	}
	return v
}
