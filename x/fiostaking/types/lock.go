package types

import (
	"fmt"

	math "cosmossdk.io/math"
)

// PercentPrecision is the number of decimals kept for lock period percents.
const PercentPrecision = 3

var (
	// HundredPercent is the required sum of every lock schedule.
	HundredPercent = math.LegacyNewDec(100)

	percentScale = math.LegacyNewDec(1000)
)

// LockPeriod unlocks Percent of a lock once Duration seconds have elapsed
// since the lock timestamp.
type LockPeriod struct {
	Duration uint64         `json:"duration" yaml:"duration"`
	Percent  math.LegacyDec `json:"percent" yaml:"percent"`
}

// GeneralLock is a time vested unlock schedule owned by the lock ledger.
type GeneralLock struct {
	Owner               string       `json:"owner" yaml:"owner"`
	LockAmount          math.Int     `json:"lock_amount" yaml:"lock_amount"`
	RemainingLockAmount math.Int     `json:"remaining_lock_amount" yaml:"remaining_lock_amount"`
	Timestamp           int64        `json:"timestamp" yaml:"timestamp"`
	Periods             []LockPeriod `json:"periods" yaml:"periods"`
	CanVote             bool         `json:"can_vote" yaml:"can_vote"`
}

// TruncatePercent floors d to PercentPrecision decimals. It never rounds up.
func TruncatePercent(d math.LegacyDec) math.LegacyDec {
	return d.Mul(percentScale).TruncateDec().Quo(percentScale)
}

// IsPercentTruncated reports whether d carries no more than PercentPrecision decimals.
func IsPercentTruncated(d math.LegacyDec) bool {
	return TruncatePercent(d).Equal(d)
}

// SumPercent adds the percents of periods.
func SumPercent(periods []LockPeriod) math.LegacyDec {
	sum := math.LegacyZeroDec()
	for _, p := range periods {
		sum = sum.Add(p.Percent)
	}
	return sum
}

// ValidatePeriods checks that periods are ascending by duration, use at most
// PercentPrecision decimals and add up to exactly 100.000.
func ValidatePeriods(periods []LockPeriod) error {
	if len(periods) == 0 {
		return fmt.Errorf("lock periods cannot be empty")
	}
	for i, p := range periods {
		if p.Percent.IsNil() || p.Percent.IsNegative() {
			return fmt.Errorf("period %d: invalid percent", i)
		}
		if !IsPercentTruncated(p.Percent) {
			return fmt.Errorf("period %d: percent %s exceeds %d decimals", i, p.Percent, PercentPrecision)
		}
		if i > 0 && p.Duration <= periods[i-1].Duration {
			return fmt.Errorf("period %d: duration %d not ascending", i, p.Duration)
		}
	}
	if sum := SumPercent(periods); !sum.Equal(HundredPercent) {
		return fmt.Errorf("lock periods sum to %s, expected 100", sum)
	}
	return nil
}
