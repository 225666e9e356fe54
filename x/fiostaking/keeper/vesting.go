package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	math "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"fiochain/x/fiostaking/types"
)

// VestingMerge is the full replacement of a general lock after unstaked
// funds were folded into it.
type VestingMerge struct {
	Periods             []types.LockPeriod
	LockAmount          math.Int
	RemainingLockAmount math.Int
	// InsertDuration is the offset, in the lock's own time frame, at which
	// the added funds fully vest.
	InsertDuration uint64
	// Folded is set when InsertDuration matched an existing period.
	Folded bool
}

// NewVestingSchedule is the schedule of a fresh lock: everything unlocks
// after lockDuration.
func NewVestingSchedule(lockDuration uint64) []types.LockPeriod {
	return []types.LockPeriod{{Duration: lockDuration, Percent: types.HundredPercent}}
}

// MergeVestingSchedule folds added into lock at time now.
//
// Existing percents are scaled by old/(old+added) and floored to three
// decimals. The funds vest lockDuration seconds from now; the period at that
// offset, existing or inserted, absorbs 100 minus the scaled sum so the
// schedule always adds up to exactly 100.000.
func MergeVestingSchedule(lock types.GeneralLock, added math.Int, now int64, lockDuration uint64) (VestingMerge, error) {
	if added.IsNil() || !added.IsPositive() {
		return VestingMerge{}, errorsmod.Wrapf(types.ErrStateCorruption, "invalid amount %s added to lock", intString(added))
	}
	if lock.LockAmount.IsNil() || lock.LockAmount.IsNegative() ||
		lock.RemainingLockAmount.IsNil() || lock.RemainingLockAmount.IsNegative() {
		return VestingMerge{}, errorsmod.Wrapf(types.ErrStateCorruption, "invalid lock amounts for %s", lock.Owner)
	}
	if now < lock.Timestamp {
		return VestingMerge{}, errorsmod.Wrapf(types.ErrStateCorruption, "lock of %s starts in the future", lock.Owner)
	}
	for i := 1; i < len(lock.Periods); i++ {
		if lock.Periods[i].Duration <= lock.Periods[i-1].Duration {
			return VestingMerge{}, errorsmod.Wrapf(types.ErrStateCorruption, "lock periods of %s are not ascending", lock.Owner)
		}
	}

	newTotal := lock.LockAmount.Add(added)
	oldShare := math.LegacyNewDecFromInt(lock.LockAmount).QuoTruncate(math.LegacyNewDecFromInt(newTotal))
	insertDuration := uint64(now-lock.Timestamp) + lockDuration

	periods := make([]types.LockPeriod, 0, len(lock.Periods)+1)
	scaledSum := math.LegacyZeroDec()
	matched := -1
	insertAt := len(lock.Periods)
	for i, p := range lock.Periods {
		if p.Percent.IsNil() {
			return VestingMerge{}, errorsmod.Wrapf(types.ErrStateCorruption, "lock period %d of %s has no percent", i, lock.Owner)
		}
		percent := types.TruncatePercent(p.Percent.MulTruncate(oldShare))
		scaledSum = scaledSum.Add(percent)
		if p.Duration == insertDuration {
			matched = i
		}
		if p.Duration > insertDuration && insertAt == len(lock.Periods) {
			insertAt = i
		}
		periods = append(periods, types.LockPeriod{Duration: p.Duration, Percent: percent})
	}

	remainder := types.HundredPercent.Sub(scaledSum)
	if remainder.IsNegative() {
		return VestingMerge{}, errorsmod.Wrapf(types.ErrStateCorruption, "lock periods of %s exceed 100 percent", lock.Owner)
	}

	if matched >= 0 {
		periods[matched].Percent = periods[matched].Percent.Add(remainder)
	} else {
		periods = append(periods, types.LockPeriod{})
		copy(periods[insertAt+1:], periods[insertAt:])
		periods[insertAt] = types.LockPeriod{Duration: insertDuration, Percent: remainder}
	}

	if err := types.ValidatePeriods(periods); err != nil {
		return VestingMerge{}, errorsmod.Wrapf(types.ErrStateCorruption, "merged lock of %s: %s", lock.Owner, err)
	}

	return VestingMerge{
		Periods:             periods,
		LockAmount:          newTotal,
		RemainingLockAmount: lock.RemainingLockAmount.Add(added),
		InsertDuration:      insertDuration,
		Folded:              matched >= 0,
	}, nil
}

// lockPlan is the lock collaborator call decided before any state change.
type lockPlan struct {
	create bool
	amount math.Int
	merge  VestingMerge
}

func (k Keeper) planLock(ctx context.Context, owner string, added math.Int, lockDuration uint64) (lockPlan, error) {
	lock, found, err := k.lockKeeper.GetGeneralLock(ctx, owner)
	if err != nil {
		return lockPlan{}, errorsmod.Wrap(err, "failed to query general locks")
	}
	if !found {
		return lockPlan{create: true, amount: added}, nil
	}
	merge, err := MergeVestingSchedule(lock, added, blockTime(ctx), lockDuration)
	if err != nil {
		return lockPlan{}, err
	}
	return lockPlan{merge: merge}, nil
}

// applyLock pushes the planned schedule to the lock ledger in one call.
func (k Keeper) applyLock(ctx context.Context, owner string, plan lockPlan, lockDuration uint64) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if plan.create {
		if err := k.lockKeeper.CreateGeneralLock(ctx, owner, NewVestingSchedule(lockDuration), true, plan.amount); err != nil {
			return errorsmod.Wrap(err, "failed to create general lock")
		}
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventLockCreated,
				sdk.NewAttribute(types.AttrActor, owner),
				sdk.NewAttribute(types.AttrLockAmount, plan.amount.String()),
			),
		)
		return nil
	}

	m := plan.merge
	if err := k.lockKeeper.ModifyGeneralLock(ctx, owner, m.Periods, m.LockAmount, m.RemainingLockAmount); err != nil {
		return errorsmod.Wrap(err, "failed to modify general lock")
	}
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventLockModified,
			sdk.NewAttribute(types.AttrActor, owner),
			sdk.NewAttribute(types.AttrLockAmount, m.LockAmount.String()),
			sdk.NewAttribute(types.AttrInsertDuration, strconv.FormatUint(m.InsertDuration, 10)),
		),
	)
	return nil
}
