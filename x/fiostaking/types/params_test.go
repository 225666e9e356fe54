package types_test

import (
	"errors"
	"testing"

	errorsmod "cosmossdk.io/errors"
	math "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"fiochain/x/fiostaking/types"
)

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	mutate := func(fn func(*types.Params)) types.Params {
		p := types.DefaultParams()
		fn(&p)
		return p
	}
	bad := map[string]types.Params{
		"nil threshold":       mutate(func(p *types.Params) { p.PoolMinimumThreshold = math.Int{} }),
		"zero threshold":      mutate(func(p *types.Params) { p.PoolMinimumThreshold = math.ZeroInt() }),
		"zero lock duration":  mutate(func(p *types.Params) { p.UnstakeLockDuration = 0 }),
		"empty authority":     mutate(func(p *types.Params) { p.RewardsAuthorities = append(p.RewardsAuthorities, " ") }),
		"duplicate authority": mutate(func(p *types.Params) { p.RewardsAuthorities = append(p.RewardsAuthorities, p.RewardsAuthorities[0]) }),
		"no daily authority":  mutate(func(p *types.Params) { p.DailyRewardsAuthority = "" }),
	}
	for name, p := range bad {
		require.Error(t, p.Validate(), name)
	}
}

func TestIsRewardsAuthority(t *testing.T) {
	p := types.DefaultParams()
	require.Len(t, p.RewardsAuthorities, 7)
	require.True(t, p.IsRewardsAuthority(p.DailyRewardsAuthority))
	require.False(t, p.IsRewardsAuthority("someone"))
}

func TestFieldError(t *testing.T) {
	err := types.NewFieldError(types.ErrMaxFeeExceeded, "max_fee", "5", "Fee exceeds supplied maximum.")
	require.True(t, errors.Is(err, types.ErrMaxFeeExceeded))
	require.False(t, types.IsFatal(err))
	require.Contains(t, err.Error(), `field "max_fee"`)

	_, code, _ := errorsmod.ABCIInfo(err, false)
	require.Equal(t, types.ErrMaxFeeExceeded.ABCICode(), code)

	require.True(t, types.IsFatal(errorsmod.Wrap(types.ErrStateCorruption, "x")))
	require.True(t, types.IsFatal(errorsmod.Wrap(types.ErrUnauthorized, "x")))
}
