package keeper

import (
	"context"
	"math/big"

	math "cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"fiochain/x/fiostaking/types"
)

var (
	promCombinedPool = promauto.NewGauge(prometheus.GaugeOpts{
		Subsystem: types.ModuleName,
		Name:      "combined_token_pool",
		Help:      "Principal plus rewards backing all SRPs, in SUFs",
	})
	promStakedPool = promauto.NewGauge(prometheus.GaugeOpts{
		Subsystem: types.ModuleName,
		Name:      "staked_token_pool",
		Help:      "Principal staked, in SUFs",
	})
	promGlobalSrp = promauto.NewGauge(prometheus.GaugeOpts{
		Subsystem: types.ModuleName,
		Name:      "global_srp_count",
		Help:      "Outstanding staking reward points",
	})
	promOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Subsystem: types.ModuleName,
		Name:      "operations_total",
		Help:      "Staking operations committed, by operation",
	}, []string{"operation"})
)

func observeGlobalState(s types.GlobalStakingState) {
	promCombinedPool.Set(intToFloat(s.CombinedTokenPool))
	promStakedPool.Set(intToFloat(s.StakedTokenPool))
	promGlobalSrp.Set(intToFloat(s.GlobalSrpCount))
}

// observeCommitted refreshes the pool gauges from the state visible to ctx.
func (k Keeper) observeCommitted(ctx context.Context) {
	s, err := k.GetGlobalState(ctx)
	if err != nil {
		k.Logger(ctx).Error("failed to refresh pool gauges", "err", err)
		return
	}
	observeGlobalState(s)
}

func countOperation(op string) {
	promOperations.WithLabelValues(op).Inc()
}

func intToFloat(v math.Int) float64 {
	if v.IsNil() {
		return 0
	}
	f, _ := new(big.Float).SetInt(v.BigInt()).Float64()
	return f
}
