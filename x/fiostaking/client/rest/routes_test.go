package rest_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cosmossdk.io/log"
	math "cosmossdk.io/math"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"fiochain/x/fiostaking/client/rest"
	"fiochain/x/fiostaking/client/storeview"
	"fiochain/x/fiostaking/types"
)

type fakeStore map[string][]byte

func (s fakeStore) query() storeview.QueryFunc {
	return func(key []byte, storeName string) ([]byte, int64, error) {
		if storeName != types.StoreKey {
			return nil, 0, errors.New("unknown store")
		}
		return s[string(key)], 42, nil
	}
}

func (s fakeStore) put(t *testing.T, key []byte, v any) {
	t.Helper()
	bz, err := json.Marshal(v)
	require.NoError(t, err)
	s[string(key)] = bz
}

func newRouter(q storeview.QueryFunc) *mux.Router {
	router := mux.NewRouter()
	validate := func(addr string) error {
		if addr == "bad" {
			return errors.New("bad address")
		}
		return nil
	}
	rest.RegisterRoutes(router, q, validate, log.NewNopLogger())
	return router
}

func get(t *testing.T, router *mux.Router, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestStateRoute(t *testing.T) {
	store := fakeStore{}
	state := types.EmptyGlobalStakingState()
	state.CombinedTokenPool = math.NewInt(5_000)
	state.StakedTokenPool = math.NewInt(4_000)
	state.GlobalSrpCount = math.NewInt(4_000)
	store.put(t, types.GlobalStateKey.Bytes(), state)

	rec, body := get(t, newRouter(store.query()), "/fio/staking/v1/state")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "42", string(body["height"]))

	var res types.QueryGlobalStateResponse
	require.NoError(t, json.Unmarshal(body["result"], &res))
	require.Equal(t, "5000", res.State.CombinedTokenPool.String())
	require.Equal(t, "4000", res.State.GlobalSrpCount.String())
}

func TestParamsRouteDefaultsWhenUnset(t *testing.T) {
	rec, body := get(t, newRouter(fakeStore{}.query()), "/fio/staking/v1/params")
	require.Equal(t, http.StatusOK, rec.Code)

	var res types.QueryParamsResponse
	require.NoError(t, json.Unmarshal(body["result"], &res))
	require.Equal(t, types.DefaultParams().PoolMinimumThreshold.String(), res.Params.PoolMinimumThreshold.String())
	require.Equal(t, types.DefaultParams().UnstakeLockDuration, res.Params.UnstakeLockDuration)
}

func TestRateRoute(t *testing.T) {
	store := fakeStore{}
	params := types.DefaultParams()
	params.PoolMinimumThreshold = math.NewInt(1_000)
	store.put(t, types.ParamsKey.Bytes(), params)

	state := types.EmptyGlobalStakingState()
	state.CombinedTokenPool = math.NewInt(10_000)
	state.StakedTokenPool = math.NewInt(4_000)
	state.GlobalSrpCount = math.NewInt(4_000)
	store.put(t, types.GlobalStateKey.Bytes(), state)

	rec, body := get(t, newRouter(store.query()), "/fio/staking/v1/rate")
	require.Equal(t, http.StatusOK, rec.Code)

	var res types.QueryExchangeRateResponse
	require.NoError(t, json.Unmarshal(body["result"], &res))
	require.Equal(t, "2", res.Rate.String())
}

func TestAccountRoute(t *testing.T) {
	store := fakeStore{}
	store.put(t, types.AccountStakeStoreKey("fio1alice"), types.AccountStake{
		Account:        "fio1alice",
		TotalStakedFio: math.NewInt(700),
		TotalSrp:       math.NewInt(350),
	})
	router := newRouter(store.query())

	rec, body := get(t, router, "/fio/staking/v1/account/fio1alice")
	require.Equal(t, http.StatusOK, rec.Code)
	var res types.QueryAccountStakeResponse
	require.NoError(t, json.Unmarshal(body["result"], &res))
	require.Equal(t, "700", res.Stake.TotalStakedFio.String())
	require.Equal(t, "350", res.Stake.TotalSrp.String())

	rec, body = get(t, router, "/fio/staking/v1/account/fio1bob")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(body["result"], &res))
	require.Equal(t, "fio1bob", res.Stake.Account)
	require.True(t, res.Stake.TotalSrp.IsZero())

	rec, body = get(t, router, "/fio/staking/v1/account/bad")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `"invalid account address"`, string(body["message"]))
}

func TestStoreFailureIsInternal(t *testing.T) {
	q := func([]byte, string) ([]byte, int64, error) { return nil, 0, errors.New("node down") }
	rec, body := get(t, newRouter(q), "/fio/staking/v1/state")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `"node down"`, string(body["message"]))
}
