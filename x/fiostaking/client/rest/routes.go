package rest

import (
	"encoding/json"
	"net/http"

	"cosmossdk.io/log"
	"github.com/gorilla/mux"
	"google.golang.org/grpc/codes"

	"fiochain/x/fiostaking/client/storeview"
	"fiochain/x/fiostaking/types"
)

// AddressValidator rejects malformed account addresses before the store is read.
type AddressValidator func(string) error

// RegisterRoutes mounts the read only staking routes on router:
//
//	GET /fio/staking/v1/params
//	GET /fio/staking/v1/state
//	GET /fio/staking/v1/rate
//	GET /fio/staking/v1/account/{account}
func RegisterRoutes(router *mux.Router, q storeview.QueryFunc, validate AddressValidator, logger log.Logger) {
	r := router.PathPrefix("/fio/staking/v1").Subrouter()

	r.HandleFunc("/params", func(w http.ResponseWriter, _ *http.Request) {
		p, height, err := storeview.Params(q)
		if err != nil {
			logger.Error("fiostaking params route failed", "err", err)
			writeError(w, http.StatusInternalServerError, codes.Internal, err.Error())
			return
		}
		writeJSON(w, height, types.QueryParamsResponse{Params: p})
	}).Methods(http.MethodGet)

	r.HandleFunc("/state", func(w http.ResponseWriter, _ *http.Request) {
		s, height, err := storeview.GlobalState(q)
		if err != nil {
			logger.Error("fiostaking state route failed", "err", err)
			writeError(w, http.StatusInternalServerError, codes.Internal, err.Error())
			return
		}
		writeJSON(w, height, types.QueryGlobalStateResponse{State: s})
	}).Methods(http.MethodGet)

	r.HandleFunc("/rate", func(w http.ResponseWriter, _ *http.Request) {
		rate, height, err := storeview.ExchangeRate(q)
		if err != nil {
			logger.Error("fiostaking rate route failed", "err", err)
			writeError(w, http.StatusInternalServerError, codes.Internal, err.Error())
			return
		}
		writeJSON(w, height, types.QueryExchangeRateResponse{Rate: rate})
	}).Methods(http.MethodGet)

	r.HandleFunc("/account/{account}", func(w http.ResponseWriter, req *http.Request) {
		account := mux.Vars(req)["account"]
		if validate != nil {
			if err := validate(account); err != nil {
				writeError(w, http.StatusBadRequest, codes.InvalidArgument, "invalid account address")
				return
			}
		}
		a, height, err := storeview.AccountStake(q, account)
		if err != nil {
			logger.Error("fiostaking account route failed", "account", account, "err", err)
			writeError(w, http.StatusInternalServerError, codes.Internal, err.Error())
			return
		}
		writeJSON(w, height, types.QueryAccountStakeResponse{Stake: a})
	}).Methods(http.MethodGet)
}

func writeJSON(w http.ResponseWriter, height int64, result any) {
	bz, err := json.Marshal(struct {
		Height int64 `json:"height"`
		Result any   `json:"result"`
	}{height, result})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(bz)
}

// writeError mirrors the grpc-gateway error payload.
func writeError(w http.ResponseWriter, httpStatus int, code codes.Code, msg string) {
	bz, _ := json.Marshal(map[string]any{"code": int32(code), "message": msg, "details": []any{}})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_, _ = w.Write(bz)
}
