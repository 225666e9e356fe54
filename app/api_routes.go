package app

import (
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/server/api"
	servertypes "github.com/cosmos/cosmos-sdk/server/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gorilla/mux"

	"fiochain/x/fiostaking/client/rest"
	"fiochain/x/fiostaking/client/storeview"
)

// RegisterStakingAPIRoutes mounts the staking JSON routes on the API server
// when enabled in app.toml.
func RegisterStakingAPIRoutes(apiSvr *api.Server, appOpts servertypes.AppOptions, logger log.Logger) error {
	cfg, err := ReadStakingAPIConfig(appOpts)
	if err != nil {
		return err
	}
	registerStakingRoutes(apiSvr.Router, storeview.FromClientContext(apiSvr.ClientCtx), cfg, logger)
	return nil
}

// NewStakingAPIRouter returns a standalone router serving the staking routes.
func NewStakingAPIRouter(q storeview.QueryFunc, cfg StakingAPIConfig, logger log.Logger) *mux.Router {
	router := mux.NewRouter()
	registerStakingRoutes(router, q, cfg, logger)
	return router
}

func registerStakingRoutes(router *mux.Router, q storeview.QueryFunc, cfg StakingAPIConfig, logger log.Logger) {
	if !cfg.Routes {
		logger.Info("fiostaking API routes disabled")
		return
	}
	validate := func(addr string) error {
		_, err := sdk.AccAddressFromBech32(addr)
		return err
	}

	rest.RegisterRoutes(router, q, validate, logger)
	// Also serve under the configured prefix for proxies that keep it.
	if cfg.Prefix != "" {
		rest.RegisterRoutes(router.PathPrefix(cfg.Prefix).Subrouter(), q, validate, logger)
	}
}
