package cmd

import (
	cmtcfg "github.com/cometbft/cometbft/config"
	serverconfig "github.com/cosmos/cosmos-sdk/server/config"

	"fiochain/app"
)

// initCometBFTConfig helps to override default CometBFT Config values.
// return cmtcfg.DefaultConfig if no custom configuration is required for the application.
func initCometBFTConfig() *cmtcfg.Config {
	cfg := cmtcfg.DefaultConfig()

	// these values put a higher strain on node memory
	// cfg.P2P.MaxNumInboundPeers = 100
	// cfg.P2P.MaxNumOutboundPeers = 40

	return cfg
}

// CustomAppConfig is app.toml: the SDK server config plus the [fiostaking] section.
type CustomAppConfig struct {
	serverconfig.Config `mapstructure:",squash"`
	FioStaking          app.StakingAPIConfig `mapstructure:"fiostaking"`
}

// initAppConfig helps to override default appConfig template and configs.
func initAppConfig() (string, interface{}) {
	srvCfg := serverconfig.DefaultConfig()
	// Make the staking routes reachable by default on fresh nodes.
	// Note: operators can override these in app.toml.
	srvCfg.API.Enable = true
	srvCfg.MinGasPrices = "0" + app.BondDenom

	customAppConfig := CustomAppConfig{
		Config:     *srvCfg,
		FioStaking: app.DefaultStakingAPIConfig(),
	}

	customAppTemplate := serverconfig.DefaultConfigTemplate + app.StakingAPIConfigTemplate

	return customAppTemplate, customAppConfig
}
