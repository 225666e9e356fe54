package app

import (
	"strings"

	servertypes "github.com/cosmos/cosmos-sdk/server/types"
	"github.com/spf13/cast"
)

const (
	flagStakingAPIRoutes = "fiostaking.api-routes"
	flagStakingAPIPrefix = "fiostaking.api-prefix"
)

// StakingAPIConfig is the [fiostaking] section of app.toml.
type StakingAPIConfig struct {
	// Routes mounts the staking JSON routes on the API server.
	Routes bool `mapstructure:"api-routes"`
	// Prefix is prepended to every staking route, e.g. "/api".
	Prefix string `mapstructure:"api-prefix"`
}

func DefaultStakingAPIConfig() StakingAPIConfig {
	return StakingAPIConfig{Routes: true, Prefix: "/api"}
}

// StakingAPIConfigTemplate is appended to the default app.toml template.
const StakingAPIConfigTemplate = `
###############################################################################
###                         FIO Staking Configuration                       ###
###############################################################################

[fiostaking]

# Mount the read only staking routes (/fio/staking/v1/...) on the API server.
api-routes = {{ .FioStaking.Routes }}

# Extra path prefix for the staking routes. The routes are always served
# without it as well.
api-prefix = "{{ .FioStaking.Prefix }}"
`

// ReadStakingAPIConfig reads the [fiostaking] section, falling back to
// defaults for missing keys.
func ReadStakingAPIConfig(opts servertypes.AppOptions) (StakingAPIConfig, error) {
	cfg := DefaultStakingAPIConfig()
	if v := opts.Get(flagStakingAPIRoutes); v != nil {
		routes, err := cast.ToBoolE(v)
		if err != nil {
			return cfg, err
		}
		cfg.Routes = routes
	}
	if v := opts.Get(flagStakingAPIPrefix); v != nil {
		prefix, err := cast.ToStringE(v)
		if err != nil {
			return cfg, err
		}
		cfg.Prefix = normalizePrefix(prefix)
	}
	return cfg, nil
}

func normalizePrefix(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
