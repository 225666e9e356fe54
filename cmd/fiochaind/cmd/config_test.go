package cmd

import (
	"bytes"
	"testing"
	"text/template"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"fiochain/app"
)

func TestInitAppConfigRendersStakingSection(t *testing.T) {
	tmplText, cfg := initAppConfig()

	tmpl, err := template.New("app.toml").Parse(tmplText)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, cfg))

	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(&buf))

	got, err := app.ReadStakingAPIConfig(v)
	require.NoError(t, err)
	require.Equal(t, app.DefaultStakingAPIConfig(), got)
	require.True(t, v.GetBool("api.enable"))
	require.Equal(t, "0"+app.BondDenom, v.GetString("minimum-gas-prices"))
}

func TestRootCmdWiresStakingQueries(t *testing.T) {
	root := NewRootCmd()

	found, _, err := root.Find([]string{"query", "fiostaking", "rate"})
	require.NoError(t, err)
	require.Equal(t, "rate", found.Name())

	api, _, err := root.Find([]string{"staking-api"})
	require.NoError(t, err)
	require.NotNil(t, api.Flags().Lookup(flagListen))
	require.NotNil(t, api.Flags().Lookup("node"))
}
