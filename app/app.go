package app

import (
	clienthelpers "cosmossdk.io/client/v2/helpers"
)

const (
	// Name is the name of the application.
	Name = "fiochain"
	// AccountAddressPrefix is the prefix for accounts addresses.
	AccountAddressPrefix = "fio"
	// ChainCoinType is the SLIP-44 coin type of FIO.
	ChainCoinType = 235
	// BondDenom is the smallest unit of FIO (1 FIO = 1e9 SUF).
	BondDenom = "suf"
)

// DefaultNodeHome default home directories for the application daemon
var DefaultNodeHome string

func init() {
	var err error
	clienthelpers.EnvPrefix = Name
	DefaultNodeHome, err = clienthelpers.GetNodeHomeDirectory("." + Name)
	if err != nil {
		panic(err)
	}
}
