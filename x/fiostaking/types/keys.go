package types

import "cosmossdk.io/collections"

const (
	ModuleName  = "fiostaking"
	StoreKey    = ModuleName
	RouterKey   = ModuleName
	MemStoreKey = "mem_fiostaking"

	// GovModuleName is the default authority for MsgUpdateParams.
	GovModuleName = "gov"
)

var (
	ParamsKey             = collections.NewPrefix("p_fiostaking")
	GlobalStateKey        = collections.NewPrefix("g_fiostaking")
	AccountStakeKeyPrefix = collections.NewPrefix("a_fiostaking")
)

// AccountStakeStoreKey returns the raw store key of an account stake row,
// used by clients reading the store directly.
func AccountStakeStoreKey(account string) []byte {
	prefix := AccountStakeKeyPrefix.Bytes()
	key := make([]byte, 0, len(prefix)+len(account))
	key = append(key, prefix...)
	return append(key, account...)
}
