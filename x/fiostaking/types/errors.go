package types

import (
	"errors"
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

// DONTCOVER

// Caller input errors. They reject the message without any state change.
var (
	ErrInvalidSigner           = errorsmod.Register(ModuleName, 1100, "expected gov account as only signer for proposal message")
	ErrInvalidAddress          = errorsmod.Register(ModuleName, 1101, "invalid account address")
	ErrInvalidAmount           = errorsmod.Register(ModuleName, 1102, "invalid amount value")
	ErrInvalidFee              = errorsmod.Register(ModuleName, 1103, "invalid fee value")
	ErrInvalidTpid             = errorsmod.Register(ModuleName, 1104, "TPID must be empty or valid FIO address")
	ErrInvalidFioAddress       = errorsmod.Register(ModuleName, 1105, "invalid FIO address format")
	ErrNotVoter                = errorsmod.Register(ModuleName, 1106, "account has not voted and has not proxied")
	ErrFioAddressNotRegistered = errorsmod.Register(ModuleName, 1107, "FIO address not registered")
	ErrFioAddressExpired       = errorsmod.Register(ModuleName, 1108, "FIO address expired")
	ErrFeeNotFound             = errorsmod.Register(ModuleName, 1109, "FIO fee not found for endpoint")
	ErrInvalidFeeType          = errorsmod.Register(ModuleName, 1110, "unexpected fee type for endpoint")
	ErrMaxFeeExceeded          = errorsmod.Register(ModuleName, 1111, "fee exceeds supplied maximum")
	ErrInsufficientBalance     = errorsmod.Register(ModuleName, 1112, "insufficient balance")
	ErrUnstakeExceedsStake     = errorsmod.Register(ModuleName, 1113, "cannot unstake more than staked")
	ErrInvalidParams           = errorsmod.Register(ModuleName, 1114, "invalid params")
	ErrInvalidGenesis          = errorsmod.Register(ModuleName, 1115, "invalid genesis state")
)

// Internal errors. They signal corruption or a logic defect and abort the
// whole transaction.
var (
	ErrUnauthorized    = errorsmod.Register(ModuleName, 1200, "unauthorized")
	ErrStateCorruption = errorsmod.Register(ModuleName, 1201, "staking state corruption")
)

// IsFatal reports whether err belongs to the internal error class.
func IsFatal(err error) bool {
	return errors.Is(err, ErrStateCorruption) || errors.Is(err, ErrUnauthorized)
}

// FieldError is a rejected caller input carrying the offending field, its
// value and a human readable message.
type FieldError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

// NewFieldError wraps a registered error with field context.
func NewFieldError(err error, field, value, message string) *FieldError {
	return &FieldError{Field: field, Value: value, Message: message, Err: err}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s (field %q, value %q)", e.Err.Error(), e.Message, e.Field, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Cause lets cosmossdk.io/errors resolve the ABCI code of the wrapped error.
func (e *FieldError) Cause() error { return e.Err }
