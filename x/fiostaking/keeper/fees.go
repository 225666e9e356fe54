package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	math "cosmossdk.io/math"

	"fiochain/x/fiostaking/types"
)

// stakeRequest is the validated input shared by stake and unstake.
type stakeRequest struct {
	actor      string
	fioAddress string
	amount     math.Int
	maxFee     math.Int
	tpid       string
}

// feeQuote is what the caller pays for an endpoint.
type feeQuote struct {
	endpoint string
	amount   math.Int
	bundled  bool
}

// validateStakeRequest runs the stateless checks of stake and unstake.
func (k Keeper) validateStakeRequest(actor, fioAddress string, amount, maxFee math.Int, tpid string) (stakeRequest, error) {
	if _, err := k.addressCodec.StringToBytes(actor); err != nil {
		return stakeRequest{}, types.NewFieldError(types.ErrInvalidAddress, "actor", actor, "Invalid account address")
	}
	if amount.IsNil() || !amount.IsPositive() {
		return stakeRequest{}, types.NewFieldError(types.ErrInvalidAmount, "amount", intString(amount), "Invalid amount value")
	}
	if maxFee.IsNil() {
		maxFee = math.ZeroInt()
	}
	if maxFee.IsNegative() {
		return stakeRequest{}, types.NewFieldError(types.ErrInvalidFee, "max_fee", maxFee.String(), "Invalid fee value")
	}
	if !types.ValidateTpidFormat(tpid) {
		return stakeRequest{}, types.NewFieldError(types.ErrInvalidTpid, "tpid", tpid, "TPID must be empty or valid FIO address")
	}
	if tpid != "" {
		tpid = types.ParseFioAddress(tpid).String()
	}
	if fioAddress != "" {
		if !types.ValidateFioAddressFormat(fioAddress) {
			return stakeRequest{}, types.NewFieldError(types.ErrInvalidFioAddress, "fio_address", fioAddress, "Invalid FIO Address format")
		}
		fioAddress = types.ParseFioAddress(fioAddress).String()
	}
	return stakeRequest{
		actor:      actor,
		fioAddress: fioAddress,
		amount:     amount,
		maxFee:     maxFee,
		tpid:       tpid,
	}, nil
}

// requireVoter rejects accounts that neither voted nor proxied.
func (k Keeper) requireVoter(ctx context.Context, actor string) error {
	ok, err := k.voterKeeper.HasVotedOrProxied(ctx, actor)
	if err != nil {
		return errorsmod.Wrap(err, "failed to query voter registry")
	}
	if !ok {
		return types.NewFieldError(types.ErrNotVoter, "actor", actor, "Account has not voted and has not proxied.")
	}
	return nil
}

// activeName returns a registered, unexpired FIO address.
func (k Keeper) activeName(ctx context.Context, field, name string) (types.FioName, error) {
	n, found, err := k.nameKeeper.GetFioName(ctx, name)
	if err != nil {
		return types.FioName{}, errorsmod.Wrap(err, "failed to query name registry")
	}
	if !found {
		return types.FioName{}, types.NewFieldError(types.ErrFioAddressNotRegistered, field, name, "FIO Address not registered")
	}
	if blockTime(ctx) > n.Expiration {
		return types.FioName{}, types.NewFieldError(types.ErrFioAddressExpired, field, name, "FIO Address expired. Renew first.")
	}
	return n, nil
}

// bundleCredits returns the remaining bundled transactions of the caller's
// FIO address, zero when no address was supplied.
func (k Keeper) bundleCredits(ctx context.Context, req stakeRequest) (uint64, error) {
	if req.fioAddress == "" {
		return 0, nil
	}
	n, err := k.activeName(ctx, "fio_address", req.fioAddress)
	if err != nil {
		return 0, err
	}
	if n.Owner != req.actor {
		return 0, errorsmod.Wrapf(types.ErrUnauthorized, "fio address %s is not owned by %s", req.fioAddress, req.actor)
	}
	return n.BundleCredits, nil
}

// quoteFee looks up the endpoint fee. The fee is waived when bundled
// credits remain, otherwise it must not exceed max fee.
func (k Keeper) quoteFee(ctx context.Context, endpoint string, req stakeRequest, credits uint64) (feeQuote, error) {
	fee, found, err := k.feeKeeper.GetFeeByEndpoint(ctx, endpoint)
	if err != nil {
		return feeQuote{}, errorsmod.Wrap(err, "failed to query fee schedule")
	}
	if !found {
		return feeQuote{}, types.NewFieldError(types.ErrFeeNotFound, "endpoint_name", endpoint, "FIO fee not found for endpoint")
	}
	if fee.Type != types.FeeTypeBundleEligible {
		return feeQuote{}, types.NewFieldError(types.ErrInvalidFeeType, "fee_type", strconv.FormatUint(fee.Type, 10),
			"unexpected fee type for endpoint "+endpoint+", expected 1")
	}
	if credits > 0 {
		return feeQuote{endpoint: endpoint, amount: math.ZeroInt(), bundled: true}, nil
	}
	amount := fee.Amount
	if amount.IsNil() {
		amount = math.ZeroInt()
	}
	if amount.IsNegative() {
		return feeQuote{}, errorsmod.Wrapf(types.ErrStateCorruption, "negative fee %s for endpoint %s", amount, endpoint)
	}
	if req.maxFee.LT(amount) {
		return feeQuote{}, types.NewFieldError(types.ErrMaxFeeExceeded, "max_fee", req.maxFee.String(), "Fee exceeds supplied maximum.")
	}
	return feeQuote{endpoint: endpoint, amount: amount}, nil
}

// requireUsableBalance checks that the usable balance covers fee plus amount.
func (k Keeper) requireUsableBalance(ctx context.Context, req stakeRequest, q feeQuote) error {
	usable, err := k.bankKeeper.UsableBalance(ctx, req.actor, true)
	if err != nil {
		return errorsmod.Wrap(err, "failed to compute usable balance")
	}
	if usable.IsNil() || usable.LT(q.amount.Add(req.amount)) {
		return types.NewFieldError(types.ErrInsufficientBalance, "max_fee", req.maxFee.String(), "Insufficient balance.")
	}
	return nil
}

func intString(v math.Int) string {
	if v.IsNil() {
		return ""
	}
	return v.String()
}
