package issuance

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
)

var (
	// ErrProvider wraps any failure of the chain-data provider.
	ErrProvider = errors.New("chain-data provider error")

	ErrRewardSumMismatch        = errors.New("reward total does not equal the sum of its components")
	ErrCoinbaseRewardMismatch   = errors.New("coinbase output total does not equal the reward total")
	ErrIssuanceIdentityMismatch = errors.New("issuance identity violated")
	ErrSecondarySplitMismatch   = errors.New("miner share of secondary issuance does not match the occupied-capacity split")
	ErrEpochAccountingMismatch  = errors.New("epoch issuance differs from the first epoch's baseline")

	// ErrUnsupportedEpochLength is returned for epochs not longer than the
	// maturity delay; boundary detection relies on index MaturityDelay
	// being reached exactly once per epoch.
	ErrUnsupportedEpochLength = errors.New("unsupported epoch length")
)

// ViolationError reports a broken invariant at a given block height.
// It unwraps to one of the Err*Mismatch kinds above.
type ViolationError struct {
	Kind   error
	Height idx.Block
	Detail string
	Want   uint64
	Got    uint64
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("%v at block %d: %s (want %d, got %d)", e.Kind, e.Height, e.Detail, e.Want, e.Got)
}

func (e *ViolationError) Unwrap() error {
	return e.Kind
}

func violation(kind error, height idx.Block, detail string, want, got uint64) *ViolationError {
	return &ViolationError{Kind: kind, Height: height, Detail: detail, Want: want, Got: got}
}
