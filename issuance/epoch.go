package issuance

import (
	"fmt"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/rony4d/issuance-audit/inter"
)

// EpochAccountant checks that every epoch issues the same primary and
// secondary amounts as the first one.
//
// Epoch 0 establishes the baseline. The one-time genesis burn is folded into
// the expected primary amount at that point, since the genesis block carries
// no primary reward of its own.
type EpochAccountant struct {
	primary   uint64
	secondary uint64

	expectedPrimary   uint64
	expectedSecondary uint64

	primaryBurned uint64
}

// NewEpochAccountant returns an accountant with empty accumulators.
func NewEpochAccountant() *EpochAccountant {
	return &EpochAccountant{}
}

// Seed installs the genesis constants. The secondary accumulator of epoch 0
// starts from the secondary issuance already recorded at genesis.
func (a *EpochAccountant) Seed(secondaryBaseline, primaryBurned uint64) {
	a.secondary = secondaryBaseline
	a.primaryBurned = primaryBurned
}

// Accumulate adds one block's issuance to the current epoch.
func (a *EpochAccountant) Accumulate(primary, secondary uint64) error {
	p, overflow := math.SafeAdd(a.primary, primary)
	if overflow {
		return fmt.Errorf("%w: epoch primary issuance overflows", inter.ErrValueOutOfRange)
	}
	s, overflow := math.SafeAdd(a.secondary, secondary)
	if overflow {
		return fmt.Errorf("%w: epoch secondary issuance overflows", inter.ErrValueOutOfRange)
	}
	a.primary, a.secondary = p, s
	return nil
}

// OnEpochBoundary closes the given epoch. For epoch 0 it records the
// baseline; for any later epoch it compares against it. The accumulators are
// reset in both cases. A mismatch is returned as a *ViolationError whose
// Height the caller fills in.
func (a *EpochAccountant) OnEpochBoundary(epoch idx.Epoch) error {
	defer a.reset()

	if epoch == 0 {
		expected, overflow := math.SafeAdd(a.primary, a.primaryBurned)
		if overflow {
			return fmt.Errorf("%w: epoch 0 primary baseline overflows", inter.ErrValueOutOfRange)
		}
		a.expectedPrimary = expected
		a.expectedSecondary = a.secondary
		return nil
	}
	if a.primary != a.expectedPrimary {
		return violation(ErrEpochAccountingMismatch, 0, fmt.Sprintf("epoch %d primary issuance", epoch), a.expectedPrimary, a.primary)
	}
	if a.secondary != a.expectedSecondary {
		return violation(ErrEpochAccountingMismatch, 0, fmt.Sprintf("epoch %d secondary issuance", epoch), a.expectedSecondary, a.secondary)
	}
	return nil
}

// Expected returns the per-epoch baseline established by epoch 0.
func (a *EpochAccountant) Expected() (primary, secondary uint64) {
	return a.expectedPrimary, a.expectedSecondary
}

// Current returns the amounts accumulated in the open epoch.
func (a *EpochAccountant) Current() (primary, secondary uint64) {
	return a.primary, a.secondary
}

func (a *EpochAccountant) reset() {
	a.primary = 0
	a.secondary = 0
}
