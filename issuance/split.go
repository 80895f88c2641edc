package issuance

import (
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
)

// MinerSecondaryShare returns floor(blockSecondary * occupied / total), the
// part of a block's secondary issuance paid to the miner. The product is
// formed in 256 bits so it cannot overflow. ok is false when total is zero or
// the quotient does not fit in 64 bits.
func MinerSecondaryShare(blockSecondary, occupied, total uint64) (share uint64, ok bool) {
	if total == 0 {
		return 0, false
	}
	q := new(uint256.Int).SetUint64(blockSecondary)
	q.Mul(q, new(uint256.Int).SetUint64(occupied))
	q.Div(q, new(uint256.Int).SetUint64(total))
	if !q.IsUint64() {
		return 0, false
	}
	return q.Uint64(), true
}

// GenesisBurn returns the primary issuance burned at genesis:
// total - cellbase - secondary. ok is false if that would be negative.
func GenesisBurn(total, cellbase, secondary uint64) (burned uint64, ok bool) {
	rest, underflow := math.SafeSub(total, cellbase)
	if underflow {
		return 0, false
	}
	burned, underflow = math.SafeSub(rest, secondary)
	if underflow {
		return 0, false
	}
	return burned, true
}

// BlockSecondary returns the secondary issuance of a matured block:
// the growth of the accumulator total minus the primary reward.
// ok is false if the accumulator grew by less than the primary reward.
func BlockSecondary(maturedTotal, baselineTotal, primary uint64) (secondary uint64, ok bool) {
	delta, underflow := math.SafeSub(maturedTotal, baselineTotal)
	if underflow {
		return 0, false
	}
	secondary, underflow = math.SafeSub(delta, primary)
	if underflow {
		return 0, false
	}
	return secondary, true
}
