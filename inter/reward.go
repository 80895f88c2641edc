package inter

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
)

// RewardRecord is the coinbase reward detail exactly as the node reports it.
// Amounts arrive as arbitrary-width integers and are narrowed by DecodeReward.
type RewardRecord struct {
	Total          *big.Int
	Primary        *big.Int
	Secondary      *big.Int
	TxFee          *big.Int
	ProposalReward *big.Int
}

// RewardBreakdown is a range-checked RewardRecord.
type RewardBreakdown struct {
	Total          uint64
	Primary        uint64
	Secondary      uint64
	TxFee          uint64
	ProposalReward uint64
}

// DecodeReward narrows every field of the record to 64 bits, failing with
// ErrValueOutOfRange instead of truncating.
func DecodeReward(rec RewardRecord) (RewardBreakdown, error) {
	var out RewardBreakdown
	fields := []struct {
		name string
		src  *big.Int
		dst  *uint64
	}{
		{"total", rec.Total, &out.Total},
		{"primary", rec.Primary, &out.Primary},
		{"secondary", rec.Secondary, &out.Secondary},
		{"tx_fee", rec.TxFee, &out.TxFee},
		{"proposal_reward", rec.ProposalReward, &out.ProposalReward},
	}
	for _, f := range fields {
		if f.src == nil {
			return RewardBreakdown{}, fmt.Errorf("%w: reward %s is missing", ErrValueOutOfRange, f.name)
		}
		if f.src.Sign() < 0 || !f.src.IsUint64() {
			return RewardBreakdown{}, fmt.Errorf("%w: reward %s = %s", ErrValueOutOfRange, f.name, f.src)
		}
		*f.dst = f.src.Uint64()
	}
	return out, nil
}

// Components returns primary + secondary + tx_fee + proposal_reward.
// ok is false if the sum overflows 64 bits.
func (r RewardBreakdown) Components() (sum uint64, ok bool) {
	var overflow bool
	for _, v := range []uint64{r.Primary, r.Secondary, r.TxFee, r.ProposalReward} {
		if sum, overflow = math.SafeAdd(sum, v); overflow {
			return 0, false
		}
	}
	return sum, true
}

// CheckTotal reports whether Total equals the sum of its components.
func (r RewardBreakdown) CheckTotal() bool {
	sum, ok := r.Components()
	return ok && sum == r.Total
}

func (r RewardBreakdown) String() string {
	return fmt.Sprintf("t: %d; p: %d; s: %d; tx: %d; pr: %d", r.Total, r.Primary, r.Secondary, r.TxFee, r.ProposalReward)
}
