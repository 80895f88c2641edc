package issuance

import (
	"crypto/sha256"
	"fmt"

	"github.com/Fantom-foundation/lachesis-base/hash"
	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/rony4d/issuance-audit/inter"
)

// Totals are the running sums over every verified block. All fields only
// ever grow during a walk.
type Totals struct {
	Primary        uint64
	Secondary      uint64 // includes the secondary issuance recorded at genesis
	MinerSecondary uint64
	TxFee          uint64
	ProposalReward uint64
}

// AddSecondary adds a block's secondary issuance.
func (t *Totals) AddSecondary(v uint64) error {
	return addChecked(&t.Secondary, v, "secondary")
}

// AddReward adds the reward components of a matured block.
func (t *Totals) AddReward(r inter.RewardBreakdown) error {
	if err := addChecked(&t.Primary, r.Primary, "primary"); err != nil {
		return err
	}
	if err := addChecked(&t.MinerSecondary, r.Secondary, "miner secondary"); err != nil {
		return err
	}
	if err := addChecked(&t.TxFee, r.TxFee, "tx fee"); err != nil {
		return err
	}
	return addChecked(&t.ProposalReward, r.ProposalReward, "proposal reward")
}

// Hash fingerprints the totals: sha256 over their RLP encoding.
// Two audits of the same chain up to the same tip yield the same hash.
func (t Totals) Hash() hash.Hash {
	hasher := sha256.New()
	if err := rlp.Encode(hasher, &t); err != nil {
		panic("can't hash: " + err.Error())
	}
	return hash.BytesToHash(hasher.Sum(nil))
}

func addChecked(dst *uint64, v uint64, name string) error {
	sum, overflow := math.SafeAdd(*dst, v)
	if overflow {
		return fmt.Errorf("%w: total %s issuance overflows", inter.ErrValueOutOfRange, name)
	}
	*dst = sum
	return nil
}

// Summary describes a completed walk.
type Summary struct {
	Tip idx.Block

	// Verified counts matured blocks that passed every invariant.
	Verified uint64
	// Epochs counts epoch boundaries closed, including the baseline epoch.
	Epochs uint64

	GenesisCellbase uint64
	PrimaryBurned   uint64
	EpochPrimary    uint64
	EpochSecondary  uint64

	Totals      Totals
	Fingerprint hash.Hash
}
