// Package issuance replays a chain from genesis and checks that the
// accounting recorded in every block's DAO field agrees with the coinbase
// rewards actually paid.
//
// A block's reward is final only MaturityDelay blocks later, so the walk keeps
// the last MaturityDelay snapshots in a MaturityBuffer and verifies each block
// once it leaves the buffer, against the previously matured snapshot. Per-epoch
// issuance is tracked by an EpochAccountant. The first broken invariant ends
// the walk with a *ViolationError.
package issuance

import (
	"context"
	"errors"
	"fmt"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/sirupsen/logrus"

	"github.com/rony4d/issuance-audit/inter"
)

// progressInterval controls how often block progress is logged at info level.
const progressInterval = 100

// Provider is the source of chain data. Calls block until answered.
type Provider interface {
	TipHeight(ctx context.Context) (idx.Block, error)
	BlockByHeight(ctx context.Context, height idx.Block) (*inter.Block, error)
	RewardDetail(ctx context.Context, blockHash common.Hash) (*inter.RewardRecord, error)
}

// maturing is what the verifier remembers about a block until it matures.
type maturing struct {
	height   idx.Block
	hash     common.Hash
	coinbase uint64
	snapshot inter.AccumulatorSnapshot
}

// Verifier walks the chain one height at a time. It is not safe for
// concurrent use and must be driven from height 0 without gaps.
type Verifier struct {
	provider Provider
	log      *logrus.Entry

	next idx.Block

	maturity *MaturityBuffer[maturing]
	epochs   *EpochAccountant
	totals   Totals

	// baseline is the most recently matured snapshot.
	baseline inter.AccumulatorSnapshot

	genesisCellbase        uint64
	primaryBurned          uint64
	epochSecondaryBaseline uint64

	verified   uint64
	boundaries uint64
}

// NewVerifier creates a verifier positioned at genesis. A nil log uses the
// logrus standard logger.
func NewVerifier(provider Provider, log *logrus.Entry) *Verifier {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Verifier{
		provider: provider,
		log:      log,
		maturity: NewMaturityBuffer[maturing](MaturityDelay),
		epochs:   NewEpochAccountant(),
	}
}

// NextHeight returns the height the next call to Next will process.
func (v *Verifier) NextHeight() idx.Block {
	return v.next
}

// Totals returns the running totals accumulated so far.
func (v *Verifier) Totals() Totals {
	return v.totals
}

// Run verifies every block from genesis through the tip reported at start.
func (v *Verifier) Run(ctx context.Context) (*Summary, error) {
	tip, err := v.provider.TipHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: tip height: %v", ErrProvider, err)
	}
	v.log.WithField("tip", tip).Info("Current tip block")

	for v.next <= tip {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := v.Next(ctx); err != nil {
			return nil, err
		}
	}

	s := v.Summary(tip)
	v.log.WithFields(logrus.Fields{
		"tip":             s.Tip,
		"verified":        s.Verified,
		"epochs":          s.Epochs,
		"primary":         s.Totals.Primary,
		"secondary":       s.Totals.Secondary,
		"miner_secondary": s.Totals.MinerSecondary,
		"tx_fee":          s.Totals.TxFee,
		"proposal_reward": s.Totals.ProposalReward,
		"fingerprint":     s.Fingerprint.Hex(),
	}).Info("DONE")
	return s, nil
}

// Summary reports the state of the walk, assuming it stopped at tip.
func (v *Verifier) Summary(tip idx.Block) *Summary {
	primary, secondary := v.epochs.Expected()
	return &Summary{
		Tip:             tip,
		Verified:        v.verified,
		Epochs:          v.boundaries,
		GenesisCellbase: v.genesisCellbase,
		PrimaryBurned:   v.primaryBurned,
		EpochPrimary:    primary,
		EpochSecondary:  secondary,
		Totals:          v.totals,
		Fingerprint:     v.totals.Hash(),
	}
}

// Next processes the block at NextHeight.
func (v *Verifier) Next(ctx context.Context) error {
	height := v.next

	block, err := v.provider.BlockByHeight(ctx, height)
	if err != nil {
		return fmt.Errorf("%w: block %d: %v", ErrProvider, height, err)
	}
	if block == nil {
		return fmt.Errorf("%w: block %d not found", ErrProvider, height)
	}
	if block.Number != height {
		return fmt.Errorf("%w: requested block %d, got %d", inter.ErrMalformedChain, height, block.Number)
	}
	if block.Epoch.Length <= MaturityDelay {
		return fmt.Errorf("%w: block %d is in epoch %s, epochs must be longer than %d blocks",
			ErrUnsupportedEpochLength, height, block.Epoch, MaturityDelay)
	}
	v.logProgress(block)

	coinbase, err := block.CoinbaseOutputTotal()
	if err != nil {
		return err
	}
	snapshot, err := inter.DecodeSnapshot(block.Dao)
	if err != nil {
		return fmt.Errorf("block %d: %w", height, err)
	}

	matured, ok := v.maturity.Push(maturing{
		height:   height,
		hash:     block.Hash,
		coinbase: coinbase,
		snapshot: snapshot,
	})

	switch {
	case height == 0:
		err = v.initGenesis(coinbase, snapshot)
	case !ok:
		// still filling the maturity window
	case height == MaturityDelay:
		// Block 0 matured. It has no predecessor, so it only seeds the baseline.
		v.baseline = matured.snapshot
		v.log.WithField("dao", v.baseline).Trace("Seeded matured baseline")
	default:
		err = v.verifyMatured(ctx, block, matured)
	}
	if err != nil {
		return err
	}

	v.next++
	return nil
}

func (v *Verifier) initGenesis(cellbase uint64, snapshot inter.AccumulatorSnapshot) error {
	burned, ok := GenesisBurn(snapshot.Total, cellbase, snapshot.Secondary)
	if !ok {
		floor, _ := math.SafeAdd(cellbase, snapshot.Secondary)
		return violation(ErrIssuanceIdentityMismatch, 0, "genesis total below cellbase plus secondary issuance", floor, snapshot.Total)
	}
	v.genesisCellbase = cellbase
	v.primaryBurned = burned
	v.epochSecondaryBaseline = snapshot.Secondary
	v.totals.Secondary = snapshot.Secondary
	v.epochs.Seed(v.epochSecondaryBaseline, burned)

	v.log.WithFields(logrus.Fields{
		"cellbase":       cellbase,
		"primary_burned": burned,
		"secondary":      snapshot.Secondary,
	}).Debug("Genesis accounting")
	return nil
}

// verifyMatured checks the block that matured while processing current.
func (v *Verifier) verifyMatured(ctx context.Context, current *inter.Block, m maturing) error {
	// With epochs longer than MaturityDelay, current sitting at index
	// MaturityDelay means m opens a new epoch: the accumulators now hold
	// exactly the previous one.
	if current.Epoch.Index == MaturityDelay {
		if current.Epoch.Number == 0 {
			return fmt.Errorf("%w: block %d at index %d of epoch 0 after the maturity window",
				inter.ErrMalformedChain, current.Number, current.Epoch.Index)
		}
		closed := current.Epoch.Number - 1
		if err := v.epochs.OnEpochBoundary(closed); err != nil {
			var ve *ViolationError
			if errors.As(err, &ve) {
				ve.Height = current.Number
			}
			return err
		}
		v.boundaries++
		primary, secondary := v.epochs.Expected()
		v.log.WithFields(logrus.Fields{
			"epoch":     closed,
			"primary":   primary,
			"secondary": secondary,
		}).Debug("Epoch closed")
	}

	record, err := v.provider.RewardDetail(ctx, m.hash)
	if err != nil {
		return fmt.Errorf("%w: reward detail of block %d (%s): %v", ErrProvider, m.height, m.hash.Hex(), err)
	}
	if record == nil {
		return fmt.Errorf("%w: reward detail of block %d (%s) not found", ErrProvider, m.height, m.hash.Hex())
	}
	reward, err := inter.DecodeReward(*record)
	if err != nil {
		return fmt.Errorf("block %d: %w", m.height, err)
	}
	if !reward.CheckTotal() {
		sum, _ := reward.Components()
		return violation(ErrRewardSumMismatch, m.height, "reward total", sum, reward.Total)
	}

	blockSecondary, ok := BlockSecondary(m.snapshot.Total, v.baseline.Total, reward.Primary)
	if !ok {
		floor, _ := math.SafeAdd(v.baseline.Total, reward.Primary)
		return violation(ErrIssuanceIdentityMismatch, m.height, "accumulated total below previous total plus primary reward", floor, m.snapshot.Total)
	}
	if v.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		v.log.WithFields(logrus.Fields{
			"block":     m.height,
			"dao":       m.snapshot,
			"reward":    reward,
			"coinbase":  m.coinbase,
			"secondary": blockSecondary,
		}).Trace("Matured block")
	}

	if err := v.epochs.Accumulate(0, blockSecondary); err != nil {
		return fmt.Errorf("block %d: %w", m.height, err)
	}
	if err := v.totals.AddSecondary(blockSecondary); err != nil {
		return fmt.Errorf("block %d: %w", m.height, err)
	}

	if m.coinbase != reward.Total {
		return violation(ErrCoinbaseRewardMismatch, m.height, "coinbase output total", reward.Total, m.coinbase)
	}

	if err := v.totals.AddReward(reward); err != nil {
		return fmt.Errorf("block %d: %w", m.height, err)
	}
	if err := v.epochs.Accumulate(reward.Primary, 0); err != nil {
		return fmt.Errorf("block %d: %w", m.height, err)
	}

	issued, ok := v.totalIssuance()
	if !ok || issued != m.snapshot.Total {
		return violation(ErrIssuanceIdentityMismatch, m.height, "genesis cellbase + primary + secondary + burned", issued, m.snapshot.Total)
	}

	share, ok := MinerSecondaryShare(blockSecondary, v.baseline.Occupied, v.baseline.Total)
	if !ok || share != reward.Secondary {
		return violation(ErrSecondarySplitMismatch, m.height,
			fmt.Sprintf("floor(%d * %d / %d)", blockSecondary, v.baseline.Occupied, v.baseline.Total), share, reward.Secondary)
	}

	v.baseline = m.snapshot
	v.verified++
	return nil
}

// totalIssuance is the issuance implied by genesis and the running totals.
func (v *Verifier) totalIssuance() (uint64, bool) {
	sum := v.genesisCellbase
	for _, part := range []uint64{v.totals.Primary, v.totals.Secondary, v.primaryBurned} {
		var overflow bool
		if sum, overflow = math.SafeAdd(sum, part); overflow {
			return sum, false
		}
	}
	return sum, true
}

func (v *Verifier) logProgress(block *inter.Block) {
	entry := v.log.WithFields(logrus.Fields{
		"epoch": block.Epoch.String(),
		"block": block.Number,
	})
	if block.Epoch.Index%progressInterval == 0 {
		entry.Info("Checking block")
	} else {
		entry.Debug("Checking block")
	}
}
