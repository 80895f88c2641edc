package issuance

import (
	"context"
	"errors"
	"math/big"

	"github.com/Fantom-foundation/lachesis-base/common/bigendian"
	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/issuance-audit/inter"
)

// chainParams describes a synthetic chain whose accounting is consistent by
// construction. Every block k >= 1 issues primary and secondary; genesis
// records primary as burned and secondary as already issued.
type chainParams struct {
	genesisCellbase uint64
	primary         uint64
	secondary       uint64
	txFee           uint64
	proposal        uint64
	epochLength     uint64
	tip             idx.Block

	// occupied derives the occupied capacity from the accumulator total.
	occupied func(total uint64) uint64

	// per-block adjustments, applied consistently everywhere
	primaryDelta   map[idx.Block]int64
	secondaryDelta map[idx.Block]int64
}

func defaultParams() chainParams {
	return chainParams{
		genesisCellbase: 1_000_000_000,
		primary:         5_000_000,
		secondary:       300_001,
		txFee:           17,
		proposal:        3,
		epochLength:     20,
		tip:             75,
		occupied:        func(total uint64) uint64 { return total / 3 },
	}
}

type testChain struct {
	params    chainParams
	blocks    []*inter.Block
	snapshots []inter.AccumulatorSnapshot
	rewards   map[common.Hash]*inter.RewardRecord
}

func blockHash(n idx.Block) common.Hash {
	return common.BytesToHash(bigendian.Uint64ToBytes(uint64(n) + 1))
}

func adjust(v uint64, deltas map[idx.Block]int64, n idx.Block) uint64 {
	return uint64(int64(v) + deltas[n])
}

func buildChain(p chainParams) *testChain {
	c := &testChain{
		params:  p,
		rewards: make(map[common.Hash]*inter.RewardRecord),
	}

	var prev inter.AccumulatorSnapshot
	for n := idx.Block(0); n <= p.tip; n++ {
		primary := adjust(p.primary, p.primaryDelta, n)
		secondary := adjust(p.secondary, p.secondaryDelta, n)

		var (
			snap     inter.AccumulatorSnapshot
			coinbase []inter.Output
		)
		if n == 0 {
			snap.Total = p.genesisCellbase + primary + secondary
			snap.Secondary = secondary
			half := p.genesisCellbase / 2
			coinbase = []inter.Output{{Capacity: half}, {Capacity: p.genesisCellbase - half}}
		} else {
			snap.Total = prev.Total + primary + secondary
			snap.Secondary = prev.Secondary + secondary

			share := new(big.Int).SetUint64(secondary)
			share.Mul(share, new(big.Int).SetUint64(prev.Occupied))
			share.Div(share, new(big.Int).SetUint64(prev.Total))
			miner := share.Uint64()

			c.rewards[blockHash(n)] = &inter.RewardRecord{
				Total:          new(big.Int).SetUint64(primary + miner + p.txFee + p.proposal),
				Primary:        new(big.Int).SetUint64(primary),
				Secondary:      new(big.Int).SetUint64(miner),
				TxFee:          new(big.Int).SetUint64(p.txFee),
				ProposalReward: new(big.Int).SetUint64(p.proposal),
			}
			coinbase = []inter.Output{{Capacity: primary}, {Capacity: miner + p.txFee}, {Capacity: p.proposal}}
		}
		snap.Rate = 10_000_000_000_000_000 + uint64(n)*7
		snap.Occupied = p.occupied(snap.Total)

		c.blocks = append(c.blocks, &inter.Block{
			Number: n,
			Epoch: inter.Epoch{
				Number: idx.Epoch(uint64(n) / p.epochLength),
				Index:  uint64(n) % p.epochLength,
				Length: p.epochLength,
			},
			Hash: blockHash(n),
			Dao:  snap.Encode(),
			Transactions: []inter.Transaction{
				{Outputs: coinbase},
				{Outputs: []inter.Output{{Capacity: 42}}},
			},
		})
		c.snapshots = append(c.snapshots, snap)
		prev = snap
	}
	return c
}

func (c *testChain) block(n idx.Block) *inter.Block {
	return c.blocks[n]
}

func (c *testChain) reward(n idx.Block) *inter.RewardRecord {
	return c.rewards[blockHash(n)]
}

// setTotal rewrites the accumulator total recorded in block n.
func (c *testChain) setTotal(n idx.Block, total uint64) {
	snap := c.snapshots[n]
	snap.Total = total
	c.blocks[n].Dao = snap.Encode()
}

var errUnavailable = errors.New("unavailable")

// fakeProvider serves a testChain from memory.
type fakeProvider struct {
	chain *testChain

	tipErr     error
	blockErr   map[idx.Block]error
	rewardErr  error
	nilBlocks  map[idx.Block]bool
	blockCalls int
	rewardHits int
}

func newFakeProvider(c *testChain) *fakeProvider {
	return &fakeProvider{
		chain:     c,
		blockErr:  make(map[idx.Block]error),
		nilBlocks: make(map[idx.Block]bool),
	}
}

func (f *fakeProvider) TipHeight(context.Context) (idx.Block, error) {
	if f.tipErr != nil {
		return 0, f.tipErr
	}
	return f.chain.params.tip, nil
}

func (f *fakeProvider) BlockByHeight(_ context.Context, n idx.Block) (*inter.Block, error) {
	f.blockCalls++
	if err := f.blockErr[n]; err != nil {
		return nil, err
	}
	if f.nilBlocks[n] || int(n) >= len(f.chain.blocks) {
		return nil, nil
	}
	return f.chain.blocks[n], nil
}

func (f *fakeProvider) RewardDetail(_ context.Context, h common.Hash) (*inter.RewardRecord, error) {
	if f.rewardErr != nil {
		return nil, f.rewardErr
	}
	rec, ok := f.chain.rewards[h]
	if !ok {
		return nil, nil
	}
	f.rewardHits++
	return rec, nil
}
