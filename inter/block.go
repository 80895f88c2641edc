// Package inter defines the chain data structures the issuance audit consumes
// and the decoders that turn their raw accounting fields into typed values.
//
// Key concepts:
//   - Block: height, epoch position, hash, the 32-byte DAO field and the
//     transactions whose first entry is the coinbase (cellbase)
//   - AccumulatorSnapshot: the decoded DAO field (C, AR, S, U)
//   - RewardRecord / RewardBreakdown: the coinbase reward detail as delivered
//     by the node, and its range-checked 64-bit form
//
// Usage:
//
//	snap, err := inter.DecodeSnapshot(block.Dao)
//	coinbase, err := block.CoinbaseOutputTotal()
//	reward, err := inter.DecodeReward(*record)
package inter

import (
	"fmt"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

// DaoSize is the length of the accumulator field carried in every header.
const DaoSize = 32

// Block is the subset of a chain block the audit needs.
type Block struct {
	Number idx.Block
	Epoch  Epoch
	Hash   common.Hash

	// Dao is the raw accumulator field. It is kept as a slice so that a
	// malformed length reaches DecodeSnapshot instead of being truncated.
	Dao []byte

	// Transactions in block order. Transactions[0] is the coinbase.
	Transactions []Transaction
}

// Transaction holds the outputs of a transaction, in order.
type Transaction struct {
	Outputs []Output
}

// Output is a single transaction output. Only the capacity matters here.
type Output struct {
	Capacity uint64
}

// CoinbaseOutputTotal sums the capacity of every output of the block's first
// transaction.
func (b *Block) CoinbaseOutputTotal() (uint64, error) {
	if len(b.Transactions) == 0 {
		return 0, fmt.Errorf("%w: block %d has no coinbase transaction", ErrMalformedChain, b.Number)
	}
	var (
		sum      uint64
		overflow bool
	)
	for i, out := range b.Transactions[0].Outputs {
		sum, overflow = math.SafeAdd(sum, out.Capacity)
		if overflow {
			return 0, fmt.Errorf("%w: block %d coinbase output %d overflows the capacity sum", ErrValueOutOfRange, b.Number, i)
		}
	}
	return sum, nil
}
