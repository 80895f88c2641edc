package inter

import (
	"fmt"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
)

// Epoch is a block's position in the epoch schedule.
//
// The node transports it packed in a single integer:
//
//	bits  0..23  epoch number
//	bits 24..39  index of the block inside the epoch
//	bits 40..55  epoch length in blocks
type Epoch struct {
	Number idx.Epoch
	Index  uint64
	Length uint64
}

const (
	epochNumberBits = 24
	epochIndexBits  = 16
	epochLengthBits = 16
)

// DecodeEpoch unpacks the node's packed epoch representation.
func DecodeEpoch(v uint64) Epoch {
	return Epoch{
		Number: idx.Epoch(v & (1<<epochNumberBits - 1)),
		Index:  (v >> epochNumberBits) & (1<<epochIndexBits - 1),
		Length: (v >> (epochNumberBits + epochIndexBits)) & (1<<epochLengthBits - 1),
	}
}

// Pack is the inverse of DecodeEpoch. Fields wider than their slot are masked.
func (e Epoch) Pack() uint64 {
	return uint64(e.Number)&(1<<epochNumberBits-1) |
		(e.Index&(1<<epochIndexBits-1))<<epochNumberBits |
		(e.Length&(1<<epochLengthBits-1))<<(epochNumberBits+epochIndexBits)
}

func (e Epoch) String() string {
	return fmt.Sprintf("%d(%d/%d)", e.Number, e.Index, e.Length)
}
