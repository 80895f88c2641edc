package inter

import (
	"fmt"

	"github.com/rony4d/issuance-audit/utils/fast"
)

// AccumulatorSnapshot is the decoded DAO field of one block: cumulative chain
// issuance figures as of that block.
//
// Layout (little-endian u64 each):
//
//	[ 0, 8)  Total      cumulative issuance (C)
//	[ 8,16)  Rate       accumulated secondary-issuance rate (AR), carried through
//	[16,24)  Secondary  cumulative secondary issuance (S)
//	[24,32)  Occupied   capacity currently locked on chain (U)
type AccumulatorSnapshot struct {
	Total     uint64
	Rate      uint64
	Secondary uint64
	Occupied  uint64
}

// DecodeSnapshot splits a 32-byte DAO field into its four fields.
func DecodeSnapshot(raw []byte) (AccumulatorSnapshot, error) {
	if len(raw) != DaoSize {
		return AccumulatorSnapshot{}, fmt.Errorf("%w: dao field is %d bytes, want %d", ErrMalformedRecord, len(raw), DaoSize)
	}
	r := fast.NewReader(raw)
	return AccumulatorSnapshot{
		Total:     r.Uint64(),
		Rate:      r.Uint64(),
		Secondary: r.Uint64(),
		Occupied:  r.Uint64(),
	}, nil
}

// Encode writes the snapshot back into its 32-byte layout.
func (s AccumulatorSnapshot) Encode() []byte {
	w := fast.NewWriter(make([]byte, 0, DaoSize))
	w.Uint64(s.Total)
	w.Uint64(s.Rate)
	w.Uint64(s.Secondary)
	w.Uint64(s.Occupied)
	return w.Bytes()
}

func (s AccumulatorSnapshot) String() string {
	return fmt.Sprintf("t: %d; r: %d; s: %d; o: %d", s.Total, s.Rate, s.Secondary, s.Occupied)
}
