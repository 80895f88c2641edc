package inter

import "errors"

// Decoding and structural errors. Callers match them with errors.Is; the
// returned errors wrap these with the offending field or length.
var (
	ErrMalformedRecord = errors.New("malformed record: fixed-size input has wrong length")
	ErrValueOutOfRange = errors.New("value out of range: does not fit in 64 bits")
	ErrMalformedChain  = errors.New("malformed chain: expected structural element missing")
)
