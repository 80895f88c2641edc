package chainrpc

import (
	"fmt"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/rony4d/issuance-audit/inter"
)

// rpcHeader is the part of a block header the audit reads.
// The epoch arrives packed, see inter.DecodeEpoch.
type rpcHeader struct {
	Number hexutil.Uint64 `json:"number"`
	Epoch  hexutil.Uint64 `json:"epoch"`
	Dao    hexutil.Bytes  `json:"dao"`
	Hash   common.Hash    `json:"hash"`
}

type rpcOutput struct {
	Capacity hexutil.Uint64 `json:"capacity"`
}

type rpcTransaction struct {
	Outputs []rpcOutput `json:"outputs"`
}

type rpcBlock struct {
	Header       rpcHeader        `json:"header"`
	Transactions []rpcTransaction `json:"transactions"`
}

type rpcRewardDetail struct {
	Total          *hexutil.Big `json:"total"`
	Primary        *hexutil.Big `json:"primary"`
	Secondary      *hexutil.Big `json:"secondary"`
	TxFee          *hexutil.Big `json:"tx_fee"`
	ProposalReward *hexutil.Big `json:"proposal_reward"`
}

func (b *rpcBlock) toBlock() (*inter.Block, error) {
	if b.Header.Epoch > 0xffffffffffffff {
		return nil, fmt.Errorf("%w: epoch %#x wider than 56 bits", inter.ErrMalformedRecord, uint64(b.Header.Epoch))
	}
	block := &inter.Block{
		Number:       idx.Block(b.Header.Number),
		Epoch:        inter.DecodeEpoch(uint64(b.Header.Epoch)),
		Hash:         b.Header.Hash,
		Dao:          b.Header.Dao,
		Transactions: make([]inter.Transaction, len(b.Transactions)),
	}
	for i, tx := range b.Transactions {
		outs := make([]inter.Output, len(tx.Outputs))
		for j, out := range tx.Outputs {
			outs[j] = inter.Output{Capacity: uint64(out.Capacity)}
		}
		block.Transactions[i] = inter.Transaction{Outputs: outs}
	}
	return block, nil
}

func (r *rpcRewardDetail) toRecord() *inter.RewardRecord {
	return &inter.RewardRecord{
		Total:          r.Total.ToInt(),
		Primary:        r.Primary.ToInt(),
		Secondary:      r.Secondary.ToInt(),
		TxFee:          r.TxFee.ToInt(),
		ProposalReward: r.ProposalReward.ToInt(),
	}
}
