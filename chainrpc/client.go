// Package chainrpc fetches blocks and coinbase reward details from a node's
// JSON-RPC endpoint. Client satisfies issuance.Provider.
package chainrpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/rony4d/issuance-audit/inter"
)

// ErrNotFound is returned when the node answers a lookup with null.
var ErrNotFound = errors.New("not found")

// Client is a thin typed wrapper over an rpc.Client.
type Client struct {
	rpc *rpc.Client
}

// Dial connects to the node at url. Both HTTP and WebSocket endpoints work.
func Dial(ctx context.Context, url string) (*Client, error) {
	c, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return NewClient(c), nil
}

// NewClient wraps an established connection.
func NewClient(c *rpc.Client) *Client {
	return &Client{rpc: c}
}

// Close closes the underlying connection.
func (c *Client) Close() {
	c.rpc.Close()
}

// TipHeight returns the height of the node's tip block.
func (c *Client) TipHeight(ctx context.Context) (idx.Block, error) {
	var tip hexutil.Uint64
	if err := c.rpc.CallContext(ctx, &tip, "get_tip_block_number"); err != nil {
		return 0, err
	}
	return idx.Block(tip), nil
}

// BlockByHeight returns the block at height.
func (c *Client) BlockByHeight(ctx context.Context, height idx.Block) (*inter.Block, error) {
	var raw *rpcBlock
	if err := c.rpc.CallContext(ctx, &raw, "get_block_by_number", hexutil.Uint64(height)); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("block %d: %w", height, ErrNotFound)
	}
	return raw.toBlock()
}

// RewardDetail returns the coinbase reward breakdown of the block with the
// given hash.
func (c *Client) RewardDetail(ctx context.Context, blockHash common.Hash) (*inter.RewardRecord, error) {
	var raw *rpcRewardDetail
	if err := c.rpc.CallContext(ctx, &raw, "get_cellbase_output_capacity_details", blockHash); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("reward detail %s: %w", blockHash.Hex(), ErrNotFound)
	}
	return raw.toRecord(), nil
}
