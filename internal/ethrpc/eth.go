package ethrpc

import (
	"context"
	"fmt"
	"math/big"
	"strings"
)

// ChainID returns the chain id of the connected network.
func (c *Client) ChainID(ctx context.Context) (int64, error) {
	var hex string
	if err := c.call(ctx, "eth_chainId", nil, &hex); err != nil {
		return 0, err
	}
	id, err := parseHexUint(hex)
	if err != nil {
		return 0, fmt.Errorf("eth_chainId: %w", err)
	}
	return int64(id), nil
}

// Balance returns the native balance of address in wei.
func (c *Client) Balance(ctx context.Context, address string) (*big.Int, error) {
	var hex string
	if err := c.call(ctx, "eth_getBalance", []any{address, "latest"}, &hex); err != nil {
		return nil, err
	}
	wei, err := parseHexBig(hex)
	if err != nil {
		return nil, fmt.Errorf("eth_getBalance: %w", err)
	}
	return wei, nil
}

// TransactionCount returns the number of transactions sent from address.
func (c *Client) TransactionCount(ctx context.Context, address string) (uint64, error) {
	var hex string
	if err := c.call(ctx, "eth_getTransactionCount", []any{address, "latest"}, &hex); err != nil {
		return 0, err
	}
	n, err := parseHexUint(hex)
	if err != nil {
		return 0, fmt.Errorf("eth_getTransactionCount: %w", err)
	}
	return n, nil
}

// Code returns the deployed bytecode at address ("0x" when none).
func (c *Client) Code(ctx context.Context, address string) (string, error) {
	var code string
	if err := c.call(ctx, "eth_getCode", []any{address, "latest"}, &code); err != nil {
		return "", err
	}
	return code, nil
}

// CallContract performs a read-only eth_call against a contract.
func (c *Client) CallContract(ctx context.Context, to string, data string) (string, error) {
	params := []any{map[string]string{"to": to, "data": data}, "latest"}
	var ret string
	if err := c.call(ctx, "eth_call", params, &ret); err != nil {
		return "", err
	}
	return ret, nil
}

func parseHexBig(hex string) (*big.Int, error) {
	s := strings.TrimPrefix(hex, "0x")
	if s == "" {
		return big.NewInt(0), nil
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("malformed quantity %q", hex)
	}
	return v, nil
}

func parseHexUint(hex string) (uint64, error) {
	v, err := parseHexBig(hex)
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("quantity %q overflows uint64", hex)
	}
	return v.Uint64(), nil
}
