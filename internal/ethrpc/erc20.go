package ethrpc

import (
	"context"
	"fmt"
	"math/big"
)

// Four-byte selectors of the ERC-20 read interface.
const (
	selBalanceOf = "0x70a08231"
	selDecimals  = "0x313ce567"
	selSymbol    = "0x95d89b41"
)

// ERC20Balance returns the raw token balance of owner on the token contract.
func (c *Client) ERC20Balance(ctx context.Context, token, owner string) (*big.Int, error) {
	ret, err := c.CallContract(ctx, token, encodeAddressArg(selBalanceOf, owner))
	if err != nil {
		return nil, err
	}
	bal, err := decodeBig(ret)
	if err != nil {
		return nil, fmt.Errorf("balanceOf %s: %w", token, err)
	}
	return bal, nil
}

// ERC20Decimals returns the decimal scale declared by the token contract.
func (c *Client) ERC20Decimals(ctx context.Context, token string) (uint8, error) {
	ret, err := c.CallContract(ctx, token, selDecimals)
	if err != nil {
		return 0, err
	}
	v, err := decodeBig(ret)
	if err != nil {
		return 0, fmt.Errorf("decimals %s: %w", token, err)
	}
	if v.Cmp(big.NewInt(255)) > 0 {
		return 0, fmt.Errorf("decimals %s: value %s out of range", token, v)
	}
	return uint8(v.Uint64()), nil
}

// ERC20Symbol returns the token symbol.
func (c *Client) ERC20Symbol(ctx context.Context, token string) (string, error) {
	ret, err := c.CallContract(ctx, token, selSymbol)
	if err != nil {
		return "", err
	}
	sym, err := decodeString(ret)
	if err != nil {
		return "", fmt.Errorf("symbol %s: %w", token, err)
	}
	return sym, nil
}
