package ethrpc

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ENS registry is deployed at the same address on mainnet and testnets.
const ensRegistry = "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"

const (
	selResolver = "0x0178b8bf" // resolver(bytes32)
	selName     = "0x691f3431" // name(bytes32)
)

// LookupName reverse-resolves address to an ENS name.
//
// A missing resolver or empty name is not an error: the address simply has no
// reverse record and ("", nil) is returned. Transport and RPC failures
// propagate.
func (c *Client) LookupName(ctx context.Context, address string) (string, error) {
	node := namehash(strings.ToLower(strings.TrimPrefix(address, "0x")) + ".addr.reverse")
	nodeHex := hex.EncodeToString(node)

	ret, err := c.CallContract(ctx, ensRegistry, selResolver+nodeHex)
	if err != nil {
		return "", fmt.Errorf("ens resolver: %w", err)
	}
	resolver, err := decodeBig(ret)
	if err != nil {
		return "", fmt.Errorf("ens resolver: %w", err)
	}
	if resolver.Sign() == 0 {
		return "", nil
	}
	resolverAddr := fmt.Sprintf("0x%040x", resolver)

	ret, err = c.CallContract(ctx, resolverAddr, selName+nodeHex)
	if err != nil {
		return "", fmt.Errorf("ens name: %w", err)
	}
	name, err := decodeString(ret)
	if err != nil {
		return "", fmt.Errorf("ens name: %w", err)
	}
	return name, nil
}

// namehash implements the ENS name hashing algorithm (EIP-137).
func namehash(name string) []byte {
	node := make([]byte, 32)
	if name == "" {
		return node
	}

	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		label := sha3.NewLegacyKeccak256()
		label.Write([]byte(labels[i]))

		h := sha3.NewLegacyKeccak256()
		h.Write(node)
		h.Write(label.Sum(nil))
		node = h.Sum(nil)
	}
	return node
}
