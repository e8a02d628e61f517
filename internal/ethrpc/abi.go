package ethrpc

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// Minimal ABI helpers for the read-only calls this service issues. Full ABI
// handling is not needed for fixed four-byte selectors with one address
// argument.

const wordHexLen = 64

// encodeAddressArg ABI-encodes a single address argument after selector.
func encodeAddressArg(selector, address string) string {
	hex := strings.ToLower(strings.TrimPrefix(address, "0x"))
	return selector + strings.Repeat("0", wordHexLen-len(hex)) + hex
}

// decodeBig decodes a single uint256 return word.
func decodeBig(ret string) (*big.Int, error) {
	s := strings.TrimPrefix(ret, "0x")
	if len(s) < wordHexLen {
		return nil, fmt.Errorf("short return data %q", ret)
	}
	v, ok := new(big.Int).SetString(s[:wordHexLen], 16)
	if !ok {
		return nil, fmt.Errorf("malformed return data %q", ret)
	}
	return v, nil
}

// decodeString decodes a single dynamically-sized string return value.
func decodeString(ret string) (string, error) {
	s := strings.TrimPrefix(ret, "0x")
	if len(s) < 2*wordHexLen {
		return "", fmt.Errorf("short return data %q", ret)
	}

	offset, ok := new(big.Int).SetString(s[:wordHexLen], 16)
	if !ok || !offset.IsUint64() {
		return "", fmt.Errorf("malformed string offset in %q", ret)
	}
	pos := offset.Uint64() * 2
	if uint64(len(s)) < pos+wordHexLen {
		return "", fmt.Errorf("string offset out of range in %q", ret)
	}

	length, ok := new(big.Int).SetString(s[pos:pos+wordHexLen], 16)
	if !ok || !length.IsUint64() {
		return "", fmt.Errorf("malformed string length in %q", ret)
	}
	start := pos + wordHexLen
	end := start + length.Uint64()*2
	if uint64(len(s)) < end {
		return "", fmt.Errorf("string data out of range in %q", ret)
	}

	raw, err := hex.DecodeString(s[start:end])
	if err != nil {
		return "", fmt.Errorf("malformed string data in %q", ret)
	}
	return string(raw), nil
}
