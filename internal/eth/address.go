package eth

import (
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/sha3"
)

var ErrInvalidAddress = errors.New("invalid ethereum address")

// Normalize validates raw and returns its EIP-55 checksummed form.
//
// All-lowercase and all-uppercase hex is accepted and checksummed; mixed-case
// input must already carry a correct checksum, otherwise ErrInvalidAddress is
// returned. The function is pure and idempotent.
func Normalize(raw string) (string, error) {
	if !strings.HasPrefix(raw, "0x") && !strings.HasPrefix(raw, "0X") {
		return "", ErrInvalidAddress
	}

	hexPart := raw[2:]
	if len(hexPart) != 40 {
		return "", ErrInvalidAddress
	}
	if _, err := hex.DecodeString(hexPart); err != nil {
		return "", ErrInvalidAddress
	}

	checksummed := checksum(strings.ToLower(hexPart))

	// Mixed-case input asserts a checksum; it has to match.
	if hexPart != strings.ToLower(hexPart) && hexPart != strings.ToUpper(hexPart) && hexPart != checksummed {
		return "", ErrInvalidAddress
	}

	return "0x" + checksummed, nil
}

// checksum implements the EIP-55 casing rule over a lowercase hex string.
func checksum(lower string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	digest := h.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if nibble >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}
	return string(out)
}
