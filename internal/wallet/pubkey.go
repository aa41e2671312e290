package wallet

import (
	"fmt"
	"strings"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// PublicKeySize is the length of a Solana public key in bytes.
const PublicKeySize = 32

// PublicKey is an ed25519 public key as used for Solana addresses.
type PublicKey [PublicKeySize]byte

// ParsePublicKey decodes a base58 address.
func ParsePublicKey(s string) (PublicKey, error) {
	var pk PublicKey
	s = strings.TrimSpace(s)
	if s == "" {
		return pk, fmt.Errorf("empty public key")
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return pk, fmt.Errorf("decode public key: %w", err)
	}
	if len(raw) != PublicKeySize {
		return pk, fmt.Errorf("public key must be %d bytes, got %d", PublicKeySize, len(raw))
	}
	copy(pk[:], raw)
	return pk, nil
}

// String returns the base58 encoding of the key.
func (k PublicKey) String() string {
	return base58.Encode(k[:])
}

// Short returns an abbreviated address for narrow displays, e.g. "4Nd1…DB4T".
func (k PublicKey) Short() string {
	s := k.String()
	if len(s) <= 10 {
		return s
	}
	return s[:4] + "…" + s[len(s)-4:]
}

// IsZero reports whether k is the all-zero key.
func (k PublicKey) IsZero() bool {
	return k == PublicKey{}
}

// OnCurve reports whether k is a valid ed25519 point. Wallet keys are always
// on the curve; program-derived addresses never are.
func (k PublicKey) OnCurve() bool {
	_, err := new(edwards25519.Point).SetBytes(k[:])
	return err == nil
}
