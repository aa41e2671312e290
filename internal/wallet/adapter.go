package wallet

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	solerrors "github.com/solmint/solmint/pkg/errors"
)

// Adapter names.
const (
	AdapterKeypair = "keypair"
	AdapterAddress = "address"
)

// Adapter connects to a wallet and yields its public key.
type Adapter interface {
	Name() string
	Connect(ctx context.Context) (PublicKey, error)
}

// KeypairAdapter loads a Solana CLI keypair file: a JSON array of 64 bytes,
// the ed25519 seed followed by the public key.
type KeypairAdapter struct {
	Path string
}

// Name implements Adapter.
func (a KeypairAdapter) Name() string { return AdapterKeypair }

// Connect implements Adapter.
func (a KeypairAdapter) Connect(ctx context.Context) (PublicKey, error) {
	if err := ctx.Err(); err != nil {
		return PublicKey{}, err
	}
	path, err := expandHome(a.Path)
	if err != nil {
		return PublicKey{}, solerrors.NewWalletError(AdapterKeypair, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return PublicKey{}, solerrors.NewWalletError(AdapterKeypair, fmt.Errorf("read keypair: %w", err))
	}
	pk, err := parseKeypair(data)
	if err != nil {
		return PublicKey{}, solerrors.NewWalletError(AdapterKeypair, err)
	}
	return pk, nil
}

func parseKeypair(data []byte) (PublicKey, error) {
	var raw []int
	if err := json.Unmarshal(data, &raw); err != nil {
		return PublicKey{}, fmt.Errorf("decode keypair: %w", err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return PublicKey{}, fmt.Errorf("keypair must hold %d bytes, got %d", ed25519.PrivateKeySize, len(raw))
	}
	secret := make([]byte, len(raw))
	for i, v := range raw {
		if v < 0 || v > 255 {
			return PublicKey{}, fmt.Errorf("keypair byte %d out of range: %d", i, v)
		}
		secret[i] = byte(v)
	}

	var pk PublicKey
	copy(pk[:], secret[ed25519.SeedSize:])
	if !pk.OnCurve() {
		return PublicKey{}, fmt.Errorf("public key %s is not on the ed25519 curve", pk)
	}
	derived := ed25519.NewKeyFromSeed(secret[:ed25519.SeedSize]).Public().(ed25519.PublicKey)
	if string(derived) != string(pk[:]) {
		return PublicKey{}, fmt.Errorf("keypair public key does not match its seed")
	}
	return pk, nil
}

var errSystemProgram = errors.New("the system program address cannot be used as a wallet")

// AddressAdapter is a watch-only wallet: a bare base58 address.
type AddressAdapter struct {
	Address string
}

// Name implements Adapter.
func (a AddressAdapter) Name() string { return AdapterAddress }

// Connect implements Adapter.
func (a AddressAdapter) Connect(ctx context.Context) (PublicKey, error) {
	if err := ctx.Err(); err != nil {
		return PublicKey{}, err
	}
	pk, err := ParsePublicKey(a.Address)
	if err != nil {
		return PublicKey{}, solerrors.NewWalletError(AdapterAddress, err)
	}
	if pk.IsZero() {
		return PublicKey{}, solerrors.NewWalletError(AdapterAddress, errSystemProgram)
	}
	return pk, nil
}

func expandHome(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("keypair path is empty")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}

var (
	_ Adapter = KeypairAdapter{}
	_ Adapter = AddressAdapter{}
)
